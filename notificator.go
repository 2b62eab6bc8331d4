package main

import (
	"bytes"
	"errors"
	"os/exec"
	"runtime"
)

type Notificator interface {
	Notify(title, message string) error
}

func newNotificator() Notificator {
	switch runtime.GOOS {
	case "darwin":
		return &MacNotificator{}
	case "linux":
		if _, err := exec.LookPath("notify-send"); err == nil {
			return &LinuxNotificator{}
		}
	}
	return noopNotificator{}
}

type MacNotificator struct{}

func (no *MacNotificator) Notify(title string, message string) error {
	var errOut bytes.Buffer
	cmd := exec.Command("osascript", "-e", `display notification "`+message+`" with title "arbeitszeit" subtitle "`+title+`"`)
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return errors.New(errOut.String())
	}
	return nil
}

type LinuxNotificator struct{}

func (no *LinuxNotificator) Notify(title string, message string) error {
	var errOut bytes.Buffer
	cmd := exec.Command("notify-send", "--app-name=arbeitszeit", title, message)
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return errors.New(errOut.String())
	}
	return nil
}

type noopNotificator struct{}

func (noopNotificator) Notify(string, string) error { return nil }
