package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"arbeitszeit/mail"
	"arbeitszeit/sheet"
	"arbeitszeit/timesheet"
	"arbeitszeit/view"
)

type deliverOptions struct {
	outDir string
	noMail bool
	yes    bool
	force  bool
}

// deliver writes the spreadsheet, prints the report and, after confirmation,
// mails it and marks the covered months as sent.
func (d *deps) deliver(ctx context.Context, rp timesheet.Report, opts deliverOptions) error {
	first, last, ok := rp.Span()
	if !ok {
		return fmt.Errorf("report is empty")
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = d.conf.Output.Dir
	}
	name := view.OutputName(d.conf.Name, first, last, "xlsx")
	path := filepath.Join(outDir, name)
	if err := sheet.WriteFile(path, rp, sheet.Options{}); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	d.logger.Info("spreadsheet written", "path", path, "total", timesheet.FormatDuration(rp.Total))

	if err := view.Render(os.Stdout, rp, view.FormatTable); err != nil {
		return err
	}
	fmt.Printf("\n%s gespeichert\n", path)

	if opts.noMail {
		return nil
	}
	if err := d.conf.MailReady(); err != nil {
		return err
	}
	if err := d.checkNotSent(rp.Months(), opts.force); err != nil {
		return err
	}

	if !opts.yes {
		confirmed, err := view.Confirm(rp, name)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Abgebrochen.")
			return nil
		}
	}

	password := d.conf.Mail.Password
	if password == "" {
		var err error
		if password, err = mail.PromptPassword(int(os.Stdin.Fd()), os.Stdout, d.conf.Mail.From); err != nil {
			return err
		}
	}
	return d.send(ctx, rp, path, first, last, password)
}

func (d *deps) send(ctx context.Context, rp timesheet.Report, path string, first, last timesheet.Date, password string) error {
	subject := view.Subject(d.conf.Name, first, last)
	err := d.mailSender(password).Send(ctx, mail.Message{
		From:       d.conf.Mail.From,
		To:         d.conf.Mail.To,
		Subject:    subject,
		Body:       d.conf.Mail.Body,
		Attachment: path,
	})
	if err != nil {
		return err
	}
	d.logger.Info("report sent", "to", d.conf.Mail.To, "subject", subject)

	if err := d.reporter.MarkSent(rp.Months()...); err != nil {
		return err
	}
	if err := d.notifier.Notify("Arbeitszeit gesendet", subject); err != nil {
		d.logger.Warn("notification failed", "err", err)
	}
	fmt.Printf("%s an %s gesendet\n", subject, d.conf.Mail.To)
	return nil
}

func (d *deps) checkNotSent(months []string, force bool) error {
	if force {
		return nil
	}
	for _, m := range months {
		s, err := d.reporter.State(m)
		if err != nil {
			return err
		}
		if s == timesheet.ReportStateSent {
			return fmt.Errorf("%s was already sent, use --force to send again", m)
		}
	}
	return nil
}
