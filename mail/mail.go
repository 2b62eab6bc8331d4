// Package mail composes the report email and delivers it over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"
	"golang.org/x/term"
)

var ErrNoTerminal = errors.New("password prompt needs a terminal")

type Message struct {
	From       string
	To         string
	Subject    string
	Body       string
	Attachment string
}

// Compose builds the MIME message. The attachment must exist.
func Compose(m Message) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.From, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", m.To, err)
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, m.Body)

	if m.Attachment != "" {
		if _, err := os.Stat(m.Attachment); err != nil {
			return nil, fmt.Errorf("attachment: %w", err)
		}
		msg.AttachFile(m.Attachment, gomail.WithFileName(filepath.Base(m.Attachment)))
	}
	return msg, nil
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

type smtpSender struct {
	cfg    SMTPConfig
	logger *slog.Logger
}

// NewSMTPSender returns a Sender using STARTTLS and LOGIN authentication.
func NewSMTPSender(cfg SMTPConfig, logger *slog.Logger) Sender {
	return &smtpSender{cfg: cfg, logger: logger}
}

func (s *smtpSender) Send(ctx context.Context, m Message) error {
	msg, err := Compose(m)
	if err != nil {
		return err
	}

	username := s.cfg.Username
	if username == "" {
		username = m.From
	}
	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthLogin),
		gomail.WithUsername(username),
		gomail.WithPassword(s.cfg.Password),
	}
	if s.cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(s.cfg.Timeout))
	}
	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	s.logger.Debug("sending mail",
		slog.String("server", s.cfg.Host),
		slog.Int("port", s.cfg.Port),
		slog.String("to", m.To),
		slog.String("subject", m.Subject))
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", m.To, err)
	}
	return nil
}

// PromptPassword reads a password from the terminal fd without echo.
func PromptPassword(fd int, out io.Writer, account string) (string, error) {
	if !term.IsTerminal(fd) {
		return "", ErrNoTerminal
	}
	fmt.Fprintf(out, "Passwort für %s: ", account)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pw)), nil
}
