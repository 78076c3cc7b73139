// Package mailer renders and sends the club's transactional emails.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"elevate/internal/config"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New returns an SMTP sender when credentials are configured and a logging one otherwise.
func New(log *slog.Logger, cfg config.Mail) Sender {
	if cfg.User == "" || cfg.Password == "" {
		log.Warn("email credentials not configured, emails will only be logged")
		return NewLogging(log)
	}

	return NewSMTP(cfg)
}

type SMTP struct {
	addr string
	from string
	auth smtp.Auth
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTP(cfg config.Mail) *SMTP {
	return &SMTP{
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from: cfg.From,
		auth: smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host),
		send: smtp.SendMail,
	}
}

func (s *SMTP) Send(ctx context.Context, msg Message) error {
	const op = "mailer.SMTP.Send"

	envelopeFrom := s.from
	if addr, err := parseAddress(s.from); err == nil {
		envelopeFrom = addr
	}

	raw := compose(s.from, msg, time.Now())

	done := make(chan error, 1)
	go func() {
		done <- s.send(s.addr, s.auth, envelopeFrom, []string{msg.To}, raw)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s: send email: %w", op, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

// compose builds an RFC 5322 message with an HTML body.
func compose(from string, msg Message, now time.Time) []byte {
	var b strings.Builder

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mimeWord(msg.Subject) + "\r\n")
	b.WriteString("Date: " + now.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	return []byte(b.String())
}

type Logging struct {
	log *slog.Logger
}

func NewLogging(log *slog.Logger) *Logging {
	return &Logging{log: log}
}

func (l *Logging) Send(_ context.Context, msg Message) error {
	l.log.Info("email not sent, transport is not configured",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)

	return nil
}
