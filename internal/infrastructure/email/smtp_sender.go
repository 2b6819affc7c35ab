package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"

	"agency_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrSMTPDisabled     = errors.New("smtp not configured")
	ErrInvalidRecipient = errors.New("invalid email recipient")
)

// SMTPSender delivers transactional email through an SMTP relay.
// A sender built without a host reports ErrSMTPDisabled on every Send.
type SMTPSender struct {
	addr string
	auth smtp.Auth
	from string
	log  *zap.Logger
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ interfaces.IEmailSender = (*SMTPSender)(nil)

func NewSMTPSender(host string, port int, user, password, from string, log *zap.Logger) *SMTPSender {
	s := &SMTPSender{from: from, log: log.Named("email.smtp"), send: smtp.SendMail}
	if host == "" {
		s.log.Info("smtp disabled")
		return s
	}
	s.addr = host + ":" + strconv.Itoa(port)
	if user != "" {
		s.auth = smtp.PlainAuth("", user, password, host)
	}
	return s
}

func (s *SMTPSender) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	if s.addr == "" {
		return ErrSMTPDisabled
	}
	to := strings.TrimSpace(msg.To)
	if to == "" || strings.ContainsAny(to, "\r\n") {
		return ErrInvalidRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := buildMIME(s.from, to, msg)
	if err != nil {
		return err
	}
	if err := s.send(s.addr, s.auth, s.from, []string{to}, body); err != nil {
		s.log.Warn("send failed", zap.String("to", to), zap.String("subject", msg.Subject), zap.Error(err))
		return fmt.Errorf("smtp send: %w", err)
	}
	s.log.Info("sent", zap.String("to", to), zap.String("subject", msg.Subject))
	return nil
}

func buildMIME(from, to string, msg interfaces.EmailMessage) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", mw.Boundary())

	parts := []struct{ ctype, body string }{
		{"text/plain; charset=utf-8", msg.Text},
		{"text/html; charset=utf-8", msg.HTML},
	}
	for _, p := range parts {
		if p.body == "" {
			continue
		}
		w, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {p.ctype}})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(p.body)); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
