package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/RahemShaikh/LoginSimulator/internal/common"
)

// SMTPNotifier sends plain-text mail over an implicit-TLS SMTP connection
// (port 465 style). Delivery is synchronous; a failure anywhere in the
// exchange means no message was sent.
type SMTPNotifier struct {
	host     string
	port     int
	from     string
	password string
}

func NewSMTPNotifier(host string, port int, from, password string) *SMTPNotifier {
	return &SMTPNotifier{host: host, port: port, from: from, password: password}
}

func (n *SMTPNotifier) Send(ctx context.Context, to, subject, body string) error {
	if err := n.send(ctx, to, subject, body); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorDelivery, err)
	}
	return nil
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, body string) error {

	addr := fmt.Sprintf("%s:%d", n.host, n.port)

	dialer := &tls.Dialer{Config: &tls.Config{ServerName: n.host}}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, n.host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", n.from, n.password, n.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(n.from); err != nil {
		return fmt.Errorf("smtp sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}

	if _, err := w.Write([]byte(formatMessage(n.from, to, subject, body))); err != nil {
		w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return client.Quit()
}

func formatMessage(from, to, subject, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}
