package gomail

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Rasamaha24/m5-advocate-portal/pkg/config"
)

// Client sends urgent-notification alerts over SMTP.
type Client struct {
	cfg    config.Mailer
	dialer *gomail.Dialer
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (c *Client) SendMessage(subject, message string, recipients []string) error {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", message)

	err := c.dialer.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
