package mailer

import (
	"gopkg.in/gomail.v2"
)

// Message is one plain-text notification.
type Message struct {
	To      string
	Cc      string
	Subject string
	Body    string
}

// Sender delivers notification messages.
type Sender interface {
	Send(msg Message) error
}

// Client sends messages through an SMTP relay.
type Client struct {
	dialer *gomail.Dialer
	from   string
}

func NewClient(host string, port int, username, password, from string) *Client {
	return &Client{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (c *Client) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", msg.To)
	if msg.Cc != "" {
		m.SetHeader("Cc", msg.Cc)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	return c.dialer.DialAndSend(m)
}
