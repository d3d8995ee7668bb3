package mail

import (
	"fmt"
	netmail "net/mail"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string

	fromAddress string
	fromName    string
}

func NewEmailSender(host string, port int, user, password, from string) (*EmailSender, error) {
	addr, err := netmail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("parsing sender address %q: %w", from, err)
	}
	return &EmailSender{
		Host:        host,
		Port:        port,
		User:        user,
		Password:    password,
		From:        from,
		fromAddress: addr.Address,
		fromName:    addr.Name,
	}, nil
}

// Send delivers one message over SMTP. One attempt, no retry.
func (s *EmailSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending email via SMTP: %w", err)
	}
	return nil
}
