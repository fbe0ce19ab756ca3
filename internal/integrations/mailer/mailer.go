package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Mailer отправляет письма через SMTP
// Вся отправка best-effort: вызывающая сторона логирует ошибку и продолжает,
// провал письма никогда не откатывает основную операцию
type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
	log        Logger
}

// New создает новый SMTP mailer
func New(host string, port int, username, password, from, adminEmail string, log Logger) *Mailer {
	return &Mailer{
		dialer:     gomail.NewDialer(host, port, username, password),
		from:       from,
		adminEmail: adminEmail,
		log:        log,
	}
}

// Send отправляет письмо указанному получателю
func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: failed to send email to %s: %w", to, err)
	}

	return nil
}

// SendToAdmin отправляет служебное письмо администратору
func (m *Mailer) SendToAdmin(subject, body string) error {
	return m.Send(m.adminEmail, subject, body)
}
