// Package notify emails the site owner about new submissions.
package notify

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/models"
	"gopkg.in/gomail.v2"
)

// Sender delivers messages; *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends best-effort notices in the background. A Mailer without a
// sender drops everything.
type Mailer struct {
	from   string
	to     string
	sender Sender
	logger *log.Logger
	wg     sync.WaitGroup
}

func NewMailer(cfg config.Config) *Mailer {
	m := &Mailer{logger: cfg.Logger}
	if !cfg.MailEnabled() {
		cfg.Logger.Println("SMTP not configured, notifications disabled")
		return m
	}

	m.to = cfg.NotifyEmail
	m.from = cfg.SMTPUser
	if m.from == "" {
		m.from = cfg.NotifyEmail
	}
	m.sender = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return m
}

// NewMailerWithSender is used where the transport is not SMTP.
func NewMailerWithSender(from, to string, sender Sender, logger *log.Logger) *Mailer {
	return &Mailer{from: from, to: to, sender: sender, logger: logger}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.sender != nil
}

// ApplicationReceived tells the owner someone applied to job.
func (m *Mailer) ApplicationReceived(job *models.Job, app *models.JobApplication) {
	if !m.Enabled() {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New application for %q (%s)\n\n", job.Title, job.ID)
	fmt.Fprintf(&b, "Applicant: %s %s <%s>\n", app.FirstName, app.LastName, app.Email)
	if app.Phone != nil {
		fmt.Fprintf(&b, "Phone: %s\n", *app.Phone)
	}
	if app.Experience != nil {
		fmt.Fprintf(&b, "Experience: %s years\n", *app.Experience)
	}
	if files := app.Files(); len(files) > 0 {
		fmt.Fprintf(&b, "Files: %s\n", strings.Join(files, ", "))
	}
	if app.Comments != nil {
		fmt.Fprintf(&b, "\n%s\n", *app.Comments)
	}

	m.send(fmt.Sprintf("New application: %s", job.Title), app.Email, b.String())
}

// ContactReceived forwards a contact form message.
func (m *Mailer) ContactReceived(msg *models.ContactMessage) {
	if !m.Enabled() {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", msg.Name, msg.Email)
	if msg.Phone != nil {
		fmt.Fprintf(&b, "Phone: %s\n", *msg.Phone)
	}
	fmt.Fprintf(&b, "\n%s\n", msg.Message)

	m.send(fmt.Sprintf("Contact form: %s", msg.Subject), msg.Email, b.String())
}

func (m *Mailer) send(subject, replyTo, body string) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Reply-To", replyTo)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.sender.DialAndSend(msg); err != nil {
			m.logger.Printf("sending %q notification failed: %v", subject, err)
		}
	}()
}

// Wait blocks until queued notices are sent.
func (m *Mailer) Wait() {
	if m == nil {
		return
	}
	m.wg.Wait()
}
