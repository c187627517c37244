package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Mo2025mo/la-automotive/internal/config"
	"github.com/Mo2025mo/la-automotive/internal/models"

	"github.com/wneessen/go-mail"
)

// Notifier emails the garage about new inquiries. When SMTP is not
// configured the rendered notification goes to the log instead, so the
// service keeps working in development and nothing blocks a submission.
type Notifier struct {
	cfg *config.Config
}

func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{cfg: cfg}
}

// InquirySubmitted sends (or logs) the notification for a new inquiry.
// Failures are logged and swallowed; an unreachable SMTP server must not
// fail the customer's submission.
func (n *Notifier) InquirySubmitted(inquiry models.Inquiry) {
	body := n.renderBody(inquiry)

	if !n.cfg.SMTP.Enabled {
		log.Printf("[EMAIL NOTIFICATION] To: %s\nSubject: %s\n%s", n.cfg.SMTP.To, inquiry.Subject, body)
		return
	}

	if err := n.send(inquiry.Subject, body); err != nil {
		log.Printf("failed to send inquiry notification: %v", err)
	}
}

func (n *Notifier) send(subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.SMTP.From); err != nil {
		return err
	}
	if err := msg.To(n.cfg.SMTP.To); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(n.cfg.SMTP.Host,
		mail.WithPort(n.cfg.SMTP.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.SMTP.Username),
		mail.WithPassword(n.cfg.SMTP.Password),
	)
	if err != nil {
		return err
	}

	return client.DialAndSend(msg)
}

func (n *Notifier) renderBody(inquiry models.Inquiry) string {
	body := fmt.Sprintf(`Customer Details:
Name: %s
Email: %s
Phone: %s
Preferred Contact: %s
`,
		orNotProvided(inquiry.CustomerName),
		orNotProvided(inquiry.CustomerEmail),
		orNotProvided(inquiry.CustomerPhone),
		orNotProvided(inquiry.ContactMethod),
	)

	if inquiry.VehicleDetails != "" {
		body += fmt.Sprintf("\nVehicle: %s\n", inquiry.VehicleDetails)
	}
	if inquiry.ServiceType != "" {
		body += fmt.Sprintf("Category: %s\n", inquiry.ServiceType)
	}

	body += fmt.Sprintf("\nMessage:\n%s\n\nSubmitted: %s\nInquiry ID: %s\n",
		inquiry.Message,
		inquiry.Timestamp.Format(time.RFC1123),
		inquiry.ID,
	)
	return body
}

func orNotProvided(value string) string {
	if value == "" {
		return "Not provided"
	}
	return value
}
