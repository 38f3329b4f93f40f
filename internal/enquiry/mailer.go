package enquiry

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/rnperera/portfolio-backend/pkg/logging"
)

// ErrProviderRejected reports a delivery attempt the provider explicitly
// refused. The handler maps it to 502; any other send error maps to 500.
var ErrProviderRejected = errors.New("enquiry: provider rejected message")

// Email is one provider message ready to send.
type Email struct {
	Subject     string
	Text        string
	HTML        string
	ReplyTo     string
	ReplyToName string
}

// EmailSender delivers one email and returns the provider-assigned message
// id when available.
type EmailSender interface {
	Send(ctx context.Context, e Email) (id string, err error)
}

// SendGridConfig holds configuration for SendGrid delivery.
type SendGridConfig struct {
	APIKey    string
	ToEmail   string
	ToName    string
	FromEmail string
	FromName  string
}

// SendGridSender sends enquiry emails via the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	toEmail   string
	toName    string
	fromEmail string
	fromName  string
	logger    *logging.Logger
}

// NewSendGridSender creates a SendGrid sender, or nil when no API key is
// configured. Callers treat a nil sender as log-only mode.
func NewSendGridSender(cfg SendGridConfig, logger *logging.Logger) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.FromName == "" {
		cfg.FromName = "Portfolio Enquiries"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		toEmail:   cfg.ToEmail,
		toName:    cfg.ToName,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

// Send delivers e exactly once. No retry: a failed delivery is reported and
// left to the submitter to repeat.
func (s *SendGridSender) Send(ctx context.Context, e Email) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("enquiry: sendgrid client not configured")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(s.toName, s.toEmail)
	message := mail.NewSingleEmail(from, e.Subject, to, e.Text, e.HTML)
	if e.ReplyTo != "" {
		// Replies route straight back to the submitter.
		message.SetReplyTo(mail.NewEmail(e.ReplyToName, e.ReplyTo))
	}

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.logger.Error("sendgrid send failed", "error", err)
		return "", fmt.Errorf("enquiry: sendgrid send: %w", err)
	}

	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid rejected message", "status", response.StatusCode, "body", response.Body)
		return "", ErrProviderRejected
	}

	var id string
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		id = ids[0]
	}
	s.logger.Info("enquiry email sent", "status", response.StatusCode, "message_id", id)
	return id, nil
}

// EmailForSubmission builds the provider message for a normalized enquiry.
// Every interpolated value is HTML-escaped; the message body keeps its
// whitespace in both the text and HTML parts.
func EmailForSubmission(e Enquiry) Email {
	subject := fmt.Sprintf("New enquiry: %s from %s", e.Type, e.Name)

	var text strings.Builder
	text.WriteString("Category: " + e.Type + "\n")
	if e.Other != "" {
		text.WriteString("Category detail: " + e.Other + "\n")
	}
	text.WriteString("Name: " + e.Name + "\n")
	text.WriteString("Email: " + e.Email + "\n")
	if e.Phone != "" {
		text.WriteString("Phone: " + e.Phone + "\n")
	}
	text.WriteString("\n" + e.Message + "\n")

	var body strings.Builder
	body.WriteString("<h2>New enquiry</h2>")
	writeHTMLRow(&body, "Category", e.Type)
	if e.Other != "" {
		writeHTMLRow(&body, "Category detail", e.Other)
	}
	writeHTMLRow(&body, "Name", e.Name)
	writeHTMLRow(&body, "Email", e.Email)
	if e.Phone != "" {
		writeHTMLRow(&body, "Phone", e.Phone)
	}
	body.WriteString(`<p><strong>Message</strong></p><pre style="white-space:pre-wrap;font-family:inherit">`)
	body.WriteString(html.EscapeString(e.Message))
	body.WriteString("</pre>")

	return Email{
		Subject:     subject,
		Text:        text.String(),
		HTML:        body.String(),
		ReplyTo:     e.Email,
		ReplyToName: e.Name,
	}
}

func writeHTMLRow(b *strings.Builder, label, value string) {
	b.WriteString("<p><strong>")
	b.WriteString(html.EscapeString(label))
	b.WriteString(":</strong> ")
	b.WriteString(html.EscapeString(value))
	b.WriteString("</p>")
}
