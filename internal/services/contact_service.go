package services

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/resend/resend-go/v2"

	"mahrous.dev/internal/config"
)

const subjectPrefix = "[Portfolio] "

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactForm is a contact-page submission.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResult reports a successful relay. ID is empty in dry-run mode.
type ContactResult struct {
	ID     string
	DryRun bool
}

// ValidationError rejects a submission with a client-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConfigError means the relay is not set up to send at all.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// ProviderError is a delivery-provider failure normalized to a uniform
// shape. StatusCode defaults to 502 when the provider gave none.
type ProviderError struct {
	Message    string
	Code       string
	StatusCode int
}

func (e *ProviderError) Error() string { return e.Message }

// Mailer submits a composed email and returns the provider-assigned id.
type Mailer interface {
	Send(ctx context.Context, email *resend.SendEmailRequest) (string, error)
}

type resendMailer struct {
	client *resend.Client
}

func (m *resendMailer) Send(ctx context.Context, email *resend.SendEmailRequest) (string, error) {
	sent, err := m.client.Emails.SendWithContext(ctx, email)
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}

// ContactService validates contact submissions and relays them to the
// email provider, or logs them in dry-run mode.
type ContactService struct {
	mailer Mailer
	to     string
	from   string
	dryRun bool
}

// NewContactService creates a new ContactService
func NewContactService(cfg *config.Config) *ContactService {
	svc := &ContactService{
		to:     cfg.ContactToEmail,
		from:   cfg.ContactFromEmail,
		dryRun: cfg.DryRun,
	}
	if cfg.ResendAPIKey != "" {
		svc.mailer = &resendMailer{client: resend.NewClient(cfg.ResendAPIKey)}
	}
	return svc
}

// Send validates the form, composes the email, and either logs it (dry
// run) or submits it. There is no retry; a provider failure ends the
// conversation with a ProviderError.
func (s *ContactService) Send(ctx context.Context, form ContactForm) (*ContactResult, error) {
	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)
	subject := strings.TrimSpace(form.Subject)
	message := strings.TrimSpace(form.Message)

	if name == "" || email == "" || subject == "" || message == "" {
		return nil, &ValidationError{Message: "All fields are required."}
	}
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Message: "Please provide a valid email address."}
	}

	if s.mailer == nil && !s.dryRun {
		return nil, &ConfigError{Message: "Missing RESEND_API_KEY"}
	}
	if s.to == "" {
		return nil, &ConfigError{Message: "Missing CONTACT_TO_EMAIL"}
	}

	payload := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		ReplyTo: email,
		Subject: subjectPrefix + subject,
		Text:    fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", name, email, message),
		Html:    htmlBody(name, email, message),
	}

	if s.dryRun {
		slog.Info("dry run enabled, email not sent",
			"from", payload.From, "to", s.to, "subject", payload.Subject, "reply-to", email)
		return &ContactResult{DryRun: true}, nil
	}

	id, err := s.mailer.Send(ctx, payload)
	if err != nil {
		return nil, normalizeProviderError(err)
	}
	return &ContactResult{ID: id}, nil
}

// htmlBody builds the HTML rendition of the email. Every user-supplied
// field passes through escapeHTML exactly once, here.
func htmlBody(name, email, message string) string {
	escaped := escapeHTML(message)
	escaped = strings.ReplaceAll(escaped, "\n", "<br/>")
	return fmt.Sprintf(
		"<p><strong>Name:</strong> %s</p>\n<p><strong>Email:</strong> %s</p>\n<hr />\n<p>%s</p>",
		escapeHTML(name), escapeHTML(email), escaped)
}

// escapeHTML is the single chokepoint for escaping user input before it
// is interpolated into markup.
func escapeHTML(value string) string {
	return html.EscapeString(value)
}

func normalizeProviderError(err error) *ProviderError {
	slog.Error("contact email send failed", "error", err)
	return &ProviderError{
		Message:    err.Error(),
		Code:       "SEND_FAILED",
		StatusCode: http.StatusBadGateway,
	}
}
