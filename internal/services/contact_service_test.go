package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []*resend.SendEmailRequest
	id   string
	err  error
}

func (m *fakeMailer) Send(_ context.Context, email *resend.SendEmailRequest) (string, error) {
	m.sent = append(m.sent, email)
	return m.id, m.err
}

func validForm() ContactForm {
	return ContactForm{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Nice site.\nSecond line.",
	}
}

func TestContactValidation(t *testing.T) {
	mailer := &fakeMailer{}
	svc := &ContactService{mailer: mailer, to: "owner@example.com", from: "Portfolio <owner@example.com>"}

	cases := map[string]ContactForm{
		"missing name":    {Email: "a@b.co", Subject: "s", Message: "m"},
		"missing email":   {Name: "J", Subject: "s", Message: "m"},
		"missing subject": {Name: "J", Email: "a@b.co", Message: "m"},
		"missing message": {Name: "J", Email: "a@b.co", Subject: "s"},
		"whitespace only": {Name: "  ", Email: "a@b.co", Subject: "s", Message: "m"},
		"bad email":       {Name: "J", Email: "bad-email", Subject: "s", Message: "m"},
		"email no tld":    {Name: "J", Email: "a@b", Subject: "s", Message: "m"},
	}
	for name, form := range cases {
		_, err := svc.Send(context.Background(), form)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, name)
	}
	assert.Empty(t, mailer.sent, "invalid submissions never reach the provider")
}

func TestContactDryRun(t *testing.T) {
	mailer := &fakeMailer{}
	svc := &ContactService{mailer: mailer, to: "owner@example.com", from: "Portfolio <owner@example.com>", dryRun: true}

	result, err := svc.Send(context.Background(), validForm())
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Empty(t, result.ID)
	assert.Empty(t, mailer.sent, "dry run performs no provider call")
}

func TestContactSend(t *testing.T) {
	mailer := &fakeMailer{id: "email-123"}
	svc := &ContactService{mailer: mailer, to: "owner@example.com", from: "Portfolio <owner@example.com>"}

	result, err := svc.Send(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, "email-123", result.ID)

	require.Len(t, mailer.sent, 1)
	email := mailer.sent[0]
	assert.Equal(t, []string{"owner@example.com"}, email.To)
	assert.Equal(t, "[Portfolio] Hello", email.Subject)
	assert.Equal(t, "jane@example.com", email.ReplyTo)
	assert.Contains(t, email.Text, "Name: Jane")
	assert.Contains(t, email.Html, "<br/>")
}

func TestContactEscapesHTML(t *testing.T) {
	mailer := &fakeMailer{}
	svc := &ContactService{mailer: mailer, to: "owner@example.com", from: "p"}

	form := validForm()
	form.Name = `<script>alert("x")</script>`
	form.Message = `a < b & "c"`

	_, err := svc.Send(context.Background(), form)
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	html := mailer.sent[0].Html
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "a &lt; b &amp;")
}

func TestContactProviderError(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("upstream said no")}
	svc := &ContactService{mailer: mailer, to: "owner@example.com", from: "p"}

	_, err := svc.Send(context.Background(), validForm())
	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusBadGateway, providerErr.StatusCode)
	assert.Equal(t, "SEND_FAILED", providerErr.Code)
	assert.Equal(t, "upstream said no", providerErr.Message)
}

func TestContactMisconfigured(t *testing.T) {
	// no mailer and not a dry run
	svc := &ContactService{to: "owner@example.com", from: "p"}
	_, err := svc.Send(context.Background(), validForm())
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
}
