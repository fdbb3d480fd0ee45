// internal/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"github.com/dangerclosesec/crmaster"
	"github.com/dangerclosesec/crmaster/internal/config"
	"github.com/sendgrid/sendgrid-go"
)

var templateFS = crmaster.EmailFS

// Provider identifies supported email providers
type Provider string

const (
	ProviderSMTP     Provider = "smtp"
	ProviderSendgrid Provider = "sendgrid"

	DefaultTemplatePath = "templates/emails"
)

// EmailData contains all necessary information for sending an email
type EmailData struct {
	To           string
	From         string
	FromName     string
	Subject      string
	TemplateName string
	TemplateData interface{}
}

// Service handles email operations
type Service struct {
	provider       Provider
	from           string
	fromName       string
	smtp           config.SMTPOptions
	sendgridClient *sendgrid.Client
	Templates      map[string]*Template
}

type Template struct {
	HTML      *template.Template
	Plaintext *texttemplate.Template
}

// NewEmailService creates a new email service instance. The default sender
// is fixed at construction time and used whenever EmailData.From is empty.
func NewEmailService(opts config.EmailOptions) (*Service, error) {
	s := &Service{
		provider:  Provider(opts.Provider),
		from:      opts.DefaultFrom,
		fromName:  opts.FromName,
		smtp:      opts.SMTP,
		Templates: make(map[string]*Template),
	}

	switch s.provider {
	case ProviderSendgrid:
		s.sendgridClient = sendgrid.NewSendClient(opts.SendgridAPIKey)
	case ProviderSMTP:
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", s.provider)
	}

	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("loading email templates: %w", err)
	}

	return s, nil
}

// loadTemplates loads all email templates from the embedded filesystem
func (s *Service) loadTemplates() error {
	templateGroups, err := templateFS.ReadDir(DefaultTemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read email templates directory: %w", err)
	}

	if len(templateGroups) == 0 {
		return fmt.Errorf("no email templates found")
	}

	for _, group := range templateGroups {
		if !group.IsDir() {
			continue
		}

		groupPath := DefaultTemplatePath + "/" + group.Name()
		groupEntries, err := templateFS.ReadDir(groupPath)
		if err != nil {
			return fmt.Errorf("failed to read email template group %s: %w", group.Name(), err)
		}

		if len(groupEntries) != 2 {
			return fmt.Errorf("invalid email template group %s: must contain exactly two files (HTML and plaintext)", group.Name())
		}

		html, err := template.ParseFS(templateFS, groupPath+"/html.tmpl")
		if err != nil {
			return fmt.Errorf("parsing %s html template: %w", group.Name(), err)
		}

		text, err := texttemplate.ParseFS(templateFS, groupPath+"/plaintext.tmpl")
		if err != nil {
			return fmt.Errorf("parsing %s plaintext template: %w", group.Name(), err)
		}

		s.Templates[group.Name()] = &Template{HTML: html, Plaintext: text}
	}

	return nil
}

// SendEmail renders the named template and hands the message to the
// configured provider. Transport errors are returned as is; there is no
// retry.
func (s *Service) SendEmail(ctx context.Context, data EmailData) error {
	htmlContent, textContent, err := s.renderTemplate(data.TemplateName, data.TemplateData)
	if err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}

	if data.From == "" {
		data.From = s.from
	}
	if data.FromName == "" {
		data.FromName = s.fromName
	}

	switch s.provider {
	case ProviderSendgrid:
		return s.sendWithSendgrid(ctx, data, htmlContent, textContent)
	case ProviderSMTP:
		return s.sendWithSMTP(data, htmlContent, textContent)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.provider)
	}
}

// renderTemplate renders a template with the given data
func (s *Service) renderTemplate(name string, data interface{}) (string, string, error) {
	tmpl, exists := s.Templates[name]
	if !exists {
		return "", "", fmt.Errorf("template %s not found", name)
	}

	var htmlbuf bytes.Buffer
	if err := tmpl.HTML.Execute(&htmlbuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template: %w", err)
	}

	var textbuf bytes.Buffer
	if err := tmpl.Plaintext.Execute(&textbuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template: %w", err)
	}

	return htmlbuf.String(), textbuf.String(), nil
}
