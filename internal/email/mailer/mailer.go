// internal/email/mailer/mailer.go
package mailer

import (
	"context"

	"github.com/dangerclosesec/crmaster/internal/email"
	"github.com/dangerclosesec/crmaster/internal/metrics"
)

const (
	AgentInviteSubject  = "Agent invite"
	LeadAssignedSubject = "You've been assigned to the new lead."

	templateAgentInvite  = "agent_invite"
	templateLeadAssigned = "lead_assigned"
)

// Sender is satisfied by *email.Service.
type Sender interface {
	SendEmail(ctx context.Context, data email.EmailData) error
}

// Mailer sends the fixed transactional mails of the CRM.
type Mailer struct {
	sender  Sender
	baseURL string
}

func New(sender Sender, baseURL string) *Mailer {
	return &Mailer{sender: sender, baseURL: baseURL}
}

type agentInviteData struct {
	LoginURL string
}

// AgentInvited tells a freshly provisioned agent to log in.
func (m *Mailer) AgentInvited(ctx context.Context, to string) error {
	return m.send(ctx, email.EmailData{
		To:           to,
		Subject:      AgentInviteSubject,
		TemplateName: templateAgentInvite,
		TemplateData: agentInviteData{LoginURL: m.baseURL + "/login/"},
	})
}

type leadAssignedData struct {
	LeadURL string
}

// LeadAssigned tells an agent a lead was assigned to them.
func (m *Mailer) LeadAssigned(ctx context.Context, to string) error {
	return m.send(ctx, email.EmailData{
		To:           to,
		Subject:      LeadAssignedSubject,
		TemplateName: templateLeadAssigned,
		TemplateData: leadAssignedData{LeadURL: m.baseURL + "/leads/"},
	})
}

func (m *Mailer) send(ctx context.Context, data email.EmailData) error {
	err := m.sender.SendEmail(ctx, data)
	metrics.RecordNotification(data.TemplateName, err)
	return err
}
