package mailer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/crmaster/internal/email"
	"github.com/dangerclosesec/crmaster/internal/email/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []email.EmailData
	err  error
}

func (r *recordingSender) SendEmail(_ context.Context, data email.EmailData) error {
	r.sent = append(r.sent, data)
	return r.err
}

func TestAgentInvited(t *testing.T) {
	sender := &recordingSender{}
	m := mailer.New(sender, "http://crm.local")

	require.NoError(t, m.AgentInvited(context.Background(), "agent@example.com"))
	require.Len(t, sender.sent, 1)

	sent := sender.sent[0]
	assert.Equal(t, "agent@example.com", sent.To)
	assert.Equal(t, mailer.AgentInviteSubject, sent.Subject)
	assert.Equal(t, "agent_invite", sent.TemplateName)
	assert.Empty(t, sent.From, "sender is filled in by the email service")
}

func TestLeadAssignedPropagatesTransportErrors(t *testing.T) {
	sender := &recordingSender{err: errors.New("connection refused")}
	m := mailer.New(sender, "http://crm.local")

	err := m.LeadAssigned(context.Background(), "agent@example.com")
	assert.EqualError(t, err, "connection refused")
	require.Len(t, sender.sent, 1)
	assert.Equal(t, mailer.LeadAssignedSubject, sender.sent[0].Subject)
}
