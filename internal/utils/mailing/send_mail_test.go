package mailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailerRejectsBadPort(t *testing.T) {
	_, err := NewMailer(MailConfig{SMTPHost: "smtp.local", SMTPPort: "smtp"})
	assert.Error(t, err)
}

func TestFromUsesSenderName(t *testing.T) {
	m, err := NewMailer(MailConfig{SMTPPort: "587", SMTPEmail: "menu@example.com", SMTPSender: "Bistro"})
	require.NoError(t, err)
	assert.Equal(t, `"Bistro" <menu@example.com>`, m.(*smtpMailer).from())

	m, err = NewMailer(MailConfig{SMTPPort: "587", SMTPEmail: "menu@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "menu@example.com", m.(*smtpMailer).from())
}
