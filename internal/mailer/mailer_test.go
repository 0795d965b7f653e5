package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/sitebuilder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestSendWithoutCredentials(t *testing.T) {
	m := New(config.SMTPConfig{Host: "smtp.example.com", Port: 587})

	assert.False(t, m.Enabled())
	assert.ErrorIs(t, m.Send(context.Background(), Message{To: "owner@example.com"}), ErrNotConfigured)
}

func TestSendBuildsMessage(t *testing.T) {
	m := New(config.SMTPConfig{Host: "smtp.example.com", Port: 587, User: "bot@example.com", Password: "pw", From: "bot@example.com"})

	var captured *gomail.Message
	m.send = func(msg *gomail.Message) error {
		captured = msg
		return nil
	}

	err := m.Send(context.Background(), Message{To: "owner@example.com", Subject: "Hello", HTMLBody: "<p>hi</p>"})
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, []string{"bot@example.com"}, captured.GetHeader("From"))
	assert.Equal(t, []string{"owner@example.com"}, captured.GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, captured.GetHeader("Subject"))
}

func TestSendWrapsTransportError(t *testing.T) {
	m := New(config.SMTPConfig{Host: "smtp.example.com", Port: 587, User: "bot", Password: "pw", From: "bot"})
	transportErr := errors.New("535 authentication failed")
	m.send = func(*gomail.Message) error { return transportErr }

	err := m.Send(context.Background(), Message{To: "owner@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, transportErr)
	assert.Contains(t, err.Error(), "smtp.example.com")
}
