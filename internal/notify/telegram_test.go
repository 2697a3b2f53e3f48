package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daphos/shift-service/internal/config"
)

func TestNewTelegramRequiresTokenAndChat(t *testing.T) {
	_, err := NewTelegram(config.NotificationConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewTelegram(config.NotificationConfig{TelegramToken: "123:abc"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewTelegramIsOffline(t *testing.T) {
	tg, err := NewTelegram(config.NotificationConfig{TelegramToken: "123:abc", TelegramChatID: 42})
	require.NoError(t, err)
	assert.EqualValues(t, 42, tg.chat)
}
