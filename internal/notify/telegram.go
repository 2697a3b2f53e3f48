// Package notify delivers short roster change messages to chat services.
package notify

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/daphos/shift-service/internal/config"
)

// ErrNotConfigured is returned by NewTelegram when no token or chat is set.
var ErrNotConfigured = errors.New("telegram notifications not configured")

// SendTimeout bounds one call to the Telegram API.
const SendTimeout = 5 * time.Second

// Telegram posts messages to one chat.
type Telegram struct {
	bot  *telebot.Bot
	chat telebot.ChatID
}

// NewTelegram builds an offline bot; no request is made until the first Notify.
func NewTelegram(cfg config.NotificationConfig) (*Telegram, error) {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return nil, ErrNotConfigured
	}
	bot, err := telebot.NewBot(telebot.Settings{
		Token:   cfg.TelegramToken,
		Offline: true,
		Client:  &http.Client{Timeout: SendTimeout},
	})
	if err != nil {
		return nil, err
	}
	return &Telegram{bot: bot, chat: telebot.ChatID(cfg.TelegramChatID)}, nil
}

// Notify sends text to the configured chat.
func (t *Telegram) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := t.bot.Send(t.chat, text)
	return err
}
