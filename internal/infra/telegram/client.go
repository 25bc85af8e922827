// internal/infra/telegram/client.go
package telegram

import (
	"fmt"

	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot    *telebot.Bot
	logger *logrus.Logger
}

func NewTelebotAdapter(b *telebot.Bot, logger *logrus.Logger) *TelebotAdapter {
	return &TelebotAdapter{bot: b, logger: logger}
}

// SendMessage sends a text message to the specified recipient.
// Any delivery failure is logged and wrapped in ErrSendFailed.
func (tba *TelebotAdapter) SendMessage(recipientChatID int64, text string) error {
	recipient := &telebot.Chat{ID: recipientChatID}
	if _, err := tba.bot.Send(recipient, text); err != nil {
		tba.logger.Errorf("message was not delivered to chat %d: %v", recipientChatID, err)
		return fmt.Errorf("%w: %v", domainTelegram.ErrSendFailed, err)
	}
	tba.logger.Infof("message delivered to chat %d", recipientChatID)
	return nil
}
