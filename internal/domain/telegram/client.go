package telegram

import "errors"

// ErrSendFailed wraps any failure to deliver a message to the chat.
var ErrSendFailed = errors.New("message send failed")

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	SendMessage(recipientChatID int64, text string) error
}
