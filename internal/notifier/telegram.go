package notifier

import (
	"github.com/Handoyofan/joffre-monitor/internal/telegram"
)

// TelegramNotifier delivers messages to the configured Telegram chat
type TelegramNotifier struct {
	client *telegram.Client
}

// NewTelegramNotifier wraps a Telegram client as a Notifier
func NewTelegramNotifier(client *telegram.Client) *TelegramNotifier {
	return &TelegramNotifier{client: client}
}

// Notify sends the message to the configured chat
func (n *TelegramNotifier) Notify(message string) error {
	return n.client.SendMessage(message)
}
