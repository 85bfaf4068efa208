package notify

import (
	"fmt"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram sends review reminders through a Telegram bot.
type Telegram struct {
	api *tgbotapi.BotAPI
}

// NewTelegram creates a notifier from the TELEGRAM_TOKEN environment
// variable.
func NewTelegram() (*Telegram, error) {
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN environment variable is not set")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Telegram{api: api}, nil
}

// SendReviewReminder tells a user how many vocabulary cards await review.
// The message is bilingual to match the tutoring sessions.
func (t *Telegram) SendReviewReminder(chatID int64, displayName string, dueCount int) error {
	name := displayName
	if name == "" {
		name = "there"
	}
	text := fmt.Sprintf(
		"مرحباً %s! لديك %d كلمة جاهزة للمراجعة.\nHi %s! You have %d words ready for review. A few minutes of practice keeps your streak alive!",
		name, dueCount, name, dueCount,
	)

	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
