package models

import "time"

// User is an account known to the tutor. TelegramChatID is optional and
// only set for users who linked the Telegram reminder channel.
type User struct {
	ID                  string    `json:"id" db:"id"`
	DisplayName         string    `json:"display_name" db:"display_name"`
	TelegramChatID      int64     `json:"telegram_chat_id" db:"telegram_chat_id"`
	NotificationEnabled bool      `json:"notification_enabled" db:"notification_enabled"`
	NotificationHour    int       `json:"notification_hour" db:"notification_hour"` // 0-23
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
