package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/voicetutor/pkg/models"
)

// UserRepository persists accounts and their notification settings.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// GetByID returns a user, or nil when unknown.
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	var u models.User
	found := false
	err := withRetry("get user", func() error {
		err := DB.Get(&u, `
			SELECT id, display_name, telegram_chat_id, notification_enabled,
			       notification_hour, created_at, updated_at
			FROM users
			WHERE id = $1`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &u, nil
}

// Upsert writes the account, inserting on first save.
func (r *UserRepository) Upsert(u models.User) error {
	err := withRetry("upsert user", func() error {
		_, err := DB.Exec(`
			INSERT INTO users (
				id, display_name, telegram_chat_id, notification_enabled,
				notification_hour, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				display_name = $2,
				telegram_chat_id = $3,
				notification_enabled = $4,
				notification_hour = $5,
				updated_at = $7`,
			u.ID, u.DisplayName, u.TelegramChatID, u.NotificationEnabled,
			u.NotificationHour, u.CreatedAt, u.UpdatedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// UsersForNotification returns users with reminders enabled for the given
// hour who have a Telegram chat linked.
func (r *UserRepository) UsersForNotification(hour int) ([]models.User, error) {
	var users []models.User
	err := withRetry("list users for notification", func() error {
		return DB.Select(&users, `
			SELECT id, display_name, telegram_chat_id, notification_enabled,
			       notification_hour, created_at, updated_at
			FROM users
			WHERE notification_enabled = true
			  AND notification_hour = $1
			  AND telegram_chat_id != 0`, hour)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users for notification: %w", err)
	}
	return users, nil
}
