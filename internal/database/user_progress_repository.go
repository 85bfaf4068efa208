package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/voicetutor/pkg/models"
)

// UserProgressRepository persists the per-user curriculum document.
type UserProgressRepository struct{}

func NewUserProgressRepository() *UserProgressRepository {
	return &UserProgressRepository{}
}

// Get returns the user's curriculum progress, or nil when the user has
// no document yet.
func (r *UserProgressRepository) Get(userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	found := false
	err := withRetry("get user progress", func() error {
		err := DB.Get(&progress, `
			SELECT user_id, words_learned, current_topic, last_position,
			       progress_percentage, vocabulary, topics_completed,
			       conversation_history, last_session_at, created_at, updated_at
			FROM user_progress
			WHERE user_id = $1`, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user progress: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &progress, nil
}

// Upsert writes the whole document, inserting on first save.
func (r *UserProgressRepository) Upsert(p models.UserProgress) error {
	err := withRetry("upsert user progress", func() error {
		_, err := DB.Exec(`
			INSERT INTO user_progress (
				user_id, words_learned, current_topic, last_position,
				progress_percentage, vocabulary, topics_completed,
				conversation_history, last_session_at, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (user_id) DO UPDATE SET
				words_learned = $2,
				current_topic = $3,
				last_position = $4,
				progress_percentage = $5,
				vocabulary = $6,
				topics_completed = $7,
				conversation_history = $8,
				last_session_at = $9,
				updated_at = $11`,
			p.UserID, p.WordsLearned, p.CurrentTopic, p.LastPosition,
			p.ProgressPercentage, p.Vocabulary, p.TopicsCompleted,
			p.ConversationHistory, p.LastSessionAt, p.CreatedAt, p.UpdatedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert user progress: %w", err)
	}
	return nil
}
