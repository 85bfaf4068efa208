package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/voicetutor/pkg/models"
)

const podcastColumns = `
	user_id, session_id, last_topic, last_context, last_position,
	conversation_summary, topics_discussed, vocabulary_used,
	total_conversations, total_minutes, fluency_level, common_mistakes,
	improvements, conversation_history, last_session_at, created_at, updated_at`

// PodcastRepository persists conversation-mode progress.
type PodcastRepository struct{}

func NewPodcastRepository() *PodcastRepository {
	return &PodcastRepository{}
}

// Get returns the user's conversation progress, or nil when absent.
func (r *PodcastRepository) Get(userID string) (*models.PodcastProgress, error) {
	var pp models.PodcastProgress
	found := false
	err := withRetry("get podcast progress", func() error {
		err := DB.Get(&pp, `
			SELECT `+podcastColumns+`
			FROM podcast_progress
			WHERE user_id = $1`, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get podcast progress: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &pp, nil
}

// Upsert writes the whole conversation document.
func (r *PodcastRepository) Upsert(pp models.PodcastProgress) error {
	err := withRetry("upsert podcast progress", func() error {
		_, err := DB.Exec(`
			INSERT INTO podcast_progress (`+podcastColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			ON CONFLICT (user_id) DO UPDATE SET
				session_id = $2,
				last_topic = $3,
				last_context = $4,
				last_position = $5,
				conversation_summary = $6,
				topics_discussed = $7,
				vocabulary_used = $8,
				total_conversations = $9,
				total_minutes = $10,
				fluency_level = $11,
				common_mistakes = $12,
				improvements = $13,
				conversation_history = $14,
				last_session_at = $15,
				updated_at = $17`,
			pp.UserID, pp.SessionID, pp.LastTopic, pp.LastContext, pp.LastPosition,
			pp.ConversationSummary, pp.TopicsDiscussed, pp.VocabularyUsed,
			pp.TotalConversations, pp.TotalMinutes, pp.FluencyLevel, pp.CommonMistakes,
			pp.Improvements, pp.ConversationHistory, pp.LastSessionAt, pp.CreatedAt,
			pp.UpdatedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert podcast progress: %w", err)
	}
	return nil
}
