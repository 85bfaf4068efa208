package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/voicetutor/pkg/models"
)

const sentencesColumns = `
	user_id, session_id, generated_sentences, completed_sentences,
	current_sentence_index, total_sentences, current_level,
	learned_sentences_history, session_status, created_at, last_activity`

// SentencesRepository persists sentence-drill sessions.
type SentencesRepository struct{}

func NewSentencesRepository() *SentencesRepository {
	return &SentencesRepository{}
}

// GetActive returns the user's most recently touched active drill session,
// or nil when none is open.
func (r *SentencesRepository) GetActive(userID string) (*models.SentencesProgress, error) {
	var sp models.SentencesProgress
	found := false
	err := withRetry("get active sentences session", func() error {
		err := DB.Get(&sp, `
			SELECT `+sentencesColumns+`
			FROM sentences_progress
			WHERE user_id = $1 AND session_status = $2
			ORDER BY last_activity DESC
			LIMIT 1`, userID, models.SentencesSessionActive)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get active sentences session: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &sp, nil
}

// GetBySession returns one drill session, or nil when it doesn't exist.
func (r *SentencesRepository) GetBySession(userID, sessionID string) (*models.SentencesProgress, error) {
	var sp models.SentencesProgress
	found := false
	err := withRetry("get sentences session", func() error {
		err := DB.Get(&sp, `
			SELECT `+sentencesColumns+`
			FROM sentences_progress
			WHERE user_id = $1 AND session_id = $2`, userID, sessionID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sentences session: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &sp, nil
}

// Upsert writes the whole drill session document.
func (r *SentencesRepository) Upsert(sp models.SentencesProgress) error {
	err := withRetry("upsert sentences session", func() error {
		_, err := DB.Exec(`
			INSERT INTO sentences_progress (`+sentencesColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (user_id, session_id) DO UPDATE SET
				generated_sentences = $3,
				completed_sentences = $4,
				current_sentence_index = $5,
				total_sentences = $6,
				current_level = $7,
				learned_sentences_history = $8,
				session_status = $9,
				last_activity = $11`,
			sp.UserID, sp.SessionID, sp.GeneratedSentences, sp.CompletedSentences,
			sp.CurrentSentenceIndex, sp.TotalSentences, sp.CurrentLevel,
			sp.LearnedSentencesHistory, sp.SessionStatus, sp.CreatedAt, sp.LastActivity)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert sentences session: %w", err)
	}
	return nil
}

// Complete marks a drill session finished.
func (r *SentencesRepository) Complete(userID, sessionID string, now time.Time) error {
	err := withRetry("complete sentences session", func() error {
		_, err := DB.Exec(`
			UPDATE sentences_progress
			SET session_status = $1, last_activity = $2
			WHERE user_id = $3 AND session_id = $4`,
			models.SentencesSessionCompleted, now, userID, sessionID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to complete sentences session: %w", err)
	}
	return nil
}
