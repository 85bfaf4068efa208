package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/voicetutor/pkg/models"
)

const vocabularyCardColumns = `
	user_id, word, translation, example_sentence, topic, ease_factor,
	"interval", repetitions, next_review_date, last_reviewed_at, times_seen,
	times_correct, times_wrong, mastery_level, is_mastered, created_at,
	updated_at`

// VocabularyCardRepository persists the spaced-repetition deck.
type VocabularyCardRepository struct{}

func NewVocabularyCardRepository() *VocabularyCardRepository {
	return &VocabularyCardRepository{}
}

// GetByWord returns one card, or nil when the word has no card yet.
func (r *VocabularyCardRepository) GetByWord(userID, word string) (*models.VocabularyCard, error) {
	var card models.VocabularyCard
	found := false
	err := withRetry("get vocabulary card", func() error {
		err := DB.Get(&card, `
			SELECT `+vocabularyCardColumns+`
			FROM vocabulary_cards
			WHERE user_id = $1 AND word = $2`, userID, word)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get vocabulary card: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &card, nil
}

// Upsert writes one card, inserting on first save.
func (r *VocabularyCardRepository) Upsert(card models.VocabularyCard) error {
	err := withRetry("upsert vocabulary card", func() error {
		_, err := DB.Exec(`
			INSERT INTO vocabulary_cards (`+vocabularyCardColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			ON CONFLICT (user_id, word) DO UPDATE SET
				translation = $3,
				example_sentence = $4,
				topic = $5,
				ease_factor = $6,
				"interval" = $7,
				repetitions = $8,
				next_review_date = $9,
				last_reviewed_at = $10,
				times_seen = $11,
				times_correct = $12,
				times_wrong = $13,
				mastery_level = $14,
				is_mastered = $15,
				updated_at = $17`,
			card.UserID, card.Word, card.Translation, card.ExampleSentence,
			card.Topic, card.EaseFactor, card.Interval, card.Repetitions,
			card.NextReviewDate, card.LastReviewedAt, card.TimesSeen,
			card.TimesCorrect, card.TimesWrong, card.MasteryLevel,
			card.IsMastered, card.CreatedAt, card.UpdatedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert vocabulary card: %w", err)
	}
	return nil
}

// AllForUser returns the user's whole deck.
func (r *VocabularyCardRepository) AllForUser(userID string) ([]models.VocabularyCard, error) {
	var cards []models.VocabularyCard
	err := withRetry("list vocabulary cards", func() error {
		return DB.Select(&cards, `
			SELECT `+vocabularyCardColumns+`
			FROM vocabulary_cards
			WHERE user_id = $1
			ORDER BY word`, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vocabulary cards: %w", err)
	}
	return cards, nil
}

// DueForUser returns unmastered cards due for review, hardest first.
// A zero limit means no limit.
func (r *VocabularyCardRepository) DueForUser(userID string, now time.Time, limit int) ([]models.VocabularyCard, error) {
	query := `
		SELECT ` + vocabularyCardColumns + `
		FROM vocabulary_cards
		WHERE user_id = $1 AND is_mastered = false AND next_review_date <= $2
		ORDER BY repetitions = 0 DESC, ease_factor, next_review_date`
	args := []interface{}{userID, now}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	var cards []models.VocabularyCard
	err := withRetry("list due vocabulary cards", func() error {
		return DB.Select(&cards, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list due vocabulary cards: %w", err)
	}
	return cards, nil
}

// CountDue returns how many cards await review, for reminder messages.
func (r *VocabularyCardRepository) CountDue(userID string, now time.Time) (int, error) {
	var count int
	err := withRetry("count due vocabulary cards", func() error {
		return DB.Get(&count, `
			SELECT COUNT(*)
			FROM vocabulary_cards
			WHERE user_id = $1 AND is_mastered = false AND next_review_date <= $2`,
			userID, now)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count due vocabulary cards: %w", err)
	}
	return count, nil
}
