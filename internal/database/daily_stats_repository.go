package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/voicetutor/pkg/models"
)

// DailyStatsRepository accumulates one row per user per day.
type DailyStatsRepository struct{}

func NewDailyStatsRepository() *DailyStatsRepository {
	return &DailyStatsRepository{}
}

// Get returns the stats row for a day, or nil when nothing was recorded.
func (r *DailyStatsRepository) Get(userID, date string) (*models.DailyStats, error) {
	var stats models.DailyStats
	found := false
	err := withRetry("get daily stats", func() error {
		err := DB.Get(&stats, `
			SELECT user_id, date, minutes_studied, words_learned, words_reviewed,
			       lessons_completed, correct_answers, total_attempts,
			       points_earned, daily_accuracy
			FROM daily_stats
			WHERE user_id = $1 AND date = $2`, userID, date)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &stats, nil
}

// Add folds a delta into the day's row, creating it on first write.
// Counters accumulate; accuracy is recomputed from the summed counters.
func (r *DailyStatsRepository) Add(delta models.DailyStats) error {
	current, err := r.Get(delta.UserID, delta.Date)
	if err != nil {
		return err
	}

	next := models.DailyStats{UserID: delta.UserID, Date: delta.Date}
	if current != nil {
		next = *current
	}
	next.MinutesStudied += delta.MinutesStudied
	next.WordsLearned += delta.WordsLearned
	next.WordsReviewed += delta.WordsReviewed
	next.LessonsCompleted += delta.LessonsCompleted
	next.CorrectAnswers += delta.CorrectAnswers
	next.TotalAttempts += delta.TotalAttempts
	next.PointsEarned += delta.PointsEarned
	if next.TotalAttempts > 0 {
		next.DailyAccuracy = float64(next.CorrectAnswers) / float64(next.TotalAttempts) * 100
	}

	err = withRetry("upsert daily stats", func() error {
		_, err := DB.Exec(`
			INSERT INTO daily_stats (
				user_id, date, minutes_studied, words_learned, words_reviewed,
				lessons_completed, correct_answers, total_attempts,
				points_earned, daily_accuracy
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (user_id, date) DO UPDATE SET
				minutes_studied = $3,
				words_learned = $4,
				words_reviewed = $5,
				lessons_completed = $6,
				correct_answers = $7,
				total_attempts = $8,
				points_earned = $9,
				daily_accuracy = $10`,
			next.UserID, next.Date, next.MinutesStudied, next.WordsLearned,
			next.WordsReviewed, next.LessonsCompleted, next.CorrectAnswers,
			next.TotalAttempts, next.PointsEarned, next.DailyAccuracy)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert daily stats: %w", err)
	}
	return nil
}

// Recent returns up to limit most recent rows for a user.
func (r *DailyStatsRepository) Recent(userID string, limit int) ([]models.DailyStats, error) {
	var rows []models.DailyStats
	err := withRetry("list daily stats", func() error {
		return DB.Select(&rows, `
			SELECT user_id, date, minutes_studied, words_learned, words_reviewed,
			       lessons_completed, correct_answers, total_attempts,
			       points_earned, daily_accuracy
			FROM daily_stats
			WHERE user_id = $1
			ORDER BY date DESC
			LIMIT $2`, userID, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list daily stats: %w", err)
	}
	return rows, nil
}
