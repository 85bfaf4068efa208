package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/voicetutor/pkg/models"
)

// AchievementsRepository persists gamification state.
type AchievementsRepository struct{}

func NewAchievementsRepository() *AchievementsRepository {
	return &AchievementsRepository{}
}

// Get returns the user's achievements, or nil when absent.
func (r *AchievementsRepository) Get(userID string) (*models.Achievements, error) {
	var a models.Achievements
	found := false
	err := withRetry("get achievements", func() error {
		err := DB.Get(&a, `
			SELECT user_id, total_points, experience_points, current_level,
			       points_to_next_level, current_streak, longest_streak,
			       last_study_date, created_at, updated_at
			FROM user_achievements
			WHERE user_id = $1`, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &a, nil
}

// Upsert writes the whole achievements document.
func (r *AchievementsRepository) Upsert(a models.Achievements) error {
	err := withRetry("upsert achievements", func() error {
		_, err := DB.Exec(`
			INSERT INTO user_achievements (
				user_id, total_points, experience_points, current_level,
				points_to_next_level, current_streak, longest_streak,
				last_study_date, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (user_id) DO UPDATE SET
				total_points = $2,
				experience_points = $3,
				current_level = $4,
				points_to_next_level = $5,
				current_streak = $6,
				longest_streak = $7,
				last_study_date = $8,
				updated_at = $10`,
			a.UserID, a.TotalPoints, a.ExperiencePoints, a.CurrentLevel,
			a.PointsToNextLevel, a.CurrentStreak, a.LongestStreak,
			a.LastStudyDate, a.CreatedAt, a.UpdatedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert achievements: %w", err)
	}
	return nil
}
