package models

import "time"

// Achievements tracks gamification state for a user: points, level and
// study streak. Levels advance when experience reaches PointsToNextLevel,
// and each threshold grows by half.
type Achievements struct {
	UserID            string    `json:"user_id" db:"user_id"`
	TotalPoints       int       `json:"total_points" db:"total_points"`
	ExperiencePoints  int       `json:"experience_points" db:"experience_points"`
	CurrentLevel      int       `json:"current_level" db:"current_level"`
	PointsToNextLevel int       `json:"points_to_next_level" db:"points_to_next_level"`
	CurrentStreak     int       `json:"current_streak" db:"current_streak"`
	LongestStreak     int       `json:"longest_streak" db:"longest_streak"`
	LastStudyDate     string    `json:"last_study_date" db:"last_study_date"` // YYYY-MM-DD, empty until first study
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// NewAchievements returns level-1 achievements with a 100 point threshold.
func NewAchievements(userID string, now time.Time) Achievements {
	return Achievements{
		UserID:            userID,
		CurrentLevel:      1,
		PointsToNextLevel: 100,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
