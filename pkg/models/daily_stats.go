package models

// DailyStats accumulates one row per user per day. Counter fields are
// additive across sessions; DailyAccuracy is recomputed from the counters.
type DailyStats struct {
	UserID           string  `json:"user_id" db:"user_id"`
	Date             string  `json:"date" db:"date"` // YYYY-MM-DD
	MinutesStudied   int     `json:"minutes_studied" db:"minutes_studied"`
	WordsLearned     int     `json:"words_learned" db:"words_learned"`
	WordsReviewed    int     `json:"words_reviewed" db:"words_reviewed"`
	LessonsCompleted int     `json:"lessons_completed" db:"lessons_completed"`
	CorrectAnswers   int     `json:"correct_answers" db:"correct_answers"`
	TotalAttempts    int     `json:"total_attempts" db:"total_attempts"`
	PointsEarned     int     `json:"points_earned" db:"points_earned"`
	DailyAccuracy    float64 `json:"daily_accuracy" db:"daily_accuracy"`
}
