package models

import "time"

// VocabularyCard is one word in the spaced-repetition review queue.
// Scheduling fields follow SM-2: EaseFactor starts at 2.5 and never drops
// below 1.3; a card is mastered once MasteryLevel reaches 5.
type VocabularyCard struct {
	UserID          string    `json:"user_id" db:"user_id"`
	Word            string    `json:"word" db:"word"`
	Translation     string    `json:"translation" db:"translation"`
	ExampleSentence string    `json:"example_sentence" db:"example_sentence"`
	Topic           string    `json:"topic" db:"topic"`
	EaseFactor      float64   `json:"ease_factor" db:"ease_factor"`
	Interval        int       `json:"interval" db:"interval"`
	Repetitions     int       `json:"repetitions" db:"repetitions"`
	NextReviewDate  time.Time `json:"next_review_date" db:"next_review_date"`
	LastReviewedAt  time.Time `json:"last_reviewed_at" db:"last_reviewed_at"`
	TimesSeen       int       `json:"times_seen" db:"times_seen"`
	TimesCorrect    int       `json:"times_correct" db:"times_correct"`
	TimesWrong      int       `json:"times_wrong" db:"times_wrong"`
	MasteryLevel    int       `json:"mastery_level" db:"mastery_level"`
	IsMastered      bool      `json:"is_mastered" db:"is_mastered"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// NewVocabularyCard returns a card due for review immediately.
func NewVocabularyCard(userID, word, translation, example, topic string, now time.Time) VocabularyCard {
	return VocabularyCard{
		UserID:          userID,
		Word:            word,
		Translation:     translation,
		ExampleSentence: example,
		Topic:           topic,
		EaseFactor:      2.5,
		Interval:        1,
		NextReviewDate:  now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
