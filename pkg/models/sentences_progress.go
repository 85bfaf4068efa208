package models

import "time"

// Sentence-drill session status values.
const (
	SentencesSessionActive    = "active"
	SentencesSessionCompleted = "completed"
)

// SentencesProgress tracks one sentence-drill session for a user.
// GeneratedSentences and LearnedSentencesHistory are append-only;
// CurrentSentenceIndex always equals CompletedSentences and points at the
// next sentence to present.
type SentencesProgress struct {
	UserID                  string     `json:"user_id" db:"user_id"`
	SessionID               string     `json:"session_id" db:"session_id"`
	GeneratedSentences      StringList `json:"generated_sentences" db:"generated_sentences"`
	CompletedSentences      int        `json:"completed_sentences" db:"completed_sentences"`
	CurrentSentenceIndex    int        `json:"current_sentence_index" db:"current_sentence_index"`
	TotalSentences          int        `json:"total_sentences" db:"total_sentences"`
	CurrentLevel            int        `json:"current_level" db:"current_level"`
	LearnedSentencesHistory StringList `json:"learned_sentences_history" db:"learned_sentences_history"`
	SessionStatus           string     `json:"session_status" db:"session_status"`
	CreatedAt               time.Time  `json:"created_at" db:"created_at"`
	LastActivity            time.Time  `json:"last_activity" db:"last_activity"`
}

// NewSentencesProgress returns a fresh drill session starting at level 1.
func NewSentencesProgress(userID, sessionID string, now time.Time) SentencesProgress {
	return SentencesProgress{
		UserID:                  userID,
		SessionID:               sessionID,
		GeneratedSentences:      StringList{},
		CurrentLevel:            1,
		LearnedSentencesHistory: StringList{},
		SessionStatus:           SentencesSessionActive,
		CreatedAt:               now,
		LastActivity:            now,
	}
}
