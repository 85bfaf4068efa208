package models

import "time"

// VocabularyEntry records the context in which a word was first learned.
// Entries are never overwritten once written, so the "first learned" topic
// and timestamp survive later sessions that mention the same word.
type VocabularyEntry struct {
	Topic     string `json:"topic"`
	LearnedAt string `json:"learned_at"`
	SessionID string `json:"session_id"`
}

// CompressedHistory summarizes curriculum sessions evicted during history
// compaction, stored as a synthetic record so old sessions still contribute
// aggregate numbers after their details are dropped.
type CompressedHistory struct {
	TotalOldSessions int      `json:"total_old_sessions"`
	OldestSession    string   `json:"oldest_session"`
	NewestCompressed string   `json:"newest_compressed"`
	TotalWords       int      `json:"total_words_in_old_sessions"`
	TopicsCovered    []string `json:"topics_covered"`
}

// SessionRecord summarizes one curriculum session.
type SessionRecord struct {
	Timestamp      string             `json:"timestamp"`
	Topic          string             `json:"topic"`
	WordsDiscussed []string           `json:"words_discussed"`
	ProgressMade   int                `json:"progress_made"`
	LastPosition   string             `json:"last_position"`
	SessionSummary string             `json:"session_summary"`
	Compressed     *CompressedHistory `json:"compressed_data,omitempty"`
}

// UserProgress is the per-user curriculum progress document.
// Invariant: WordsLearned == len(Vocabulary) after every merge.
type UserProgress struct {
	UserID              string        `json:"user_id" db:"user_id"`
	WordsLearned        int           `json:"words_learned" db:"words_learned"`
	CurrentTopic        string        `json:"current_topic" db:"current_topic"`
	LastPosition        string        `json:"last_position" db:"last_position"`
	ProgressPercentage  int           `json:"progress_percentage" db:"progress_percentage"`
	Vocabulary          VocabularyMap `json:"vocabulary" db:"vocabulary"`
	TopicsCompleted     StringList    `json:"topics_completed" db:"topics_completed"`
	ConversationHistory HistoryMap    `json:"conversation_history" db:"conversation_history"`
	LastSessionAt       time.Time     `json:"last_session_at" db:"last_session_at"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at" db:"updated_at"`
}

// NewUserProgress returns an empty curriculum document for a user.
func NewUserProgress(userID string, now time.Time) UserProgress {
	return UserProgress{
		UserID:              userID,
		Vocabulary:          VocabularyMap{},
		TopicsCompleted:     StringList{},
		ConversationHistory: HistoryMap{},
		LastSessionAt:       now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
