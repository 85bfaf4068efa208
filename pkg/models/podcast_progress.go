package models

import "time"

// Fluency levels used by conversation mode.
const (
	FluencyBeginner     = "beginner"
	FluencyIntermediate = "intermediate"
	FluencyAdvanced     = "advanced"
)

// WordUsage tracks how a word has been used across conversations.
type WordUsage struct {
	FirstUsed string `json:"first_used"`
	Count     int    `json:"count"`
}

// PodcastSessionRecord summarizes one saved conversation.
type PodcastSessionRecord struct {
	Timestamp       string   `json:"timestamp"`
	Topic           string   `json:"topic"`
	Context         string   `json:"context"`
	Summary         string   `json:"summary"`
	DurationMinutes int      `json:"duration_minutes"`
	Vocabulary      []string `json:"vocabulary"`
	Mistakes        []string `json:"mistakes"`
	Improvements    []string `json:"improvements"`
}

// PodcastProgress is the per-user conversation-mode progress document.
// ConversationHistory keeps the 20 most recent records; CommonMistakes and
// Improvements are bounded at 20 and 10 entries respectively.
type PodcastProgress struct {
	UserID              string            `json:"user_id" db:"user_id"`
	SessionID           string            `json:"session_id" db:"session_id"`
	LastTopic           string            `json:"last_topic" db:"last_topic"`
	LastContext         string            `json:"last_context" db:"last_context"`
	LastPosition        string            `json:"last_position" db:"last_position"`
	ConversationSummary string            `json:"conversation_summary" db:"conversation_summary"`
	TopicsDiscussed     StringList        `json:"topics_discussed" db:"topics_discussed"`
	VocabularyUsed      WordUsageMap      `json:"vocabulary_used" db:"vocabulary_used"`
	TotalConversations  int               `json:"total_conversations" db:"total_conversations"`
	TotalMinutes        int               `json:"total_minutes" db:"total_minutes"`
	FluencyLevel        string            `json:"fluency_level" db:"fluency_level"`
	CommonMistakes      StringList        `json:"common_mistakes" db:"common_mistakes"`
	Improvements        StringList        `json:"improvements" db:"improvements"`
	ConversationHistory PodcastHistoryMap `json:"conversation_history" db:"conversation_history"`
	LastSessionAt       time.Time         `json:"last_session_at" db:"last_session_at"`
	CreatedAt           time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at" db:"updated_at"`
}

// NewPodcastProgress returns an empty conversation document for a user.
func NewPodcastProgress(userID, sessionID string, now time.Time) PodcastProgress {
	return PodcastProgress{
		UserID:              userID,
		SessionID:           sessionID,
		TopicsDiscussed:     StringList{},
		VocabularyUsed:      WordUsageMap{},
		FluencyLevel:        FluencyBeginner,
		CommonMistakes:      StringList{},
		Improvements:        StringList{},
		ConversationHistory: PodcastHistoryMap{},
		LastSessionAt:       now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
