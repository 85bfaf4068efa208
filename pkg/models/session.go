package models

import "time"

// Learning modes a live session can run in.
const (
	ModeNormal              = "normal"
	ModeSentencesLearning   = "sentences_learning"
	ModeEnglishConversation = "english_conversation"
)

// TranscriptEvent is one finalized user utterance from the voice pipeline.
type TranscriptEvent struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ReplyEvent is one completed assistant reply.
type ReplyEvent struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
