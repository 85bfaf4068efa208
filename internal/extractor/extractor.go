package extractor

import "github.com/example/voicetutor/pkg/models"

// Answer classifies whether a reply judged the learner's attempt.
type Answer int

const (
	AnswerNone Answer = iota
	AnswerCorrect
	AnswerWrong
)

// Signals is everything recoverable from one piece of free-form text.
// Every field is best-effort: an empty value means "no signal", never an
// error. False positives are possible and callers must tolerate them.
type Signals struct {
	// Sentences are drill sentences found in assistant output (bolded,
	// numbered-bolded or quoted), in order of appearance.
	Sentences []string
	// Topic is the lesson topic, first matching pattern wins.
	Topic string
	// Position is the stopping-point marker, first matching pattern wins.
	Position string
	// ConversationTopic is a casual-conversation subject matched against a
	// fixed keyword list, used in conversation mode only.
	ConversationTopic string
	// Completion is true when the text contains a praise phrase, taken as
	// a sentence-completion signal in drill mode.
	Completion bool
	// Answer reflects correct/wrong judgement phrases.
	Answer Answer
	// Words are lowercased English words of three letters or more, deduped.
	Words []string
	// Personal carries facts about the learner found in their own speech.
	Personal models.PersonalInfo
}

// Extractor recovers structured signals from free-form tutoring text.
// Implementations must be pure and safe for concurrent use.
type Extractor interface {
	Extract(text string) Signals
}
