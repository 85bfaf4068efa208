package progress

import (
	"strings"
	"time"

	"github.com/example/voicetutor/pkg/models"
)

// sentencesPerLevel is how many completions advance the drill one level.
const sentencesPerLevel = 20

// maxDrillLevel caps level advancement.
const maxDrillLevel = 5

// NormalizeSentence lowercases a sentence and strips periods, commas and
// surrounding whitespace so near-duplicates compare equal.
func NormalizeSentence(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// AppendSentences adds genuinely new sentences to the drill session and the
// cross-session history, deduplicating by normalized equality. It returns the
// new document and the sentences that were actually added.
func AppendSentences(old models.SentencesProgress, found []string, now time.Time) (models.SentencesProgress, []string) {
	next := old
	next.GeneratedSentences = append(models.StringList{}, old.GeneratedSentences...)
	next.LearnedSentencesHistory = append(models.StringList{}, old.LearnedSentencesHistory...)

	seen := make(map[string]bool, len(next.GeneratedSentences))
	for _, s := range next.GeneratedSentences {
		seen[NormalizeSentence(s)] = true
	}

	var added []string
	for _, s := range found {
		clean := strings.TrimSpace(s)
		if clean == "" {
			continue
		}
		norm := NormalizeSentence(clean)
		if seen[norm] {
			continue
		}
		seen[norm] = true
		added = append(added, clean)
		next.GeneratedSentences = append(next.GeneratedSentences, clean)
		next.LearnedSentencesHistory = append(next.LearnedSentencesHistory, clean)
	}

	next.TotalSentences = len(next.GeneratedSentences)
	next.LastActivity = now
	return next, added
}

// RecordCompletion marks one sentence as completed. The next-sentence index
// is derived from the completed count, and the level advances every
// sentencesPerLevel completions up to maxDrillLevel.
func RecordCompletion(old models.SentencesProgress, now time.Time) models.SentencesProgress {
	next := old
	next.CompletedSentences++
	next.CurrentSentenceIndex = next.CompletedSentences
	next.TotalSentences = len(next.GeneratedSentences)
	if next.CompletedSentences%sentencesPerLevel == 0 && next.CurrentLevel < maxDrillLevel {
		next.CurrentLevel++
	}
	next.LastActivity = now
	return next
}

// Repair reconciles the stored sentence total against the actual list length.
// Run on every session load; reports whether anything changed.
func Repair(old models.SentencesProgress, now time.Time) (models.SentencesProgress, bool) {
	actual := len(old.GeneratedSentences)
	if old.TotalSentences == actual {
		return old, false
	}
	next := old
	next.TotalSentences = actual
	next.LastActivity = now
	return next, true
}

// CompleteSession closes the drill session.
func CompleteSession(old models.SentencesProgress, now time.Time) models.SentencesProgress {
	next := old
	next.SessionStatus = models.SentencesSessionCompleted
	next.LastActivity = now
	return next
}
