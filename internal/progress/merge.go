package progress

import (
	"sort"
	"time"

	"github.com/example/voicetutor/pkg/models"
)

// maxCurriculumHistory is how many session records the curriculum history
// keeps before older sessions are folded into a compressed summary.
const maxCurriculumHistory = 50

// compressedKey is the history key under which the compaction summary lives.
const compressedKey = "compressed"

// percentPerWord converts unique words discussed into topic progress.
const percentPerWord = 2

// ConversationUpdate carries what one curriculum session produced.
type ConversationUpdate struct {
	SessionID       string
	Topic           string
	WordsDiscussed  []string
	ProgressMade    int
	LastPosition    string
	SessionSummary  string
	TopicsCompleted []string
}

// MergeConversation reconciles one session's update into the stored
// curriculum document and returns the new document. The input is not
// mutated. Vocabulary is first-write-wins per word so the topic and time a
// word was first learned survive later sessions; WordsLearned is always
// recomputed from the vocabulary, never taken from the update.
func MergeConversation(old models.UserProgress, upd ConversationUpdate, now time.Time) models.UserProgress {
	next := old
	next.Vocabulary = make(models.VocabularyMap, len(old.Vocabulary)+len(upd.WordsDiscussed))
	for w, e := range old.Vocabulary {
		next.Vocabulary[w] = e
	}
	next.ConversationHistory = make(models.HistoryMap, len(old.ConversationHistory)+1)
	for k, r := range old.ConversationHistory {
		next.ConversationHistory[k] = r
	}
	next.TopicsCompleted = append(models.StringList{}, old.TopicsCompleted...)

	topic := upd.Topic
	if topic == "" {
		topic = "General"
	}
	for _, word := range upd.WordsDiscussed {
		if word == "" {
			continue
		}
		if _, ok := next.Vocabulary[word]; !ok {
			next.Vocabulary[word] = models.VocabularyEntry{
				Topic:     topic,
				LearnedAt: now.Format(time.RFC3339),
				SessionID: upd.SessionID,
			}
		}
	}
	next.WordsLearned = len(next.Vocabulary)

	if upd.SessionID != "" {
		next.ConversationHistory[upd.SessionID] = models.SessionRecord{
			Timestamp:      now.Format(time.RFC3339),
			Topic:          upd.Topic,
			WordsDiscussed: append([]string{}, upd.WordsDiscussed...),
			ProgressMade:   upd.ProgressMade,
			LastPosition:   upd.LastPosition,
			SessionSummary: upd.SessionSummary,
		}
	}
	next.ConversationHistory = CompactHistory(next.ConversationHistory)

	for _, t := range upd.TopicsCompleted {
		if t != "" && !next.TopicsCompleted.Contains(t) {
			next.TopicsCompleted = append(next.TopicsCompleted, t)
		}
	}

	if upd.Topic != "" {
		next.CurrentTopic = upd.Topic
	}
	if upd.LastPosition != "" {
		next.LastPosition = upd.LastPosition
	}
	if n := uniqueCount(upd.WordsDiscussed); n > 0 {
		pct := n * percentPerWord
		if pct > 100 {
			pct = 100
		}
		next.ProgressPercentage = pct
	}

	next.LastSessionAt = now
	next.UpdatedAt = now
	return next
}

// CompactHistory keeps the most recent maxCurriculumHistory session records
// and folds everything older into a single summary record, so the document
// never grows unbounded. Histories at or under the cap come back unchanged.
func CompactHistory(history models.HistoryMap) models.HistoryMap {
	if len(history) <= maxCurriculumHistory {
		return history
	}

	type keyed struct {
		key string
		rec models.SessionRecord
	}
	sessions := make([]keyed, 0, len(history))
	var prior *models.CompressedHistory
	for k, r := range history {
		if k == compressedKey && r.Compressed != nil {
			prior = r.Compressed
			continue
		}
		sessions = append(sessions, keyed{k, r})
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].rec.Timestamp > sessions[j].rec.Timestamp
	})

	if len(sessions) <= maxCurriculumHistory {
		compacted := make(models.HistoryMap, len(sessions)+1)
		for _, s := range sessions {
			compacted[s.key] = s.rec
		}
		if prior != nil {
			compacted[compressedKey] = models.SessionRecord{Compressed: prior}
		}
		return compacted
	}

	recent := sessions[:maxCurriculumHistory]
	old := sessions[maxCurriculumHistory:]

	summary := models.CompressedHistory{
		TotalOldSessions: len(old),
		OldestSession:    old[len(old)-1].rec.Timestamp,
		NewestCompressed: old[0].rec.Timestamp,
	}
	topicSeen := map[string]bool{}
	for _, s := range old {
		summary.TotalWords += len(s.rec.WordsDiscussed)
		if t := s.rec.Topic; t != "" && !topicSeen[t] {
			topicSeen[t] = true
			summary.TopicsCovered = append(summary.TopicsCovered, t)
		}
	}
	if prior != nil {
		summary.TotalOldSessions += prior.TotalOldSessions
		summary.TotalWords += prior.TotalWords
		if prior.OldestSession != "" && (summary.OldestSession == "" || prior.OldestSession < summary.OldestSession) {
			summary.OldestSession = prior.OldestSession
		}
		for _, t := range prior.TopicsCovered {
			if !topicSeen[t] {
				topicSeen[t] = true
				summary.TopicsCovered = append(summary.TopicsCovered, t)
			}
		}
	}
	sort.Strings(summary.TopicsCovered)

	compacted := make(models.HistoryMap, maxCurriculumHistory+1)
	for _, s := range recent {
		compacted[s.key] = s.rec
	}
	compacted[compressedKey] = models.SessionRecord{
		Timestamp:  summary.NewestCompressed,
		Compressed: &summary,
	}
	return compacted
}

func uniqueCount(words []string) int {
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if w != "" {
			seen[w] = true
		}
	}
	return len(seen)
}
