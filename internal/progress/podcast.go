package progress

import (
	"sort"
	"strconv"
	"time"

	"github.com/example/voicetutor/pkg/models"
)

// Bounds on the conversation-mode collections.
const (
	maxPodcastHistory = 20
	maxCommonMistakes = 20
	maxImprovements   = 10
)

// PodcastConversation is one finished (or checkpointed) free conversation.
type PodcastConversation struct {
	Topic           string
	Context         string
	Position        string
	Summary         string
	DurationMinutes int
	Vocabulary      []string
	Mistakes        []string
	Improvements    []string
	FluencyLevel    string
}

// MergePodcastConversation folds one conversation into the stored
// conversation-mode document. History keeps the 20 most recent records,
// mistakes the 20 most recent, improvements the 10 most recent. The input
// document is not mutated.
func MergePodcastConversation(old models.PodcastProgress, c PodcastConversation, now time.Time) models.PodcastProgress {
	next := old

	record := models.PodcastSessionRecord{
		Timestamp:       now.Format(time.RFC3339),
		Topic:           c.Topic,
		Context:         c.Context,
		Summary:         c.Summary,
		DurationMinutes: c.DurationMinutes,
		Vocabulary:      append([]string{}, c.Vocabulary...),
		Mistakes:        append([]string{}, c.Mistakes...),
		Improvements:    append([]string{}, c.Improvements...),
	}
	next.ConversationHistory = make(models.PodcastHistoryMap, len(old.ConversationHistory)+1)
	for k, r := range old.ConversationHistory {
		next.ConversationHistory[k] = r
	}
	next.ConversationHistory[strconv.FormatInt(now.UnixNano(), 10)] = record
	next.ConversationHistory = capPodcastHistory(next.ConversationHistory)

	next.TopicsDiscussed = append(models.StringList{}, old.TopicsDiscussed...)
	if c.Topic != "" && !next.TopicsDiscussed.Contains(c.Topic) {
		next.TopicsDiscussed = append(next.TopicsDiscussed, c.Topic)
	}

	next.VocabularyUsed = make(models.WordUsageMap, len(old.VocabularyUsed)+len(c.Vocabulary))
	for w, u := range old.VocabularyUsed {
		next.VocabularyUsed[w] = u
	}
	for _, word := range c.Vocabulary {
		if word == "" {
			continue
		}
		if u, ok := next.VocabularyUsed[word]; ok {
			u.Count++
			next.VocabularyUsed[word] = u
		} else {
			next.VocabularyUsed[word] = models.WordUsage{
				FirstUsed: now.Format(time.RFC3339),
				Count:     1,
			}
		}
	}

	next.CommonMistakes = appendCapped(old.CommonMistakes, c.Mistakes, maxCommonMistakes)
	next.Improvements = appendCapped(old.Improvements, c.Improvements, maxImprovements)

	next.TotalConversations = old.TotalConversations + 1
	next.TotalMinutes = old.TotalMinutes + c.DurationMinutes

	next.LastTopic = c.Topic
	next.LastContext = c.Context
	next.LastPosition = c.Position
	next.ConversationSummary = c.Summary
	if c.FluencyLevel != "" {
		next.FluencyLevel = c.FluencyLevel
	} else if next.FluencyLevel == "" {
		next.FluencyLevel = models.FluencyBeginner
	}

	next.LastSessionAt = now
	next.UpdatedAt = now
	return next
}

// appendCapped appends items not already present, then keeps the most
// recent max entries.
func appendCapped(existing models.StringList, incoming []string, max int) models.StringList {
	out := append(models.StringList{}, existing...)
	for _, item := range incoming {
		if item != "" && !out.Contains(item) {
			out = append(out, item)
		}
	}
	if len(out) > max {
		out = append(models.StringList{}, out[len(out)-max:]...)
	}
	return out
}

func capPodcastHistory(history models.PodcastHistoryMap) models.PodcastHistoryMap {
	if len(history) <= maxPodcastHistory {
		return history
	}
	keys := make([]string, 0, len(history))
	for k := range history {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return history[keys[i]].Timestamp > history[keys[j]].Timestamp
	})
	capped := make(models.PodcastHistoryMap, maxPodcastHistory)
	for _, k := range keys[:maxPodcastHistory] {
		capped[k] = history[k]
	}
	return capped
}
