package progress

import (
	"fmt"
	"testing"
	"time"

	"github.com/example/voicetutor/pkg/models"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestMergeConversationAddsVocabulary(t *testing.T) {
	old := models.NewUserProgress("u1", testNow)
	old.Vocabulary["dog"] = models.VocabularyEntry{Topic: "Animals", LearnedAt: "2025-01-01T00:00:00Z"}
	old.WordsLearned = 1

	next := MergeConversation(old, ConversationUpdate{
		SessionID:      "s1",
		Topic:          "Animals",
		WordsDiscussed: []string{"cat"},
	}, testNow)

	if len(next.Vocabulary) != 2 {
		t.Fatalf("vocabulary size = %d, want 2", len(next.Vocabulary))
	}
	if next.WordsLearned != 2 {
		t.Errorf("words learned = %d, want 2", next.WordsLearned)
	}
	if _, ok := next.Vocabulary["dog"]; !ok {
		t.Error("existing word dropped")
	}
	if _, ok := next.Vocabulary["cat"]; !ok {
		t.Error("new word missing")
	}
}

func TestMergeConversationFirstWriteWins(t *testing.T) {
	old := models.NewUserProgress("u1", testNow)
	old.Vocabulary["cat"] = models.VocabularyEntry{Topic: "Animals", LearnedAt: "2025-01-01T00:00:00Z", SessionID: "s0"}

	next := MergeConversation(old, ConversationUpdate{
		SessionID:      "s1",
		Topic:          "Pets",
		WordsDiscussed: []string{"cat"},
	}, testNow)

	got := next.Vocabulary["cat"]
	if got.Topic != "Animals" || got.SessionID != "s0" {
		t.Errorf("first-learned entry overwritten: %+v", got)
	}
}

func TestMergeConversationIdempotent(t *testing.T) {
	old := models.NewUserProgress("u1", testNow)
	upd := ConversationUpdate{
		SessionID:       "s1",
		Topic:           "Nouns",
		WordsDiscussed:  []string{"cat", "dog", "cat"},
		LastPosition:    "common nouns",
		TopicsCompleted: []string{"Alphabet"},
	}

	once := MergeConversation(old, upd, testNow)
	twice := MergeConversation(once, upd, testNow)

	if len(twice.Vocabulary) != len(once.Vocabulary) {
		t.Errorf("vocabulary grew on repeat: %d vs %d", len(twice.Vocabulary), len(once.Vocabulary))
	}
	if twice.WordsLearned != once.WordsLearned {
		t.Errorf("counter drifted on repeat: %d vs %d", twice.WordsLearned, once.WordsLearned)
	}
	if len(twice.TopicsCompleted) != 1 {
		t.Errorf("topics completed = %v, want one entry", twice.TopicsCompleted)
	}
	if len(twice.ConversationHistory) != 1 {
		t.Errorf("history size = %d, want 1", len(twice.ConversationHistory))
	}
}

func TestMergeConversationCounterAlwaysDerived(t *testing.T) {
	old := models.NewUserProgress("u1", testNow)
	old.WordsLearned = 99 // stale counter

	next := MergeConversation(old, ConversationUpdate{
		SessionID:      "s1",
		WordsDiscussed: []string{"apple"},
	}, testNow)

	if next.WordsLearned != 1 {
		t.Errorf("words learned = %d, want derived 1", next.WordsLearned)
	}
}

func TestMergeConversationProgressPercentage(t *testing.T) {
	old := models.NewUserProgress("u1", testNow)
	words := make([]string, 60)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	next := MergeConversation(old, ConversationUpdate{SessionID: "s1", WordsDiscussed: words}, testNow)
	if next.ProgressPercentage != 100 {
		t.Errorf("progress = %d, want capped 100", next.ProgressPercentage)
	}

	next = MergeConversation(models.NewUserProgress("u2", testNow),
		ConversationUpdate{SessionID: "s1", WordsDiscussed: []string{"a", "b", "c"}}, testNow)
	if next.ProgressPercentage != 6 {
		t.Errorf("progress = %d, want 6", next.ProgressPercentage)
	}
}

func TestCompactHistoryUnderCap(t *testing.T) {
	h := models.HistoryMap{}
	for i := 0; i < 50; i++ {
		h[fmt.Sprintf("s%02d", i)] = models.SessionRecord{Timestamp: fmt.Sprintf("2025-01-%02dT00:00:00Z", i%28+1)}
	}
	if got := CompactHistory(h); len(got) != 50 {
		t.Errorf("history size = %d, want unchanged 50", len(got))
	}
}

func TestCompactHistoryFoldsOldSessions(t *testing.T) {
	h := models.HistoryMap{}
	for i := 0; i < 60; i++ {
		h[fmt.Sprintf("s%02d", i)] = models.SessionRecord{
			Timestamp:      testNow.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			Topic:          fmt.Sprintf("Topic%d", i%3),
			WordsDiscussed: []string{"a", "b"},
		}
	}

	got := CompactHistory(h)
	if len(got) != 51 {
		t.Fatalf("history size = %d, want 50 recent + 1 summary", len(got))
	}
	summary, ok := got["compressed"]
	if !ok || summary.Compressed == nil {
		t.Fatal("missing compressed summary record")
	}
	if summary.Compressed.TotalOldSessions != 10 {
		t.Errorf("old sessions = %d, want 10", summary.Compressed.TotalOldSessions)
	}
	if summary.Compressed.TotalWords != 20 {
		t.Errorf("old words = %d, want 20", summary.Compressed.TotalWords)
	}
	// The newest 50 by timestamp must survive.
	if _, ok := got["s59"]; !ok {
		t.Error("newest session evicted")
	}
	if _, ok := got["s00"]; ok {
		t.Error("oldest session kept")
	}
}

func TestCompactHistoryAccumulatesPriorSummary(t *testing.T) {
	h := models.HistoryMap{
		"compressed": {Compressed: &models.CompressedHistory{
			TotalOldSessions: 5,
			TotalWords:       12,
			OldestSession:    "2024-01-01T00:00:00Z",
			TopicsCovered:    []string{"Verbs"},
		}},
	}
	for i := 0; i < 55; i++ {
		h[fmt.Sprintf("s%02d", i)] = models.SessionRecord{
			Timestamp:      testNow.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			Topic:          "Nouns",
			WordsDiscussed: []string{"x"},
		}
	}

	got := CompactHistory(h)
	summary := got["compressed"].Compressed
	if summary == nil {
		t.Fatal("summary record missing")
	}
	if summary.TotalOldSessions != 10 {
		t.Errorf("old sessions = %d, want 5 prior + 5 new", summary.TotalOldSessions)
	}
	if summary.TotalWords != 17 {
		t.Errorf("old words = %d, want 17", summary.TotalWords)
	}
	if summary.OldestSession != "2024-01-01T00:00:00Z" {
		t.Errorf("oldest = %q, want prior oldest kept", summary.OldestSession)
	}
}
