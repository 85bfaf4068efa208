package progress

import (
	"fmt"
	"testing"
	"time"

	"github.com/example/voicetutor/pkg/models"
)

func TestMergePodcastConversationBasics(t *testing.T) {
	old := models.NewPodcastProgress("u1", "s1", testNow)

	next := MergePodcastConversation(old, PodcastConversation{
		Topic:           "Travel",
		Context:         "Discussing Travel",
		Position:        "talking about flights",
		Summary:         "Talked about a trip",
		DurationMinutes: 12,
		Vocabulary:      []string{"flight", "hotel"},
		Mistakes:        []string{"he go"},
		Improvements:    []string{"past tense"},
	}, testNow)

	if next.TotalConversations != 1 || next.TotalMinutes != 12 {
		t.Errorf("totals = %d conversations / %d minutes", next.TotalConversations, next.TotalMinutes)
	}
	if next.LastTopic != "Travel" || next.LastPosition != "talking about flights" {
		t.Errorf("last topic/position = %q / %q", next.LastTopic, next.LastPosition)
	}
	if !next.TopicsDiscussed.Contains("Travel") {
		t.Error("topic not recorded")
	}
	if u := next.VocabularyUsed["flight"]; u.Count != 1 || u.FirstUsed == "" {
		t.Errorf("vocabulary usage = %+v", u)
	}
	if len(next.ConversationHistory) != 1 {
		t.Errorf("history size = %d, want 1", len(next.ConversationHistory))
	}
}

func TestMergePodcastConversationVocabularyCounts(t *testing.T) {
	old := models.NewPodcastProgress("u1", "s1", testNow)
	c := PodcastConversation{Topic: "Food", Vocabulary: []string{"recipe"}}

	next := MergePodcastConversation(old, c, testNow)
	first := next.VocabularyUsed["recipe"].FirstUsed

	next = MergePodcastConversation(next, c, testNow.Add(time.Hour))
	u := next.VocabularyUsed["recipe"]
	if u.Count != 2 {
		t.Errorf("count = %d, want 2", u.Count)
	}
	if u.FirstUsed != first {
		t.Errorf("first used changed: %q vs %q", u.FirstUsed, first)
	}
	if len(next.TopicsDiscussed) != 1 {
		t.Errorf("topics = %v, want no duplicate", next.TopicsDiscussed)
	}
}

func TestMergePodcastConversationHistoryCap(t *testing.T) {
	p := models.NewPodcastProgress("u1", "s1", testNow)
	for i := 0; i < 25; i++ {
		p = MergePodcastConversation(p, PodcastConversation{
			Topic: fmt.Sprintf("Topic%d", i),
		}, testNow.Add(time.Duration(i)*time.Minute))
	}

	if len(p.ConversationHistory) != 20 {
		t.Fatalf("history size = %d, want 20", len(p.ConversationHistory))
	}
	// Only the 20 most recent survive.
	oldest := testNow.Add(4 * time.Minute).Format(time.RFC3339)
	for _, rec := range p.ConversationHistory {
		if rec.Timestamp < oldest {
			t.Errorf("record older than expected window kept: %s", rec.Timestamp)
		}
	}
	if p.TotalConversations != 25 {
		t.Errorf("total conversations = %d, want 25 despite capping", p.TotalConversations)
	}
}

func TestMergePodcastConversationMistakeCaps(t *testing.T) {
	p := models.NewPodcastProgress("u1", "s1", testNow)
	for i := 0; i < 30; i++ {
		p = MergePodcastConversation(p, PodcastConversation{
			Mistakes:     []string{fmt.Sprintf("mistake %d", i)},
			Improvements: []string{fmt.Sprintf("improvement %d", i)},
		}, testNow.Add(time.Duration(i)*time.Minute))
	}

	if len(p.CommonMistakes) != 20 {
		t.Errorf("mistakes = %d, want 20", len(p.CommonMistakes))
	}
	if p.CommonMistakes[len(p.CommonMistakes)-1] != "mistake 29" {
		t.Errorf("newest mistake missing: %v", p.CommonMistakes)
	}
	if len(p.Improvements) != 10 {
		t.Errorf("improvements = %d, want 10", len(p.Improvements))
	}
	if p.Improvements[0] != "improvement 20" {
		t.Errorf("improvements kept wrong window: %v", p.Improvements)
	}
}
