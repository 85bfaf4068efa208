package progress

import (
	"fmt"
	"testing"

	"github.com/example/voicetutor/pkg/models"
)

func TestNormalizeSentence(t *testing.T) {
	cases := []struct{ in, want string }{
		{"I love cats.", "i love cats"},
		{"  I love, cats.  ", "i love cats"},
		{"I LOVE CATS", "i love cats"},
	}
	for _, c := range cases {
		if got := NormalizeSentence(c.in); got != c.want {
			t.Errorf("NormalizeSentence(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAppendSentencesDeduplicates(t *testing.T) {
	sp := models.NewSentencesProgress("u1", "s1", testNow)
	sp.GeneratedSentences = models.StringList{"I am happy."}

	next, added := AppendSentences(sp, []string{
		"i am happy",   // duplicate modulo punctuation and case
		"I am happy.",  // exact duplicate
		"She is tall.", // new
		"she is tall",  // duplicate of the one just added
	}, testNow)

	if len(added) != 1 || added[0] != "She is tall." {
		t.Fatalf("added = %v, want only the new sentence", added)
	}
	if len(next.GeneratedSentences) != 2 {
		t.Errorf("generated = %v, want 2 entries", next.GeneratedSentences)
	}
	if next.TotalSentences != 2 {
		t.Errorf("total = %d, want 2", next.TotalSentences)
	}
	if len(next.LearnedSentencesHistory) != 1 {
		t.Errorf("history = %v, want the new sentence only", next.LearnedSentencesHistory)
	}
}

func TestAppendSentencesDoesNotMutateInput(t *testing.T) {
	sp := models.NewSentencesProgress("u1", "s1", testNow)
	sp.GeneratedSentences = models.StringList{"One."}

	AppendSentences(sp, []string{"Two."}, testNow)

	if len(sp.GeneratedSentences) != 1 {
		t.Errorf("input mutated: %v", sp.GeneratedSentences)
	}
}

func TestRecordCompletionDerivesIndex(t *testing.T) {
	sp := models.NewSentencesProgress("u1", "s1", testNow)
	sp.CompletedSentences = 7

	next := RecordCompletion(sp, testNow)
	if next.CompletedSentences != 8 {
		t.Errorf("completed = %d, want 8", next.CompletedSentences)
	}
	if next.CurrentSentenceIndex != 8 {
		t.Errorf("index = %d, want derived 8", next.CurrentSentenceIndex)
	}
}

func TestRecordCompletionLevelAdvancement(t *testing.T) {
	sp := models.NewSentencesProgress("u1", "s1", testNow)

	levelUps := 0
	for i := 0; i < 40; i++ {
		before := sp.CurrentLevel
		sp = RecordCompletion(sp, testNow)
		if sp.CurrentLevel > before {
			levelUps++
			if sp.CompletedSentences%sentencesPerLevel != 0 {
				t.Errorf("level up at completion %d", sp.CompletedSentences)
			}
		}
	}
	if levelUps != 2 {
		t.Errorf("level ups = %d, want exactly 2 over 40 completions", levelUps)
	}
	if sp.CurrentLevel != 3 {
		t.Errorf("level = %d, want 3", sp.CurrentLevel)
	}
}

func TestRecordCompletionLevelCap(t *testing.T) {
	sp := models.NewSentencesProgress("u1", "s1", testNow)
	for i := 0; i < 200; i++ {
		sp = RecordCompletion(sp, testNow)
	}
	if sp.CurrentLevel != maxDrillLevel {
		t.Errorf("level = %d, want capped at %d", sp.CurrentLevel, maxDrillLevel)
	}
}

func TestRecordCompletionAtBoundary(t *testing.T) {
	sp := models.NewSentencesProgress("u1", "s1", testNow)
	sp.CompletedSentences = 19

	next := RecordCompletion(sp, testNow)
	if next.CompletedSentences != 20 {
		t.Errorf("completed = %d, want 20", next.CompletedSentences)
	}
	if next.CurrentLevel != 2 {
		t.Errorf("level = %d, want 2", next.CurrentLevel)
	}
}

func TestRepair(t *testing.T) {
	sp := models.NewSentencesProgress("u1", "s1", testNow)
	for i := 0; i < 5; i++ {
		sp.GeneratedSentences = append(sp.GeneratedSentences, fmt.Sprintf("Sentence %d.", i))
	}
	sp.TotalSentences = 3

	fixed, changed := Repair(sp, testNow)
	if !changed {
		t.Fatal("mismatch not detected")
	}
	if fixed.TotalSentences != 5 {
		t.Errorf("total = %d, want 5", fixed.TotalSentences)
	}

	if _, changed := Repair(fixed, testNow); changed {
		t.Error("repair reported change on consistent document")
	}
}
