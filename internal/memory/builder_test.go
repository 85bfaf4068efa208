package memory

import (
	"strings"
	"testing"
	"time"

	"github.com/example/voicetutor/pkg/models"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestBuildCurriculumForNewUser(t *testing.T) {
	got := BuildCurriculum(models.NewUserProgress("u1", testNow), "أحمد")

	if got == "" {
		t.Fatal("empty block for new user")
	}
	for _, want := range []string{"أحمد", "لم يبدأ بعد", "البداية", "لا توجد كلمات بعد"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	// New learners get pointed at the first curriculum topic.
	if !strings.Contains(got, "Nouns") {
		t.Errorf("next-topic suggestion missing:\n%s", got)
	}
}

func TestBuildCurriculumMentionsUnfinishedTopic(t *testing.T) {
	p := models.NewUserProgress("u1", testNow)
	p.CurrentTopic = "Nouns"
	p.LastPosition = "common nouns"
	p.ProgressPercentage = 40
	p.Vocabulary["cat"] = models.VocabularyEntry{Topic: "Nouns"}
	p.WordsLearned = 1
	p.ConversationHistory["s1"] = models.SessionRecord{
		Timestamp:      "2025-05-01T00:00:00Z",
		Topic:          "Nouns",
		WordsDiscussed: []string{"cat"},
		LastPosition:   "common nouns",
	}

	got := BuildCurriculum(p, "أحمد")
	for _, want := range []string{"Nouns", "common nouns", "cat", "هل تريد أن نكمل"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestBuildSentencesWindows(t *testing.T) {
	sp := models.NewSentencesProgress("u1", "s1", testNow)
	for _, s := range []string{"One.", "Two.", "Three.", "Four."} {
		sp.GeneratedSentences = append(sp.GeneratedSentences, s)
		sp.LearnedSentencesHistory = append(sp.LearnedSentencesHistory, s)
	}
	sp.CompletedSentences = 2
	sp.CurrentSentenceIndex = 2
	sp.CurrentLevel = 1

	got := BuildSentences(sp, "أحمد")
	if !strings.Contains(got, "Three.") || !strings.Contains(got, "Four.") {
		t.Errorf("upcoming sentences missing:\n%s", got)
	}
	if !strings.Contains(got, "الجملة التالية: 3") {
		t.Errorf("next-sentence pointer wrong:\n%s", got)
	}
}

func TestBuildSentencesEmptySession(t *testing.T) {
	got := BuildSentences(models.NewSentencesProgress("u1", "s1", testNow), "أحمد")
	if !strings.Contains(got, "لا توجد جمل متعلمة بعد") {
		t.Errorf("empty-session fallback missing:\n%s", got)
	}
}

func TestBuildPodcastFirstConversation(t *testing.T) {
	got := BuildPodcast(models.NewPodcastProgress("u1", "s1", testNow), "Ahmed")
	for _, want := range []string{"First conversation", "beginner", "No mistakes recorded yet"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestBuildPodcastReturningUser(t *testing.T) {
	p := models.NewPodcastProgress("u1", "s1", testNow)
	p.LastTopic = "Travel"
	p.LastPosition = "We were planning a trip"
	p.CommonMistakes = models.StringList{"he go", "she like"}

	got := BuildPodcast(p, "Ahmed")
	for _, want := range []string{"Travel", "We were planning a trip", "he go"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestBuildPersonal(t *testing.T) {
	ctx := models.NewPersonalContext("u1", testNow)
	ctx.FirstName = "Ahmed"
	ctx.Age = 25
	ctx.Pets = models.PetList{{Name: "Biso", Type: "cat"}}
	ctx.FamilyMembers = models.StringMap{"sister": "Mona"}
	ctx.ContextCompleteness = 33

	got := BuildPersonal(ctx, "Ahmed")
	for _, want := range []string{"Ahmed", "25", "Biso (cat)", "sister: Mona", "33%"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestBuildersHandleZeroValues(t *testing.T) {
	// Zero-valued documents must still render.
	if BuildCurriculum(models.UserProgress{}, "") == "" {
		t.Error("curriculum block empty for zero document")
	}
	if BuildSentences(models.SentencesProgress{}, "") == "" {
		t.Error("sentences block empty for zero document")
	}
	if BuildPodcast(models.PodcastProgress{}, "") == "" {
		t.Error("podcast block empty for zero document")
	}
	if BuildPersonal(models.PersonalContext{}, "") == "" {
		t.Error("personal block empty for zero document")
	}
}
