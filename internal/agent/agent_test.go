package agent

import (
	"strings"
	"testing"
	"time"

	"github.com/example/voicetutor/internal/extractor"
	"github.com/example/voicetutor/internal/logger"
	"github.com/example/voicetutor/pkg/models"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeStore struct {
	users          map[string]models.User
	progress       *models.UserProgress
	progressSaves  int
	sentences      *models.SentencesProgress
	sentencesSaves int
	startedDrills  int
	podcast        *models.PodcastProgress
	podcastSaves   int
	personal       *models.PersonalContext
	personalSaves  int
	achievements   *models.Achievements
	achSaves       int
	cards          map[string]models.VocabularyCard
	stats          []models.DailyStats
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: map[string]models.User{},
		cards: map[string]models.VocabularyCard{},
	}
}

func (f *fakeStore) TouchUser(userID, displayName string, now time.Time) error {
	f.users[userID] = models.User{ID: userID, DisplayName: displayName, UpdatedAt: now}
	return nil
}

func (f *fakeStore) UserProgress(userID string, now time.Time) (models.UserProgress, error) {
	if f.progress == nil {
		p := models.NewUserProgress(userID, now)
		f.progress = &p
	}
	return *f.progress, nil
}

func (f *fakeStore) SaveUserProgress(p models.UserProgress) error {
	f.progress = &p
	f.progressSaves++
	return nil
}

func (f *fakeStore) ActiveSentences(userID string, now time.Time) (*models.SentencesProgress, error) {
	return f.sentences, nil
}

func (f *fakeStore) StartSentences(userID, sessionID string, now time.Time) (models.SentencesProgress, error) {
	sp := models.NewSentencesProgress(userID, sessionID, now)
	f.sentences = &sp
	f.startedDrills++
	return sp, nil
}

func (f *fakeStore) SaveSentences(sp models.SentencesProgress) error {
	f.sentences = &sp
	f.sentencesSaves++
	return nil
}

func (f *fakeStore) PodcastProgress(userID, sessionID string, now time.Time) (models.PodcastProgress, error) {
	if f.podcast == nil {
		pp := models.NewPodcastProgress(userID, sessionID, now)
		f.podcast = &pp
	}
	return *f.podcast, nil
}

func (f *fakeStore) SavePodcastProgress(pp models.PodcastProgress) error {
	f.podcast = &pp
	f.podcastSaves++
	return nil
}

func (f *fakeStore) PersonalContextFor(userID string, now time.Time) (models.PersonalContext, error) {
	if f.personal == nil {
		pc := models.NewPersonalContext(userID, now)
		f.personal = &pc
	}
	return *f.personal, nil
}

func (f *fakeStore) SavePersonalContext(pc models.PersonalContext) error {
	f.personal = &pc
	f.personalSaves++
	return nil
}

func (f *fakeStore) AchievementsFor(userID string, now time.Time) (models.Achievements, error) {
	if f.achievements == nil {
		a := models.NewAchievements(userID, now)
		f.achievements = &a
	}
	return *f.achievements, nil
}

func (f *fakeStore) SaveAchievements(a models.Achievements) error {
	f.achievements = &a
	f.achSaves++
	return nil
}

func (f *fakeStore) VocabularyCard(userID, word string) (*models.VocabularyCard, error) {
	if card, ok := f.cards[word]; ok {
		return &card, nil
	}
	return nil, nil
}

func (f *fakeStore) SaveVocabularyCard(card models.VocabularyCard) error {
	f.cards[card.Word] = card
	return nil
}

func (f *fakeStore) AddDailyStats(delta models.DailyStats) error {
	f.stats = append(f.stats, delta)
	return nil
}

func newTestSession(t *testing.T, mode string, store Store) *Session {
	t.Helper()
	s := NewSession(Config{UserID: "u1", UserName: "Ahmed", Mode: mode},
		store, extractor.NewRegexExtractor(), nil, logger.Nop())
	s.clock = func() time.Time { return testNow }
	return s
}

func say(text string) models.TranscriptEvent {
	return models.TranscriptEvent{Text: text, Timestamp: testNow}
}

func reply(text string) models.ReplyEvent {
	return models.ReplyEvent{Text: text, Timestamp: testNow}
}

func TestStartLoadsNewUserAndAdvancesStreak(t *testing.T) {
	store := newFakeStore()
	s := newTestSession(t, models.ModeNormal, store)

	mem, err := s.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !strings.Contains(mem.ModeBlock, "Ahmed") {
		t.Error("mode block does not mention the user")
	}
	if mem.PersonalBlock == "" {
		t.Error("personal block empty")
	}
	if store.achievements.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 after first study", store.achievements.CurrentStreak)
	}
	if u, ok := store.users["u1"]; !ok || u.DisplayName != "Ahmed" {
		t.Errorf("user row = %+v, want it recorded at start", u)
	}
	if _, err := s.Start(); err == nil {
		t.Error("second Start did not fail")
	}
}

func TestCurriculumSessionFlow(t *testing.T) {
	store := newFakeStore()
	s := newTestSession(t, models.ModeNormal, store)
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := s.HandleReply(reply("Today we are studying Nouns. A noun names a person or place.")); err != nil {
		t.Fatalf("HandleReply: %v", err)
	}
	if err := s.HandleTranscript(say("My name is Ahmed")); err != nil {
		t.Fatalf("HandleTranscript: %v", err)
	}
	if err := s.HandleReply(reply("That is correct! Well done.")); err != nil {
		t.Fatalf("HandleReply: %v", err)
	}
	if err := s.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	p := store.progress
	if p.CurrentTopic != "Nouns" {
		t.Errorf("topic = %q, want Nouns", p.CurrentTopic)
	}
	if len(p.Vocabulary) == 0 || p.WordsLearned != len(p.Vocabulary) {
		t.Errorf("vocabulary = %d words, learned counter = %d", len(p.Vocabulary), p.WordsLearned)
	}
	if _, ok := p.ConversationHistory[s.ID()]; !ok {
		t.Error("session record missing from history")
	}

	// Words discussed during the lesson enter the review queue at End.
	card, ok := store.cards["noun"]
	if !ok {
		t.Fatal("discussed word not enrolled as a vocabulary card")
	}
	if card.Repetitions != 0 {
		t.Errorf("fresh card repetitions = %d, want 0", card.Repetitions)
	}
	if card.Topic != "Nouns" {
		t.Errorf("card topic = %q, want Nouns", card.Topic)
	}

	if store.personal.FirstName != "Ahmed" {
		t.Errorf("extracted name = %q, want Ahmed", store.personal.FirstName)
	}
	if store.achievements.TotalPoints != pointsPerCorrectAnswer {
		t.Errorf("points = %d, want %d", store.achievements.TotalPoints, pointsPerCorrectAnswer)
	}

	if len(store.stats) == 0 {
		t.Fatal("no daily stats recorded")
	}
	final := store.stats[len(store.stats)-1]
	if final.CorrectAnswers != 1 || final.TotalAttempts != 1 {
		t.Errorf("stats = %d/%d, want 1/1", final.CorrectAnswers, final.TotalAttempts)
	}
}

func TestSentencesSessionFlow(t *testing.T) {
	store := newFakeStore()
	s := newTestSession(t, models.ModeSentencesLearning, store)
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if store.startedDrills != 1 {
		t.Fatalf("started drills = %d, want a fresh session", store.startedDrills)
	}

	if err := s.HandleReply(reply("Repeat after me: **The cat is black.** Then try **I like tea.**")); err != nil {
		t.Fatalf("HandleReply: %v", err)
	}
	if got := len(store.sentences.GeneratedSentences); got != 0 {
		// Captured sentences live on the session until a save fires.
		t.Logf("store not yet updated, %d sentences stored", got)
	}

	if err := s.HandleReply(reply("ممتاز! أحسنت")); err != nil {
		t.Fatalf("HandleReply: %v", err)
	}
	if err := s.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	sp := store.sentences
	if len(sp.GeneratedSentences) != 2 {
		t.Fatalf("captured %d sentences, want 2", len(sp.GeneratedSentences))
	}
	if sp.CompletedSentences != 1 || sp.CurrentSentenceIndex != 1 {
		t.Errorf("completed = %d, index = %d, want 1 and 1",
			sp.CompletedSentences, sp.CurrentSentenceIndex)
	}
	if sp.SessionStatus != models.SentencesSessionActive {
		t.Errorf("status = %q, drill sessions stay open across voice sessions", sp.SessionStatus)
	}
	if store.achievements.TotalPoints != pointsPerSentenceComplete {
		t.Errorf("points = %d, want %d", store.achievements.TotalPoints, pointsPerSentenceComplete)
	}
}

type fakeSentenceSource struct {
	batch []string
	calls int
}

func (f *fakeSentenceSource) GenerateSentences(level, count int, category string) ([]string, error) {
	f.calls++
	return f.batch, nil
}

func TestSentencesSessionSeedsWhenEmpty(t *testing.T) {
	store := newFakeStore()
	src := &fakeSentenceSource{batch: []string{"The sun is hot.", "I read books."}}

	s := newTestSession(t, models.ModeSentencesLearning, store)
	s.UseSentenceSource(src)
	mem, err := s.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("source called %d times, want 1", src.calls)
	}
	if got := len(store.sentences.GeneratedSentences); got != 2 {
		t.Errorf("seeded %d sentences, want 2", got)
	}
	if !strings.Contains(mem.ModeBlock, "The sun is hot.") {
		t.Error("memory block does not show the seeded sentences")
	}

	// A resumed session with material does not re-seed.
	s2 := newTestSession(t, models.ModeSentencesLearning, store)
	s2.UseSentenceSource(src)
	if _, err := s2.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times after resume, want still 1", src.calls)
	}
}

func TestSentencesSessionResumes(t *testing.T) {
	store := newFakeStore()
	existing := models.NewSentencesProgress("u1", "drill-7", testNow.Add(-time.Hour))
	existing.GeneratedSentences = models.StringList{"The sun is hot."}
	existing.TotalSentences = 1
	store.sentences = &existing

	s := newTestSession(t, models.ModeSentencesLearning, store)
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if store.startedDrills != 0 {
		t.Error("started a new drill despite an open one")
	}
	if s.ID() != "drill-7" {
		t.Errorf("session id = %q, want the resumed drill id", s.ID())
	}
}

func TestConversationSessionFlow(t *testing.T) {
	store := newFakeStore()
	s := newTestSession(t, models.ModeEnglishConversation, store)
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := s.HandleReply(reply("Let's talk about travel. Have you visited other countries?")); err != nil {
		t.Fatalf("HandleReply: %v", err)
	}
	if err := s.HandleTranscript(say("Yes, I went to Egypt last year")); err != nil {
		t.Fatalf("HandleTranscript: %v", err)
	}
	if err := s.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	pp := store.podcast
	if pp.TotalConversations != 1 {
		t.Errorf("conversations = %d, want exactly 1 after one session", pp.TotalConversations)
	}
	if pp.LastTopic != "Travel" {
		t.Errorf("last topic = %q, want Travel", pp.LastTopic)
	}
	if len(pp.ConversationHistory) != 1 {
		t.Errorf("history = %d records, want 1", len(pp.ConversationHistory))
	}
	if _, ok := pp.VocabularyUsed["travel"]; !ok {
		t.Error("reply vocabulary not recorded")
	}
}

func TestReviewWordCreatesAndSchedulesCard(t *testing.T) {
	store := newFakeStore()
	s := newTestSession(t, models.ModeNormal, store)
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := s.ReviewWord("cat", true); err != nil {
		t.Fatalf("ReviewWord: %v", err)
	}
	card, ok := store.cards["cat"]
	if !ok {
		t.Fatal("card not created")
	}
	if card.Repetitions != 1 || card.TimesCorrect != 1 {
		t.Errorf("card after review: reps = %d, correct = %d", card.Repetitions, card.TimesCorrect)
	}
	if !card.NextReviewDate.After(testNow) {
		t.Error("next review not scheduled forward")
	}

	if err := s.ReviewWord("cat", false); err != nil {
		t.Fatalf("ReviewWord: %v", err)
	}
	if got := store.cards["cat"]; got.Repetitions != 0 {
		t.Errorf("repetitions = %d, want reset after wrong answer", got.Repetitions)
	}

	if len(store.stats) != 2 {
		t.Fatalf("stats rows = %d, want 2", len(store.stats))
	}
	if store.stats[0].WordsReviewed != 1 || store.stats[0].CorrectAnswers != 1 {
		t.Errorf("first review stats = %+v", store.stats[0])
	}
}

func TestHandlersRequireActiveSession(t *testing.T) {
	s := newTestSession(t, models.ModeNormal, newFakeStore())

	if err := s.HandleTranscript(say("hello")); err == nil {
		t.Error("HandleTranscript before Start did not fail")
	}
	if err := s.End(); err == nil {
		t.Error("End before Start did not fail")
	}

	if _, err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := s.HandleReply(reply("more")); err == nil {
		t.Error("HandleReply after End did not fail")
	}
}
