package agent

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/voicetutor/internal/extractor"
	"github.com/example/voicetutor/internal/logger"
	"github.com/example/voicetutor/internal/memory"
	"github.com/example/voicetutor/internal/progress"
	"github.com/example/voicetutor/internal/spaced_repetition"
	"github.com/example/voicetutor/internal/topics"
	"github.com/example/voicetutor/pkg/models"
)

// Points awarded per learner action.
const (
	pointsPerCorrectAnswer    = 10
	pointsPerSentenceComplete = 5
)

// Store is the persistence surface a session needs. *database.Gateway
// satisfies it.
type Store interface {
	TouchUser(userID, displayName string, now time.Time) error
	UserProgress(userID string, now time.Time) (models.UserProgress, error)
	SaveUserProgress(p models.UserProgress) error
	ActiveSentences(userID string, now time.Time) (*models.SentencesProgress, error)
	StartSentences(userID, sessionID string, now time.Time) (models.SentencesProgress, error)
	SaveSentences(sp models.SentencesProgress) error
	PodcastProgress(userID, sessionID string, now time.Time) (models.PodcastProgress, error)
	SavePodcastProgress(pp models.PodcastProgress) error
	PersonalContextFor(userID string, now time.Time) (models.PersonalContext, error)
	SavePersonalContext(pc models.PersonalContext) error
	AchievementsFor(userID string, now time.Time) (models.Achievements, error)
	SaveAchievements(a models.Achievements) error
	VocabularyCard(userID, word string) (*models.VocabularyCard, error)
	SaveVocabularyCard(card models.VocabularyCard) error
	AddDailyStats(delta models.DailyStats) error
}

// Summarizer condenses a finished session for the stored record.
// *ai.ChatGPT satisfies it.
type Summarizer interface {
	SummarizeSessionWithFallback(topic string, exchanges []string) string
}

// SentenceSource supplies fresh drill sentences for a level.
// *ai.ChatGPT satisfies it.
type SentenceSource interface {
	GenerateSentences(level, count int, category string) ([]string, error)
}

// Config describes one tutoring session to open.
type Config struct {
	UserID   string
	UserName string
	Mode     string // models.ModeNormal, ModeSentencesLearning or ModeEnglishConversation
}

// Memory is what gets injected into the tutoring LLM at session start.
type Memory struct {
	ModeBlock     string
	PersonalBlock string
}

type phase int

const (
	phaseIdle phase = iota
	phaseActive
	phaseEnded
)

// Session orchestrates one voice tutoring session: it loads the user's
// documents at start, folds extracted signals from both sides of the
// conversation into them as the session runs, and persists snapshots on
// the limiter's schedule. All state lives on the session itself; handlers
// are safe to call from the transcript and reply pipelines concurrently.
type Session struct {
	mu sync.Mutex

	cfg         Config
	sessionID   string
	store       Store
	extract     extractor.Extractor
	summarize   Summarizer
	sentenceSrc SentenceSource
	sm2         *spaced_repetition.SM2
	log         *logger.Logger
	clock       func() time.Time

	phase     phase
	startedAt time.Time
	limiter   *SaveLimiter

	curriculum   models.UserProgress
	sentences    *models.SentencesProgress
	podcast      models.PodcastProgress
	personal     models.PersonalContext
	achievements models.Achievements

	topic             string
	position          string
	conversationTopic string
	wordsDiscussed    []string
	wordSeen          map[string]bool
	exchanges         []string
	correctAnswers    int
	totalAttempts     int
	pointsEarned      int
	completedNow      int
}

// NewSession creates an idle session. Summarizer may be nil; summaries
// then fall back to a template.
func NewSession(cfg Config, store Store, ext extractor.Extractor, summarize Summarizer, log *logger.Logger) *Session {
	return &Session{
		cfg:       cfg,
		sessionID: uuid.NewString(),
		store:     store,
		extract:   ext,
		summarize: summarize,
		sm2:       spaced_repetition.NewSM2(),
		log:       log.With("user_id", cfg.UserID, "mode", cfg.Mode),
		clock:     time.Now,
		wordSeen:  map[string]bool{},
	}
}

// UseSentenceSource enables pre-seeding of empty drill sessions. Must be
// called before Start.
func (s *Session) UseSentenceSource(src SentenceSource) {
	s.sentenceSrc = src
}

// ID returns the session identifier used in stored records.
func (s *Session) ID() string {
	return s.sessionID
}

// Start loads the documents for the session's mode, advances the study
// streak, and returns the memory blocks for the tutoring LLM.
func (s *Session) Start() (Memory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != phaseIdle {
		return Memory{}, fmt.Errorf("session already started")
	}
	now := s.clock()

	if err := s.store.TouchUser(s.cfg.UserID, s.cfg.UserName, now); err != nil {
		s.log.Warn("failed to record user", "error", err)
	}

	personal, err := s.store.PersonalContextFor(s.cfg.UserID, now)
	if err != nil {
		return Memory{}, fmt.Errorf("failed to load personal context: %w", err)
	}
	s.personal = personal

	achievements, err := s.store.AchievementsFor(s.cfg.UserID, now)
	if err != nil {
		return Memory{}, fmt.Errorf("failed to load achievements: %w", err)
	}
	s.achievements = progress.AdvanceStreak(achievements, now)
	if err := s.store.SaveAchievements(s.achievements); err != nil {
		s.log.Warn("failed to save streak", "error", err)
	}

	mem := Memory{PersonalBlock: memory.BuildPersonal(s.personal, s.cfg.UserName)}

	switch s.cfg.Mode {
	case models.ModeSentencesLearning:
		active, err := s.store.ActiveSentences(s.cfg.UserID, now)
		if err != nil {
			return Memory{}, fmt.Errorf("failed to load sentences session: %w", err)
		}
		if active == nil {
			fresh, err := s.store.StartSentences(s.cfg.UserID, s.sessionID, now)
			if err != nil {
				return Memory{}, fmt.Errorf("failed to start sentences session: %w", err)
			}
			active = &fresh
		} else {
			// Resume under the stored session id so saves land on the
			// same row.
			s.sessionID = active.SessionID
		}
		s.sentences = active
		s.seedSentences(now)
		mem.ModeBlock = memory.BuildSentences(*s.sentences, s.cfg.UserName)

	case models.ModeEnglishConversation:
		podcast, err := s.store.PodcastProgress(s.cfg.UserID, s.sessionID, now)
		if err != nil {
			return Memory{}, fmt.Errorf("failed to load podcast progress: %w", err)
		}
		s.podcast = podcast
		mem.ModeBlock = memory.BuildPodcast(podcast, s.cfg.UserName)

	default:
		curriculum, err := s.store.UserProgress(s.cfg.UserID, now)
		if err != nil {
			return Memory{}, fmt.Errorf("failed to load user progress: %w", err)
		}
		s.curriculum = curriculum
		mem.ModeBlock = memory.BuildCurriculum(curriculum, s.cfg.UserName)
	}

	s.phase = phaseActive
	s.startedAt = now
	s.limiter = NewSaveLimiter(now)
	s.log.Info("session started", "session_id", s.sessionID)
	return mem, nil
}

// HandleTranscript processes one finalized utterance from the learner.
func (s *Session) HandleTranscript(ev models.TranscriptEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != phaseActive {
		return fmt.Errorf("session not active")
	}
	now := s.eventTime(ev.Timestamp)
	sig := s.extract.Extract(ev.Text)

	if !sig.Personal.Empty() {
		s.personal = progress.MergePersonalContext(s.personal, sig.Personal, now)
		if err := s.store.SavePersonalContext(s.personal); err != nil {
			s.log.Warn("failed to save personal context", "error", err)
		} else {
			s.log.Debug("personal context updated",
				"completeness", s.personal.ContextCompleteness)
		}
	}

	if s.cfg.Mode == models.ModeEnglishConversation && sig.ConversationTopic != "" {
		s.conversationTopic = sig.ConversationTopic
	}

	s.exchanges = append(s.exchanges, "User: "+ev.Text)
	s.noteMessage(now)
	return nil
}

// HandleReply processes one completed reply from the tutor.
func (s *Session) HandleReply(ev models.ReplyEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != phaseActive {
		return fmt.Errorf("session not active")
	}
	now := s.eventTime(ev.Timestamp)
	sig := s.extract.Extract(ev.Text)

	switch s.cfg.Mode {
	case models.ModeSentencesLearning:
		s.handleSentencesReply(sig, now)
	case models.ModeEnglishConversation:
		s.handleConversationReply(sig)
	default:
		s.handleCurriculumReply(sig, now)
	}

	s.exchanges = append(s.exchanges, "Tutor: "+ev.Text)
	s.noteMessage(now)
	return nil
}

// eventTime prefers the pipeline's event timestamp, falling back to the
// session clock for callers that don't stamp events.
func (s *Session) eventTime(ts time.Time) time.Time {
	if ts.IsZero() {
		return s.clock()
	}
	return ts
}

func (s *Session) handleSentencesReply(sig extractor.Signals, now time.Time) {
	if s.sentences == nil {
		return
	}
	if len(sig.Sentences) > 0 {
		next, added := progress.AppendSentences(*s.sentences, sig.Sentences, now)
		*s.sentences = next
		if len(added) > 0 {
			s.log.Debug("sentences captured", "added", len(added))
		}
	}
	if sig.Completion {
		*s.sentences = progress.RecordCompletion(*s.sentences, now)
		s.completedNow++
		s.awardPoints(pointsPerSentenceComplete, now)
	}
}

func (s *Session) handleConversationReply(sig extractor.Signals) {
	if sig.ConversationTopic != "" {
		s.conversationTopic = sig.ConversationTopic
	}
	if sig.Position != "" {
		s.position = sig.Position
	}
	s.collectWords(sig.Words)
}

func (s *Session) handleCurriculumReply(sig extractor.Signals, now time.Time) {
	if sig.Topic != "" {
		// The extractor matches case-insensitively; store the catalog's
		// canonical name when the topic is a known one.
		if t, ok := topics.ByName(sig.Topic); ok {
			s.topic = t.Name
		} else {
			s.topic = sig.Topic
		}
	}
	if sig.Position != "" {
		s.position = sig.Position
	}
	s.collectWords(sig.Words)

	switch sig.Answer {
	case extractor.AnswerCorrect:
		s.correctAnswers++
		s.totalAttempts++
		s.awardPoints(pointsPerCorrectAnswer, now)
	case extractor.AnswerWrong:
		s.totalAttempts++
	}
}

func (s *Session) collectWords(words []string) {
	for _, w := range words {
		if !s.wordSeen[w] {
			s.wordSeen[w] = true
			s.wordsDiscussed = append(s.wordsDiscussed, w)
		}
	}
}

func (s *Session) awardPoints(points int, now time.Time) {
	next, levelUp := progress.AwardPoints(s.achievements, points, now)
	s.achievements = next
	s.pointsEarned += points
	if levelUp {
		s.log.Info("level up", "level", s.achievements.CurrentLevel)
	}
}

// ReviewWord records one spaced-repetition answer for a word, creating
// the card on first review.
func (s *Session) ReviewWord(word string, correct bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != phaseActive {
		return fmt.Errorf("session not active")
	}
	now := s.clock()

	card, err := s.store.VocabularyCard(s.cfg.UserID, word)
	if err != nil {
		return err
	}
	if card == nil {
		fresh := models.NewVocabularyCard(s.cfg.UserID, word, "", "", s.topic, now)
		card = &fresh
	}
	reviewed := s.sm2.Review(*card, correct, now)
	if err := s.store.SaveVocabularyCard(reviewed); err != nil {
		return err
	}

	delta := models.DailyStats{
		UserID:        s.cfg.UserID,
		Date:          now.Format("2006-01-02"),
		WordsReviewed: 1,
		TotalAttempts: 1,
	}
	if correct {
		delta.CorrectAnswers = 1
	}
	if err := s.store.AddDailyStats(delta); err != nil {
		s.log.Warn("failed to record review stats", "error", err)
	}
	return nil
}

// End flushes the final state of the session, including the summary
// record and the day's stats, and closes the session.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != phaseActive {
		return fmt.Errorf("session not active")
	}
	now := s.clock()
	durationMinutes := int(now.Sub(s.startedAt).Minutes())

	summary := ""
	if s.summarize != nil {
		summary = s.summarize.SummarizeSessionWithFallback(s.sessionTopic(), s.exchanges)
	}

	if s.cfg.Mode == models.ModeEnglishConversation {
		s.podcast = progress.MergePodcastConversation(s.podcast, progress.PodcastConversation{
			Topic:           s.conversationTopic,
			Position:        s.position,
			Summary:         summary,
			DurationMinutes: durationMinutes,
			Vocabulary:      s.wordsDiscussed,
		}, now)
		if err := s.store.SavePodcastProgress(s.podcast); err != nil {
			return fmt.Errorf("failed to save podcast progress: %w", err)
		}
	}

	if err := s.saveProgress(now, summary); err != nil {
		return err
	}
	if s.cfg.Mode != models.ModeSentencesLearning && s.cfg.Mode != models.ModeEnglishConversation {
		s.enrollNewWords(now)
	}
	if err := s.store.SaveAchievements(s.achievements); err != nil {
		return fmt.Errorf("failed to save achievements: %w", err)
	}

	delta := models.DailyStats{
		UserID:           s.cfg.UserID,
		Date:             now.Format("2006-01-02"),
		MinutesStudied:   durationMinutes,
		WordsLearned:     len(s.wordsDiscussed),
		LessonsCompleted: s.completedNow,
		CorrectAnswers:   s.correctAnswers,
		TotalAttempts:    s.totalAttempts,
		PointsEarned:     s.pointsEarned,
	}
	if err := s.store.AddDailyStats(delta); err != nil {
		s.log.Warn("failed to record session stats", "error", err)
	}

	s.phase = phaseEnded
	s.log.Info("session ended",
		"session_id", s.sessionID,
		"duration_minutes", durationMinutes,
		"words", len(s.wordsDiscussed),
		"points", s.pointsEarned)
	return nil
}

// seedSentences fills an empty drill session with a first batch so the
// tutor has material before the LLM produces any. Best effort.
func (s *Session) seedSentences(now time.Time) {
	if s.sentenceSrc == nil || len(s.sentences.GeneratedSentences) > 0 {
		return
	}
	batch, err := s.sentenceSrc.GenerateSentences(s.sentences.CurrentLevel, 10, "Daily Activities")
	if err != nil {
		s.log.Warn("failed to seed drill sentences", "error", err)
		return
	}
	next, added := progress.AppendSentences(*s.sentences, batch, now)
	*s.sentences = next
	if len(added) > 0 {
		if err := s.store.SaveSentences(*s.sentences); err != nil {
			s.log.Warn("failed to save seeded sentences", "error", err)
		}
	}
}

// enrollNewWords creates spaced-repetition cards for curriculum words
// discussed this session that don't have one yet, so they enter the
// review queue without an explicit first review. Best effort.
func (s *Session) enrollNewWords(now time.Time) {
	for _, word := range s.wordsDiscussed {
		card, err := s.store.VocabularyCard(s.cfg.UserID, word)
		if err != nil {
			s.log.Warn("failed to look up vocabulary card", "word", word, "error", err)
			continue
		}
		if card != nil {
			continue
		}
		fresh := models.NewVocabularyCard(s.cfg.UserID, word, "", "", s.topic, now)
		if err := s.store.SaveVocabularyCard(fresh); err != nil {
			s.log.Warn("failed to create vocabulary card", "word", word, "error", err)
		}
	}
}

func (s *Session) sessionTopic() string {
	if s.cfg.Mode == models.ModeEnglishConversation {
		return s.conversationTopic
	}
	return s.topic
}

// noteMessage asks the limiter whether to flush a mid-session snapshot.
// Mid-session saves are best effort; failures are logged and the session
// continues.
func (s *Session) noteMessage(now time.Time) {
	if !s.limiter.NoteMessage(now) {
		return
	}
	if err := s.saveProgress(now, ""); err != nil {
		s.log.Warn("mid-session save failed",
			"state", s.limiter.State(now), "error", err)
		return
	}
	s.limiter.Saved(now)
	s.log.Debug("progress saved", "messages", s.limiter.Messages())
}

// saveProgress writes the mode document. Merging is idempotent per
// session: vocabulary is first-write-wins and the history record is
// keyed by session id, so repeated snapshots don't double-count.
func (s *Session) saveProgress(now time.Time, summary string) error {
	switch s.cfg.Mode {
	case models.ModeSentencesLearning:
		if s.sentences == nil {
			return nil
		}
		if err := s.store.SaveSentences(*s.sentences); err != nil {
			return fmt.Errorf("failed to save sentences session: %w", err)
		}
	case models.ModeEnglishConversation:
		// Conversation progress merges once, at End.
	default:
		s.curriculum = progress.MergeConversation(s.curriculum, progress.ConversationUpdate{
			SessionID:      s.sessionID,
			Topic:          s.topic,
			WordsDiscussed: s.wordsDiscussed,
			LastPosition:   s.position,
			SessionSummary: summary,
		}, now)
		if err := s.store.SaveUserProgress(s.curriculum); err != nil {
			return fmt.Errorf("failed to save user progress: %w", err)
		}
	}
	return nil
}
