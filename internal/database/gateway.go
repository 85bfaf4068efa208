package database

import (
	"time"

	"github.com/example/voicetutor/internal/progress"
	"github.com/example/voicetutor/pkg/models"
)

// Reminders only fire for users who linked a Telegram chat; the hour is
// just the default they start from.
const defaultNotificationHour = 20

// Gateway bundles the repositories behind the handful of operations a
// tutoring session needs: load-or-create per mode, whole-document saves,
// and deck access. Sessions hold their documents in memory and push full
// snapshots through here.
type Gateway struct {
	Users           *UserRepository
	Progress        *UserProgressRepository
	Sentences       *SentencesRepository
	Podcast         *PodcastRepository
	PersonalContext *PersonalContextRepository
	Achievements    *AchievementsRepository
	Cards           *VocabularyCardRepository
	DailyStats      *DailyStatsRepository
	SentenceBank    *SentenceBankRepository
}

// NewGateway wires a gateway over the shared connection.
func NewGateway() *Gateway {
	return &Gateway{
		Users:           NewUserRepository(),
		Progress:        NewUserProgressRepository(),
		Sentences:       NewSentencesRepository(),
		Podcast:         NewPodcastRepository(),
		PersonalContext: NewPersonalContextRepository(),
		Achievements:    NewAchievementsRepository(),
		Cards:           NewVocabularyCardRepository(),
		DailyStats:      NewDailyStatsRepository(),
		SentenceBank:    NewSentenceBankRepository(),
	}
}

// TouchUser records that the user was seen, creating the account row on
// first contact and refreshing the display name after. Notification
// settings survive the refresh.
func (g *Gateway) TouchUser(userID, displayName string, now time.Time) error {
	u, err := g.Users.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return g.Users.Upsert(models.User{
			ID:                  userID,
			DisplayName:         displayName,
			NotificationEnabled: true,
			NotificationHour:    defaultNotificationHour,
			CreatedAt:           now,
			UpdatedAt:           now,
		})
	}
	if displayName != "" {
		u.DisplayName = displayName
	}
	u.UpdatedAt = now
	return g.Users.Upsert(*u)
}

// UserProgress loads the curriculum document, creating an empty one for
// first-time users.
func (g *Gateway) UserProgress(userID string, now time.Time) (models.UserProgress, error) {
	p, err := g.Progress.Get(userID)
	if err != nil {
		return models.UserProgress{}, err
	}
	if p == nil {
		fresh := models.NewUserProgress(userID, now)
		if err := g.Progress.Upsert(fresh); err != nil {
			return models.UserProgress{}, err
		}
		return fresh, nil
	}
	return *p, nil
}

// SaveUserProgress writes the curriculum document, compacting the session
// history first so the stored document never grows unbounded.
func (g *Gateway) SaveUserProgress(p models.UserProgress) error {
	p.ConversationHistory = progress.CompactHistory(p.ConversationHistory)
	return g.Progress.Upsert(p)
}

// ActiveSentences resumes the user's open drill session, repairing a stale
// sentence total on load. Returns nil when no session is open.
func (g *Gateway) ActiveSentences(userID string, now time.Time) (*models.SentencesProgress, error) {
	sp, err := g.Sentences.GetActive(userID)
	if err != nil || sp == nil {
		return sp, err
	}
	repaired, changed := progress.Repair(*sp, now)
	if changed {
		if err := g.Sentences.Upsert(repaired); err != nil {
			return nil, err
		}
	}
	return &repaired, nil
}

// StartSentences opens a fresh drill session.
func (g *Gateway) StartSentences(userID, sessionID string, now time.Time) (models.SentencesProgress, error) {
	sp := models.NewSentencesProgress(userID, sessionID, now)
	if err := g.Sentences.Upsert(sp); err != nil {
		return models.SentencesProgress{}, err
	}
	return sp, nil
}

// SaveSentences writes the drill session document.
func (g *Gateway) SaveSentences(sp models.SentencesProgress) error {
	return g.Sentences.Upsert(sp)
}

// PodcastProgress loads the conversation document, creating an empty one
// for first-time users.
func (g *Gateway) PodcastProgress(userID, sessionID string, now time.Time) (models.PodcastProgress, error) {
	pp, err := g.Podcast.Get(userID)
	if err != nil {
		return models.PodcastProgress{}, err
	}
	if pp == nil {
		fresh := models.NewPodcastProgress(userID, sessionID, now)
		if err := g.Podcast.Upsert(fresh); err != nil {
			return models.PodcastProgress{}, err
		}
		return fresh, nil
	}
	return *pp, nil
}

// SavePodcastProgress writes the conversation document.
func (g *Gateway) SavePodcastProgress(pp models.PodcastProgress) error {
	return g.Podcast.Upsert(pp)
}

// PersonalContextFor loads the learner's personal context, creating an
// empty one for first-time users.
func (g *Gateway) PersonalContextFor(userID string, now time.Time) (models.PersonalContext, error) {
	pc, err := g.PersonalContext.Get(userID)
	if err != nil {
		return models.PersonalContext{}, err
	}
	if pc == nil {
		fresh := models.NewPersonalContext(userID, now)
		if err := g.PersonalContext.Upsert(fresh); err != nil {
			return models.PersonalContext{}, err
		}
		return fresh, nil
	}
	return *pc, nil
}

// SavePersonalContext writes the personal context document.
func (g *Gateway) SavePersonalContext(pc models.PersonalContext) error {
	return g.PersonalContext.Upsert(pc)
}

// AchievementsFor loads gamification state, creating level-1 defaults for
// first-time users.
func (g *Gateway) AchievementsFor(userID string, now time.Time) (models.Achievements, error) {
	a, err := g.Achievements.Get(userID)
	if err != nil {
		return models.Achievements{}, err
	}
	if a == nil {
		fresh := models.NewAchievements(userID, now)
		if err := g.Achievements.Upsert(fresh); err != nil {
			return models.Achievements{}, err
		}
		return fresh, nil
	}
	return *a, nil
}

// SaveAchievements writes the achievements document.
func (g *Gateway) SaveAchievements(a models.Achievements) error {
	return g.Achievements.Upsert(a)
}

// VocabularyCard returns one card, or nil when the word has no card yet.
func (g *Gateway) VocabularyCard(userID, word string) (*models.VocabularyCard, error) {
	return g.Cards.GetByWord(userID, word)
}

// SaveVocabularyCard writes one card.
func (g *Gateway) SaveVocabularyCard(card models.VocabularyCard) error {
	return g.Cards.Upsert(card)
}

// DueVocabularyCards returns unmastered cards due for review.
func (g *Gateway) DueVocabularyCards(userID string, now time.Time, limit int) ([]models.VocabularyCard, error) {
	return g.Cards.DueForUser(userID, now, limit)
}

// AddDailyStats folds a delta into today's stats row.
func (g *Gateway) AddDailyStats(delta models.DailyStats) error {
	return g.DailyStats.Add(delta)
}
