package scheduler

import (
	"os"
	"strconv"
	"time"

	"github.com/example/voicetutor/internal/database"
	"github.com/example/voicetutor/internal/logger"
	"github.com/go-co-op/gocron"
)

// Default quiet-hours window for review reminders.
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Notifier delivers a review reminder to a user's linked chat.
type Notifier interface {
	SendReviewReminder(chatID int64, displayName string, dueCount int) error
}

// Scheduler runs the hourly reminder check for users with vocabulary
// cards due for review.
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	gateway   *database.Gateway
	log       *logger.Logger
}

// New creates a new scheduler instance.
func New(notifier Notifier, gateway *database.Gateway, log *logger.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		notifier:  notifier,
		gateway:   gateway,
		log:       log,
	}
}

// Start begins running all scheduled tasks.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) checkAndSendReminders() {
	now := time.Now()
	currentHour := now.Hour()

	startHour := envHour("NOTIFICATION_START_HOUR", DefaultNotificationStartHour)
	endHour := envHour("NOTIFICATION_END_HOUR", DefaultNotificationEndHour)

	if currentHour < startHour || currentHour > endHour {
		s.log.Debug("outside notification hours, skipping reminders",
			"hour", currentHour, "start", startHour, "end", endHour)
		return
	}

	users, err := s.gateway.Users.UsersForNotification(currentHour)
	if err != nil {
		s.log.Error("failed to list users for notification", "error", err)
		return
	}

	for _, user := range users {
		dueCount, err := s.gateway.Cards.CountDue(user.ID, now)
		if err != nil {
			s.log.Error("failed to count due cards", "user_id", user.ID, "error", err)
			continue
		}
		if dueCount == 0 {
			continue
		}
		if err := s.notifier.SendReviewReminder(user.TelegramChatID, user.DisplayName, dueCount); err != nil {
			s.log.Error("failed to send reminder", "user_id", user.ID, "error", err)
		}
	}
}

// RunManualCheck forces a reminder check for one user, regardless of the
// notification window.
func (s *Scheduler) RunManualCheck(userID string) error {
	user, err := s.gateway.Users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil || user.TelegramChatID == 0 {
		return nil
	}

	dueCount, err := s.gateway.Cards.CountDue(userID, time.Now())
	if err != nil {
		return err
	}
	if dueCount == 0 {
		return nil
	}
	return s.notifier.SendReviewReminder(user.TelegramChatID, user.DisplayName, dueCount)
}

func envHour(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
