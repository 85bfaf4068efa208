package agent

import "time"

// Save limiter states, exposed for logging.
const (
	SaveWarmingUp   = "warming_up"
	SaveReady       = "ready"
	SaveCoolingDown = "cooling_down"
)

// Save pacing defaults. Saves hold off for the first 30 seconds of a
// session, then keep at least 10 seconds between writes, except that
// past the warmup every third message saves regardless of the gap, so
// a crashed session loses at most two messages of progress.
const (
	defaultWarmup      = 30 * time.Second
	defaultMinGap      = 10 * time.Second
	defaultForcedEvery = 3
)

// SaveLimiter decides when session progress should be flushed to the
// database. It is not safe for concurrent use; the owning session
// serializes access.
type SaveLimiter struct {
	warmup      time.Duration
	minGap      time.Duration
	forcedEvery int

	startedAt time.Time
	lastSave  time.Time
	messages  int
}

// NewSaveLimiter returns a limiter with the default pacing.
func NewSaveLimiter(startedAt time.Time) *SaveLimiter {
	return &SaveLimiter{
		warmup:      defaultWarmup,
		minGap:      defaultMinGap,
		forcedEvery: defaultForcedEvery,
		startedAt:   startedAt,
	}
}

// NoteMessage records one processed message and reports whether the
// session should save now. Nothing saves during the warmup. After it,
// every forcedEvery-th message saves regardless of the gap; other
// messages wait out the minimum gap since the previous save.
func (l *SaveLimiter) NoteMessage(now time.Time) bool {
	l.messages++
	if now.Sub(l.startedAt) < l.warmup {
		return false
	}
	if l.messages%l.forcedEvery == 0 {
		return true
	}
	if !l.lastSave.IsZero() && now.Sub(l.lastSave) < l.minGap {
		return false
	}
	return true
}

// Saved records that a save happened.
func (l *SaveLimiter) Saved(now time.Time) {
	l.lastSave = now
}

// Messages returns how many messages the limiter has seen.
func (l *SaveLimiter) Messages() int {
	return l.messages
}

// State names the limiter's current phase for logging.
func (l *SaveLimiter) State(now time.Time) string {
	if now.Sub(l.startedAt) < l.warmup {
		return SaveWarmingUp
	}
	if !l.lastSave.IsZero() && now.Sub(l.lastSave) < l.minGap {
		return SaveCoolingDown
	}
	return SaveReady
}
