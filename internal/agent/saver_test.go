package agent

import (
	"testing"
	"time"
)

var limiterStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestLimiterWarmup(t *testing.T) {
	l := NewSaveLimiter(limiterStart)
	at := limiterStart.Add(5 * time.Second)

	// Not even the third message flushes during the warmup.
	for i := 1; i <= 3; i++ {
		if l.NoteMessage(at) {
			t.Errorf("message %d saved during warmup", i)
		}
	}
	if got := l.State(at); got != SaveWarmingUp {
		t.Errorf("state = %q, want %q", got, SaveWarmingUp)
	}
}

func TestLimiterEveryThirdMessageForcesSave(t *testing.T) {
	l := NewSaveLimiter(limiterStart)
	warm := limiterStart.Add(time.Minute)

	if !l.NoteMessage(warm) {
		t.Fatal("warmed-up message did not save")
	}
	l.Saved(warm)

	if l.NoteMessage(warm.Add(time.Second)) {
		t.Error("message 2 saved inside the gap")
	}
	// The third message overrides the gap, but only past the warmup.
	if !l.NoteMessage(warm.Add(2 * time.Second)) {
		t.Error("message 3 did not save")
	}
}

func TestLimiterMinGap(t *testing.T) {
	l := NewSaveLimiter(limiterStart)
	warm := limiterStart.Add(time.Minute)

	if !l.NoteMessage(warm) {
		t.Fatal("warmed-up message did not save")
	}
	l.Saved(warm)

	if l.NoteMessage(warm.Add(3 * time.Second)) {
		t.Error("saved inside the minimum gap")
	}
	if got := l.State(warm.Add(3 * time.Second)); got != SaveCoolingDown {
		t.Errorf("state = %q, want %q", got, SaveCoolingDown)
	}

	// Message count is now 3, so this one is forced regardless of gap.
	if !l.NoteMessage(warm.Add(4 * time.Second)) {
		t.Error("third message not forced")
	}
	l.Saved(warm.Add(4 * time.Second))

	if !l.NoteMessage(warm.Add(30 * time.Second)) {
		t.Error("did not save after the gap elapsed")
	}
	if got := l.State(warm.Add(30 * time.Second)); got != SaveReady {
		t.Errorf("state = %q, want %q", got, SaveReady)
	}
}
