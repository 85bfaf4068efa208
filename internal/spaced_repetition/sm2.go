package spaced_repetition

import (
	"sort"
	"time"

	"github.com/example/voicetutor/pkg/models"
)

// SM2 schedules vocabulary card reviews with a binary-answer variant of the
// SuperMemo-2 algorithm.
type SM2 struct {
	// MinEaseFactor is the floor the ease factor never drops below.
	MinEaseFactor float64
	// MasteryThreshold is the mastery level at which a card is retired.
	MasteryThreshold int
}

// NewSM2 returns a scheduler with the standard settings.
func NewSM2() *SM2 {
	return &SM2{
		MinEaseFactor:    1.3,
		MasteryThreshold: 5,
	}
}

// Review updates a card after one answer. A correct answer walks the
// interval through 1, 6, then interval×EF days, raises the ease factor by
// 0.1 and the mastery level by 1; a wrong answer resets the repetition run,
// drops the ease factor by 0.2 and the mastery level by 1. The card is
// mastered once the mastery level reaches the threshold.
func (sm *SM2) Review(card models.VocabularyCard, correct bool, now time.Time) models.VocabularyCard {
	next := card
	if next.EaseFactor == 0 {
		next.EaseFactor = 2.5
	}

	if correct {
		switch next.Repetitions {
		case 0:
			next.Interval = 1
		case 1:
			next.Interval = 6
		default:
			next.Interval = int(float64(next.Interval) * next.EaseFactor)
		}
		next.Repetitions++
		next.EaseFactor += 0.1
		next.TimesCorrect++
		if next.MasteryLevel < sm.MasteryThreshold {
			next.MasteryLevel++
		}
		next.IsMastered = next.MasteryLevel >= sm.MasteryThreshold
	} else {
		next.Repetitions = 0
		next.Interval = 1
		next.EaseFactor -= 0.2
		next.TimesWrong++
		if next.MasteryLevel > 0 {
			next.MasteryLevel--
		}
		next.IsMastered = false
	}

	if next.EaseFactor < sm.MinEaseFactor {
		next.EaseFactor = sm.MinEaseFactor
	}
	next.TimesSeen++
	next.NextReviewDate = now.AddDate(0, 0, next.Interval)
	next.LastReviewedAt = now
	next.UpdatedAt = now
	return next
}

// DueCards filters and orders cards ready for review: unmastered cards whose
// next review date has passed, hardest (lowest ease factor) first.
func (sm *SM2) DueCards(cards []models.VocabularyCard, now time.Time, limit int) []models.VocabularyCard {
	var due []models.VocabularyCard
	for _, c := range cards {
		if c.IsMastered || c.NextReviewDate.After(now) {
			continue
		}
		due = append(due, c)
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].Repetitions == 0 != (due[j].Repetitions == 0) {
			return due[i].Repetitions == 0
		}
		if due[i].EaseFactor != due[j].EaseFactor {
			return due[i].EaseFactor < due[j].EaseFactor
		}
		return due[i].NextReviewDate.Before(due[j].NextReviewDate)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}
