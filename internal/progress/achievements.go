package progress

import (
	"time"

	"github.com/example/voicetutor/pkg/models"
)

const dateLayout = "2006-01-02"

// AwardPoints adds points to the total and experience pools, advancing the
// level when experience crosses the threshold. Each threshold grows by half.
// Reports whether a level-up happened.
func AwardPoints(old models.Achievements, points int, now time.Time) (models.Achievements, bool) {
	next := old
	next.TotalPoints += points
	next.ExperiencePoints += points

	levelUp := false
	if next.PointsToNextLevel <= 0 {
		next.PointsToNextLevel = 100
	}
	if next.ExperiencePoints >= next.PointsToNextLevel {
		next.CurrentLevel++
		next.ExperiencePoints -= next.PointsToNextLevel
		next.PointsToNextLevel = next.PointsToNextLevel * 3 / 2
		levelUp = true
	}
	next.UpdatedAt = now
	return next, levelUp
}

// AdvanceStreak updates the consecutive-day counter for a study event today.
// Studying on the day after the last study extends the streak, the same day
// keeps it, and any gap resets it to 1.
func AdvanceStreak(old models.Achievements, now time.Time) models.Achievements {
	next := old
	today := now.Format(dateLayout)

	streak := 1
	if old.LastStudyDate != "" {
		if last, err := time.Parse(dateLayout, old.LastStudyDate); err == nil {
			t, _ := time.Parse(dateLayout, today)
			switch int(t.Sub(last).Hours() / 24) {
			case 0:
				streak = old.CurrentStreak
				if streak == 0 {
					streak = 1
				}
			case 1:
				streak = old.CurrentStreak + 1
			}
		}
	}

	next.CurrentStreak = streak
	if streak > next.LongestStreak {
		next.LongestStreak = streak
	}
	next.LastStudyDate = today
	next.UpdatedAt = now
	return next
}
