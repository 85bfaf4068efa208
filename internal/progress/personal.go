package progress

import (
	"math"
	"time"

	"github.com/example/voicetutor/pkg/models"
)

// MergePersonalContext folds freshly extracted facts into the stored
// personal context. Scalars are set only when the update carries a value,
// list fields merge by union, so nothing the learner already shared is lost.
func MergePersonalContext(old models.PersonalContext, info models.PersonalInfo, now time.Time) models.PersonalContext {
	next := old
	if info.FirstName != "" {
		next.FirstName = info.FirstName
	}
	if info.Age > 0 {
		next.Age = info.Age
	}
	if info.City != "" {
		next.City = info.City
	}
	if info.Occupation != "" {
		next.Occupation = info.Occupation
	}
	if len(info.Hobbies) > 0 {
		next.Hobbies = append(models.StringList{}, old.Hobbies...)
		for _, h := range info.Hobbies {
			if h != "" && !next.Hobbies.Contains(h) {
				next.Hobbies = append(next.Hobbies, h)
			}
		}
	}
	next.ContextCompleteness = Completeness(next)
	next.LastContextUpdate = now
	next.UpdatedAt = now
	return next
}

// Completeness scores how much of the context's important fields are filled,
// as a rounded percentage over nine fields.
func Completeness(ctx models.PersonalContext) int {
	filled := 0
	if ctx.FirstName != "" {
		filled++
	}
	if ctx.Age > 0 {
		filled++
	}
	if ctx.Occupation != "" {
		filled++
	}
	if ctx.City != "" {
		filled++
	}
	if len(ctx.Hobbies) > 0 {
		filled++
	}
	if len(ctx.FamilyMembers) > 0 {
		filled++
	}
	if len(ctx.Friends) > 0 {
		filled++
	}
	if len(ctx.FavoriteFoods) > 0 {
		filled++
	}
	if len(ctx.LearningGoals) > 0 {
		filled++
	}
	return int(math.Round(float64(filled) / 9 * 100))
}
