package progress

import (
	"testing"

	"github.com/example/voicetutor/pkg/models"
)

func TestMergePersonalContextScalars(t *testing.T) {
	old := models.NewPersonalContext("u1", testNow)
	old.FirstName = "Ahmed"
	old.City = "Cairo"

	next := MergePersonalContext(old, models.PersonalInfo{
		Age:        25,
		Occupation: "engineer",
	}, testNow)

	if next.FirstName != "Ahmed" || next.City != "Cairo" {
		t.Error("unset fields in update overwrote stored values")
	}
	if next.Age != 25 || next.Occupation != "engineer" {
		t.Errorf("update not applied: age=%d occupation=%q", next.Age, next.Occupation)
	}
}

func TestMergePersonalContextHobbiesUnion(t *testing.T) {
	old := models.NewPersonalContext("u1", testNow)
	old.Hobbies = models.StringList{"reading"}

	next := MergePersonalContext(old, models.PersonalInfo{
		Hobbies: []string{"reading", "swimming"},
	}, testNow)

	if len(next.Hobbies) != 2 {
		t.Errorf("hobbies = %v, want union of 2", next.Hobbies)
	}
	if len(old.Hobbies) != 1 {
		t.Errorf("input mutated: %v", old.Hobbies)
	}
}

func TestCompletenessFiveOfNine(t *testing.T) {
	ctx := models.NewPersonalContext("u1", testNow)
	ctx.FirstName = "Ahmed"
	ctx.Age = 25
	ctx.Occupation = "student"
	ctx.City = "Cairo"
	ctx.Hobbies = models.StringList{"football"}

	if got := Completeness(ctx); got != 56 {
		t.Errorf("completeness = %d, want 56", got)
	}
}

func TestCompletenessBounds(t *testing.T) {
	empty := models.NewPersonalContext("u1", testNow)
	if got := Completeness(empty); got != 0 {
		t.Errorf("empty completeness = %d, want 0", got)
	}

	full := empty
	full.FirstName = "A"
	full.Age = 1
	full.Occupation = "x"
	full.City = "y"
	full.Hobbies = models.StringList{"z"}
	full.FamilyMembers = models.StringMap{"mother": "Mona"}
	full.Friends = models.StringList{"Omar"}
	full.FavoriteFoods = models.StringList{"koshari"}
	full.LearningGoals = models.StringList{"fluency"}
	if got := Completeness(full); got != 100 {
		t.Errorf("full completeness = %d, want 100", got)
	}
}
