package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/voicetutor/pkg/models"
)

const personalContextColumns = `
	user_id, first_name, nickname, age, gender, native_language,
	family_members, friends, pets, hobbies, favorite_foods, favorite_colors,
	favorite_subjects, occupation, workplace_or_school, daily_routine,
	city, country, home_items, room_description, learning_goals, dream_job,
	places_want_to_visit, current_mood, recent_activities, objects_around,
	context_completeness, last_context_update, created_at, updated_at`

// PersonalContextRepository persists what the tutor knows about a learner.
type PersonalContextRepository struct{}

func NewPersonalContextRepository() *PersonalContextRepository {
	return &PersonalContextRepository{}
}

// Get returns the learner's personal context, or nil when absent.
func (r *PersonalContextRepository) Get(userID string) (*models.PersonalContext, error) {
	var pc models.PersonalContext
	found := false
	err := withRetry("get personal context", func() error {
		err := DB.Get(&pc, `
			SELECT `+personalContextColumns+`
			FROM user_personal_context
			WHERE user_id = $1`, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get personal context: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &pc, nil
}

// Upsert writes the whole personal context document.
func (r *PersonalContextRepository) Upsert(pc models.PersonalContext) error {
	err := withRetry("upsert personal context", func() error {
		_, err := DB.Exec(`
			INSERT INTO user_personal_context (`+personalContextColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
			        $27, $28, $29, $30)
			ON CONFLICT (user_id) DO UPDATE SET
				first_name = $2,
				nickname = $3,
				age = $4,
				gender = $5,
				native_language = $6,
				family_members = $7,
				friends = $8,
				pets = $9,
				hobbies = $10,
				favorite_foods = $11,
				favorite_colors = $12,
				favorite_subjects = $13,
				occupation = $14,
				workplace_or_school = $15,
				daily_routine = $16,
				city = $17,
				country = $18,
				home_items = $19,
				room_description = $20,
				learning_goals = $21,
				dream_job = $22,
				places_want_to_visit = $23,
				current_mood = $24,
				recent_activities = $25,
				objects_around = $26,
				context_completeness = $27,
				last_context_update = $28,
				updated_at = $30`,
			pc.UserID, pc.FirstName, pc.Nickname, pc.Age, pc.Gender, pc.NativeLanguage,
			pc.FamilyMembers, pc.Friends, pc.Pets, pc.Hobbies, pc.FavoriteFoods,
			pc.FavoriteColors, pc.FavoriteSubjects, pc.Occupation, pc.WorkplaceOrSchool,
			pc.DailyRoutine, pc.City, pc.Country, pc.HomeItems, pc.RoomDescription,
			pc.LearningGoals, pc.DreamJob, pc.PlacesWantToVisit, pc.CurrentMood,
			pc.RecentActivities, pc.ObjectsAround, pc.ContextCompleteness,
			pc.LastContextUpdate, pc.CreatedAt, pc.UpdatedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert personal context: %w", err)
	}
	return nil
}
