package models

import "time"

// Pet is one pet mentioned by the learner.
type Pet struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// PersonalContext holds what the tutor knows about the learner so lessons
// can use real names, places and interests. List fields merge by union,
// map fields merge key-by-key; existing values are never dropped.
type PersonalContext struct {
	UserID              string     `json:"user_id" db:"user_id"`
	FirstName           string     `json:"first_name" db:"first_name"`
	Nickname            string     `json:"nickname" db:"nickname"`
	Age                 int        `json:"age" db:"age"`
	Gender              string     `json:"gender" db:"gender"`
	NativeLanguage      string     `json:"native_language" db:"native_language"`
	FamilyMembers       StringMap  `json:"family_members" db:"family_members"`
	Friends             StringList `json:"friends" db:"friends"`
	Pets                PetList    `json:"pets" db:"pets"`
	Hobbies             StringList `json:"hobbies" db:"hobbies"`
	FavoriteFoods       StringList `json:"favorite_foods" db:"favorite_foods"`
	FavoriteColors      StringList `json:"favorite_colors" db:"favorite_colors"`
	FavoriteSubjects    StringList `json:"favorite_subjects" db:"favorite_subjects"`
	Occupation          string     `json:"occupation" db:"occupation"`
	WorkplaceOrSchool   string     `json:"workplace_or_school" db:"workplace_or_school"`
	DailyRoutine        StringMap  `json:"daily_routine" db:"daily_routine"`
	City                string     `json:"city" db:"city"`
	Country             string     `json:"country" db:"country"`
	HomeItems           StringList `json:"home_items" db:"home_items"`
	RoomDescription     string     `json:"room_description" db:"room_description"`
	LearningGoals       StringList `json:"learning_goals" db:"learning_goals"`
	DreamJob            string     `json:"dream_job" db:"dream_job"`
	PlacesWantToVisit   StringList `json:"places_want_to_visit" db:"places_want_to_visit"`
	CurrentMood         string     `json:"current_mood" db:"current_mood"`
	RecentActivities    StringList `json:"recent_activities" db:"recent_activities"`
	ObjectsAround       StringList `json:"objects_around" db:"objects_around"`
	ContextCompleteness int        `json:"context_completeness" db:"context_completeness"`
	LastContextUpdate   time.Time  `json:"last_context_update" db:"last_context_update"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// NewPersonalContext returns an empty context for an Arabic-speaking learner.
func NewPersonalContext(userID string, now time.Time) PersonalContext {
	return PersonalContext{
		UserID:            userID,
		NativeLanguage:    "Arabic",
		FamilyMembers:     StringMap{},
		Friends:           StringList{},
		Pets:              PetList{},
		Hobbies:           StringList{},
		FavoriteFoods:     StringList{},
		FavoriteColors:    StringList{},
		FavoriteSubjects:  StringList{},
		DailyRoutine:      StringMap{},
		HomeItems:         StringList{},
		LearningGoals:     StringList{},
		PlacesWantToVisit: StringList{},
		RecentActivities:  StringList{},
		ObjectsAround:     StringList{},
		LastContextUpdate: now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// PersonalInfo carries freshly extracted facts about the learner before they
// are merged into the stored context. Zero-valued fields mean "not mentioned".
type PersonalInfo struct {
	FirstName  string
	Age        int
	City       string
	Occupation string
	Hobbies    []string
}

// Empty reports whether nothing was extracted.
func (p PersonalInfo) Empty() bool {
	return p.FirstName == "" && p.Age == 0 && p.City == "" &&
		p.Occupation == "" && len(p.Hobbies) == 0
}
