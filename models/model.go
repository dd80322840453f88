package models

import "time"

// Gender values accepted by the profile form. Anything that is not Male
// falls into the Female formula branch when deriving BMR.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Activity levels, in increasing order of energy expenditure.
const (
	ActivitySedentary = "Sedentary"
	ActivityLight     = "Lightly Active"
	ActivityModerate  = "Moderately Active"
	ActivityVery      = "Very Active"
	ActivityExtreme   = "Extremely Active"
)

// Health goals. The strings are part of the persisted contract.
const (
	GoalLoseWeight     = "Lose Weight"
	GoalMaintainWeight = "Maintain Weight"
	GoalGainWeight     = "Gain Weight"
)

// Meal types.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

// Exercise intensities.
const (
	IntensityLow      = "Low"
	IntensityModerate = "Moderate"
	IntensityHigh     = "High"
)

// DateLayout is the calendar-day format used everywhere in the document.
const DateLayout = "2006-01-02"

// Profile is the singleton physiological record. The three derived fields
// (bmr, daily_calories, target_calories) are recomputed together from the
// input fields on every save and never updated independently.
//
// All fields are omitempty so an unset profile serializes as {}, which is
// what the rest of the app checks for.
type Profile struct {
	Name           string  `json:"name,omitempty"`
	Age            int     `json:"age,omitempty"`
	Gender         string  `json:"gender,omitempty"`
	Weight         float64 `json:"weight,omitempty"`
	Height         float64 `json:"height,omitempty"`
	ActivityLevel  string  `json:"activity_level,omitempty"`
	Goal           string  `json:"goal,omitempty"`
	BMR            float64 `json:"bmr,omitempty"`
	DailyCalories  float64 `json:"daily_calories,omitempty"`
	TargetCalories float64 `json:"target_calories,omitempty"`
}

// Populated reports whether a profile has ever been saved. Every page but
// profile setup requires this as a precondition.
func (p Profile) Populated() bool {
	return p != Profile{}
}

// FoodItem is one itemized food from a meal analysis. Macro amounts come
// back from the collaborator as display strings like "12g".
type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  string  `json:"protein,omitempty"`
	Carbs    string  `json:"carbs,omitempty"`
	Fat      string  `json:"fat,omitempty"`
}

// MealEntry is an append-only meal record. Entries are only ever created
// from a successfully parsed collaborator analysis and are never edited or
// deleted afterwards.
type MealEntry struct {
	Date          string     `json:"date"`
	MealType      string     `json:"meal_type"`
	Items         []FoodItem `json:"items"`
	TotalCalories float64    `json:"total_calories"`
	HealthScore   string     `json:"health_score"`
	Suggestions   string     `json:"suggestions,omitempty"`
	Timestamp     string     `json:"timestamp"`
}

// ExerciseEntry is an append-only exercise record with its computed burn.
type ExerciseEntry struct {
	Date           string  `json:"date"`
	Type           string  `json:"type"`
	Duration       int     `json:"duration"`
	Intensity      string  `json:"intensity"`
	CaloriesBurned float64 `json:"calories_burned"`
	Notes          string  `json:"notes,omitempty"`
	Timestamp      string  `json:"timestamp"`
}

// Document is the whole persisted aggregate. Goals is a dead field kept for
// compatibility with existing data files; nothing reads or writes it.
type Document struct {
	Profile   Profile                `json:"profile"`
	Meals     []MealEntry            `json:"meals"`
	Exercises []ExerciseEntry        `json:"exercises"`
	Goals     map[string]interface{} `json:"goals"`
}

// NewDocument returns the default empty document.
func NewDocument() *Document {
	return &Document{
		Meals:     []MealEntry{},
		Exercises: []ExerciseEntry{},
		Goals:     map[string]interface{}{},
	}
}

// Today returns the current calendar day in document format.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ValidGender reports whether g is one of the two profile genders.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}

// ActivityLevels lists the five levels in form order.
var ActivityLevels = []string{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityVery,
	ActivityExtreme,
}

// ValidActivityLevel reports whether level is one of the five known levels.
func ValidActivityLevel(level string) bool {
	for _, l := range ActivityLevels {
		if l == level {
			return true
		}
	}
	return false
}

// ValidGoal reports whether goal is one of the three health goals.
func ValidGoal(goal string) bool {
	return goal == GoalLoseWeight || goal == GoalMaintainWeight || goal == GoalGainWeight
}

// ValidMealType reports whether t is one of the four meal types.
func ValidMealType(t string) bool {
	return t == MealBreakfast || t == MealLunch || t == MealDinner || t == MealSnack
}
