// Package metrics holds the closed-form calorie formulas derived from the
// user profile. All functions are pure; callers validate inputs (positive
// weight/height/age, known enum values) before calling.
package metrics

import "github.com/pmehta/healthtrack/models"

// activityMultipliers maps each activity level to its daily energy factor.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary: 1.2,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityVery:      1.725,
	models.ActivityExtreme:   1.9,
}

// BMR estimates resting energy expenditure (kcal/day) from body metrics
// using the revised Harris-Benedict equations. Any gender other than Male
// takes the Female branch.
func BMR(weight, height float64, age int, gender string) float64 {
	if gender == models.GenderMale {
		return 88.362 + 13.397*weight + 4.799*height - 5.677*float64(age)
	}
	return 447.593 + 9.247*weight + 3.098*height - 4.330*float64(age)
}

// DailyCalories scales a BMR by the activity level multiplier.
func DailyCalories(bmr float64, activityLevel string) float64 {
	return bmr * activityMultipliers[activityLevel]
}

// TargetCalories adjusts the daily estimate for the health goal: a 500 kcal
// deficit to lose, a 500 kcal surplus to gain, unchanged otherwise.
func TargetCalories(daily float64, goal string) float64 {
	switch goal {
	case models.GoalLoseWeight:
		return daily - 500
	case models.GoalGainWeight:
		return daily + 500
	default:
		return daily
	}
}
