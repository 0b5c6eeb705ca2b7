package models

import "time"

// RiskLevel is the enumerated outcome of a heart-disease risk assessment.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// AssessmentInput echoes the submitted prediction form fields.
// Yes/no factors are booleans; band-scored vitals are numeric.
type AssessmentInput struct {
	Age                   int     `json:"age"`
	Sex                   string  `json:"sex"`
	Cholesterol           int     `json:"cholesterol"`
	SystolicBP            int     `json:"systolic_bp"`
	DiastolicBP           int     `json:"diastolic_bp"`
	HeartRate             int     `json:"heart_rate"`
	Diabetes              bool    `json:"diabetes"`
	FamilyHistory         bool    `json:"family_history"`
	Smoking               bool    `json:"smoking"`
	Obesity               bool    `json:"obesity"`
	PreviousHeartProblems bool    `json:"previous_heart_problems"`
	HighStress            bool    `json:"high_stress"`
	HealthyDiet           bool    `json:"healthy_diet"`
	BMI                   float64 `json:"bmi"`
	ExerciseHoursPerWeek  float64 `json:"exercise_hours_per_week"`
	PhysicalActivityDays  float64 `json:"physical_activity_days"`
	SleepHours            float64 `json:"sleep_hours"`
}

// AssessmentResult is a snapshot of one completed prediction. Storage is a
// single slot: each submission overwrites the previous result.
type AssessmentResult struct {
	RiskLevel RiskLevel       `json:"risk_level"`
	Score     int             `json:"score"`
	Timestamp time.Time       `json:"timestamp"`
	Inputs    AssessmentInput `json:"user_data"`
}

// TableName returns the name of the database table holding the single-slot
// prediction record.
func (r AssessmentResult) TableName() string {
	return "last_prediction"
}
