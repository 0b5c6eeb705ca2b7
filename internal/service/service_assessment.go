package service

import (
	"context"
	"fmt"
	"time"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/internal/store"
	"github.com/esawctha/esawctha/models"
)

// assessmentService implements [AssessmentService]. The scoring is a
// hand-tuned weighted sum over the form fields; it is admittedly simplified
// and is not a real predictive model.
type assessmentService struct {
	results     store.AssessmentRepository
	logger      *logger.Logger
	submitDelay time.Duration
}

// NewAssessmentService constructs an [AssessmentService].
func NewAssessmentService(storages *store.Storages, submitDelay time.Duration, logger *logger.Logger) AssessmentService {
	return &assessmentService{
		results:     storages.AssessmentRepository,
		logger:      logger,
		submitDelay: submitDelay,
	}
}

// Submit scores the input and overwrites the single-slot prediction record.
func (s *assessmentService) Submit(ctx context.Context, input models.AssessmentInput) (models.AssessmentResult, error) {
	sleep(ctx, s.submitDelay)

	score := RiskScore(input)
	result := models.AssessmentResult{
		RiskLevel: riskLevel(score),
		Score:     score,
		Timestamp: time.Now(),
		Inputs:    input,
	}

	if err := s.results.Save(ctx, result); err != nil {
		return models.AssessmentResult{}, fmt.Errorf("save assessment: %w", err)
	}

	s.logger.Debug().Int("score", score).Str("risk_level", string(result.RiskLevel)).Msg("assessment stored")
	return result, nil
}

// Last returns the most recent stored result.
func (s *assessmentService) Last(ctx context.Context) (models.AssessmentResult, error) {
	return s.results.Get(ctx)
}

// RiskScore is the weighted sum over the assessment form fields. Positive
// weights accumulate risk; regular exercise, a healthy diet, and frequent
// physical activity subtract from it, so the sum can go negative.
func RiskScore(in models.AssessmentInput) int {
	score := 0

	switch {
	case in.Age > 65:
		score += 3
	case in.Age > 45:
		score += 2
	case in.Age > 35:
		score += 1
	}

	switch {
	case in.Cholesterol > 240:
		score += 3
	case in.Cholesterol > 200:
		score += 2
	}

	switch {
	case in.SystolicBP > 140 || in.DiastolicBP > 90:
		score += 3
	case in.SystolicBP > 120 || in.DiastolicBP > 80:
		score += 1
	}

	if in.Diabetes {
		score += 3
	}
	if in.FamilyHistory {
		score += 2
	}
	if in.Smoking {
		score += 3
	}
	if in.Obesity {
		score += 2
	}
	if in.PreviousHeartProblems {
		score += 4
	}
	if in.HighStress {
		score += 2
	}

	switch {
	case in.BMI > 30:
		score += 2
	case in.BMI > 25:
		score += 1
	}

	if in.ExerciseHoursPerWeek > 3 {
		score--
	}
	if in.HealthyDiet {
		score--
	}
	if in.PhysicalActivityDays > 4 {
		score--
	}

	return score
}

func riskLevel(score int) models.RiskLevel {
	switch {
	case score > 8:
		return models.RiskHigh
	case score > 4:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}
