package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/internal/mock"
	. "github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/internal/store"
	"github.com/esawctha/esawctha/models"
)

func TestRiskScore(t *testing.T) {
	tests := []struct {
		name  string
		input models.AssessmentInput
		want  int
	}{
		{
			name:  "empty form scores zero",
			input: models.AssessmentInput{},
			want:  0,
		},
		{
			name:  "age band over 65",
			input: models.AssessmentInput{Age: 70},
			want:  3,
		},
		{
			name:  "age band over 45",
			input: models.AssessmentInput{Age: 50},
			want:  2,
		},
		{
			name:  "age band over 35",
			input: models.AssessmentInput{Age: 36},
			want:  1,
		},
		{
			name:  "age band boundary is exclusive",
			input: models.AssessmentInput{Age: 35},
			want:  0,
		},
		{
			name:  "high cholesterol",
			input: models.AssessmentInput{Cholesterol: 250},
			want:  3,
		},
		{
			name:  "borderline cholesterol",
			input: models.AssessmentInput{Cholesterol: 210},
			want:  2,
		},
		{
			name:  "hypertension by either bound",
			input: models.AssessmentInput{DiastolicBP: 95},
			want:  3,
		},
		{
			name:  "elevated blood pressure",
			input: models.AssessmentInput{SystolicBP: 130},
			want:  1,
		},
		{
			name:  "previous heart problems weigh heaviest",
			input: models.AssessmentInput{PreviousHeartProblems: true},
			want:  4,
		},
		{
			name: "protective factors subtract",
			input: models.AssessmentInput{
				ExerciseHoursPerWeek: 5,
				HealthyDiet:          true,
				PhysicalActivityDays: 5,
			},
			want: -3,
		},
		{
			name: "all boolean risk factors",
			input: models.AssessmentInput{
				Diabetes:              true,
				FamilyHistory:         true,
				Smoking:               true,
				Obesity:               true,
				PreviousHeartProblems: true,
				HighStress:            true,
			},
			want: 16,
		},
		{
			name: "mixed profile",
			input: models.AssessmentInput{
				Age:         50,
				Cholesterol: 210,
				SystolicBP:  130,
				BMI:         27,
				Smoking:     true,
				HealthyDiet: true,
			},
			want: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RiskScore(tt.input))
		})
	}
}

func TestAssessmentService_Submit_PersistsScoredResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResults := mock.NewMockAssessmentRepository(ctrl)
	svc := NewAssessmentService(&store.Storages{AssessmentRepository: mockResults}, 0, logger.Nop())
	ctx := context.Background()

	input := models.AssessmentInput{Age: 70, Smoking: true, Diabetes: true, Cholesterol: 250}

	mockResults.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.AssessmentResult) error {
			assert.Equal(t, 12, r.Score)
			assert.Equal(t, models.RiskHigh, r.RiskLevel)
			assert.Equal(t, input, r.Inputs)
			assert.False(t, r.Timestamp.IsZero())
			return nil
		},
	)

	result, err := svc.Submit(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, result.RiskLevel)
	assert.Equal(t, 12, result.Score)
}

func TestAssessmentService_Last_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResults := mock.NewMockAssessmentRepository(ctrl)
	svc := NewAssessmentService(&store.Storages{AssessmentRepository: mockResults}, 0, logger.Nop())
	ctx := context.Background()

	mockResults.EXPECT().Get(ctx).Return(models.AssessmentResult{}, store.ErrPredictionNotFound)

	_, err := svc.Last(ctx)
	require.ErrorIs(t, err, store.ErrPredictionNotFound)
}
