package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/models"
)

// assessmentRepository persists the single-slot "last_prediction" record.
// It is not a history log: every save overwrites the previous snapshot.
type assessmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAssessmentRepository constructs an [AssessmentRepository] backed by the
// provided database connection and logger.
func NewAssessmentRepository(db *DB, logger *logger.Logger) AssessmentRepository {
	logger.Debug().Msg("creating assessment repository")
	return &assessmentRepository{
		db:     db,
		logger: logger,
	}
}

// Save overwrites the slot with the given result. The echoed form inputs are
// stored as a JSON document in the user_data column.
func (r *assessmentRepository) Save(ctx context.Context, result models.AssessmentResult) error {
	log := logger.FromContext(ctx)

	inputs, err := json.Marshal(result.Inputs)
	if err != nil {
		return fmt.Errorf("encode assessment inputs: %w", err)
	}

	_, err = r.db.ExecContext(ctx, savePrediction,
		string(result.RiskLevel), result.Score, result.Timestamp, string(inputs))
	if err != nil {
		log.Err(err).Str("func", "assessmentRepository.Save").Msg("failed to upsert prediction")
		return fmt.Errorf("failed to persist prediction: %w", err)
	}

	return nil
}

// Get reads the slot.
func (r *assessmentRepository) Get(ctx context.Context) (models.AssessmentResult, error) {
	row := r.db.QueryRowContext(ctx, getPrediction)

	var result models.AssessmentResult
	var level string
	var inputs string
	err := row.Scan(&level, &result.Score, &result.Timestamp, &inputs)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AssessmentResult{}, ErrPredictionNotFound
	}
	if err != nil {
		return models.AssessmentResult{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	result.RiskLevel = models.RiskLevel(level)
	if err := json.Unmarshal([]byte(inputs), &result.Inputs); err != nil {
		return models.AssessmentResult{}, fmt.Errorf("decode assessment inputs: %w", err)
	}

	return result, nil
}
