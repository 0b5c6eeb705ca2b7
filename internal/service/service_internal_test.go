package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/esawctha/esawctha/models"
)

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		score int
		want  models.RiskLevel
	}{
		{score: -2, want: models.RiskLow},
		{score: 4, want: models.RiskLow},
		{score: 5, want: models.RiskModerate},
		{score: 8, want: models.RiskModerate},
		{score: 9, want: models.RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, riskLevel(tt.score), "score %d", tt.score)
	}
}

func TestAuthService_SubmitDelayRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	sleep(ctx, 5*time.Second)
	assert.Less(t, time.Since(start), time.Second)
}
