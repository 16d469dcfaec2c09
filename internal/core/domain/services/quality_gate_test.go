package services_test

import (
	"errors"
	"testing"

	"mestrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQualityGate_ThresholdFallback(t *testing.T) {
	assert.InDelta(t, services.DefaultDefectRateThreshold, services.NewQualityGate(0).Threshold(), 0.0001)
	assert.InDelta(t, services.DefaultDefectRateThreshold, services.NewQualityGate(-0.1).Threshold(), 0.0001)
	assert.InDelta(t, 0.15, services.NewQualityGate(0.15).Threshold(), 0.0001)
}

func TestQualityGate_DefectRate(t *testing.T) {
	gate := services.NewQualityGate(services.DefaultDefectRateThreshold)

	tests := []struct {
		name    string
		goodQty int
		badQty  int
		want    float64
	}{
		{"no defects", 100, 0, 0.0},
		{"some defects", 70, 30, 0.30},
		{"all defective", 0, 50, 1.0},
		{"zero total", 0, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, gate.DefectRate(tt.goodQty, tt.badQty), 0.0001)
		})
	}
}

func TestQualityGate_Evaluate_ThresholdBoundary(t *testing.T) {
	gate := services.NewQualityGate(0.30)

	// Exactly at the threshold is accepted.
	accepted, rate := gate.Evaluate(70, 30)
	assert.True(t, accepted)
	assert.InDelta(t, 0.30, rate, 0.0001)

	// Just above the threshold is rejected.
	accepted, rate = gate.Evaluate(69, 31)
	assert.False(t, accepted)
	assert.InDelta(t, 0.31, rate, 0.0001)
}

func TestQualityGate_Evaluate_ZeroTotalAccepted(t *testing.T) {
	gate := services.NewQualityGate(0.30)

	accepted, rate := gate.Evaluate(0, 0)
	assert.True(t, accepted)
	assert.Zero(t, rate)
}

func TestDefectRateExceededError(t *testing.T) {
	var err error = &services.DefectRateExceededError{Rate: 0.42, Threshold: 0.30}

	require.ErrorIs(t, err, services.ErrDefectRateExceeded)

	var rejection *services.DefectRateExceededError
	require.True(t, errors.As(err, &rejection))
	assert.InDelta(t, 0.42, rejection.Rate, 0.0001)
	assert.Contains(t, err.Error(), "42.00%")
	assert.Contains(t, err.Error(), "30.00%")
}
