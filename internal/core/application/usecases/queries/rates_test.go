package queries_test

import (
	"testing"

	"mestrack/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
)

func TestDefectRatePercent(t *testing.T) {
	tests := []struct {
		name    string
		output  int64
		defects int64
		want    float64
	}{
		{"2 defects out of 20 handled", 18, 2, 10.0},
		{"no activity", 0, 0, 0.0},
		{"all defective", 0, 5, 100.0},
		{"repeating fraction rounds", 2, 1, 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, queries.DefectRatePercent(tt.output, tt.defects), 0.0001)
		})
	}
}

func TestDefectRateFraction(t *testing.T) {
	assert.InDelta(t, 0.1, queries.DefectRateFraction(18, 2), 0.0001)
	assert.Zero(t, queries.DefectRateFraction(0, 0))
}

func TestProgressPercent(t *testing.T) {
	assert.InDelta(t, 50.0, queries.ProgressPercent(1, 2), 0.0001)
	assert.InDelta(t, 66.67, queries.ProgressPercent(2, 3), 0.0001)
	assert.Zero(t, queries.ProgressPercent(0, 0))
}

func TestQualityPercent(t *testing.T) {
	assert.InDelta(t, 90.0, queries.QualityPercent(18, 2), 0.0001)
	assert.Zero(t, queries.QualityPercent(0, 0))
}

func TestOEE(t *testing.T) {
	// 95 * 85 * 90 / 10000 = 72.675, rounded to 72.68.
	assert.InDelta(t, 72.68, queries.OEE(95, 85, 90), 0.0001)
	assert.Zero(t, queries.OEE(0, 0, 0))
}
