package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable_DualTrack(t *testing.T) {
	raw := []byte(`{
		"policy": "dual-track",
		"retry_delay_minutes": 30,
		"stages": [
			{"name": "new", "meaning": 1, "reading": 1, "interval_hours": 4},
			{"name": "s1", "meaning": 2, "reading": 3, "interval_hours": 72}
		]
	}`)

	kind, table, err := ParseTable(raw)
	require.NoError(t, err)
	assert.Equal(t, KindDualTrack, kind)
	assert.Equal(t, 30*time.Minute, table.RetryDelay)
	require.Len(t, table.Stages, 2)
	assert.Equal(t, 2, table.Stages[1].Meaning)
	assert.Equal(t, 3, table.Stages[1].Reading)
	assert.Equal(t, 72*time.Hour, table.Stages[1].Interval)
}

func TestParseTable_BackoffOverrides(t *testing.T) {
	raw := []byte(`{
		"policy": "backoff",
		"growth": 2.0,
		"base_interval_hours": {"easy": 120, "hard": 12}
	}`)

	kind, table, err := ParseTable(raw)
	require.NoError(t, err)
	assert.Equal(t, KindBackoff, kind)
	assert.Equal(t, 2.0, table.Growth)
	assert.Equal(t, 120*time.Hour, table.BaseIntervals[Easy])
	assert.Equal(t, 12*time.Hour, table.BaseIntervals[Hard])
	// Omitted buckets keep their defaults.
	assert.Equal(t, 48*time.Hour, table.BaseIntervals[Medium])
}

func TestParseTable_DefaultsWhenMinimal(t *testing.T) {
	kind, table, err := ParseTable([]byte(`{"policy": "fixed-stage"}`))
	require.NoError(t, err)
	assert.Equal(t, KindFixedStage, kind)
	assert.Equal(t, FixedStageTable().Stages, table.Stages)
	assert.Equal(t, 25, table.Increment)
	assert.Equal(t, DefaultRetryDelay, table.RetryDelay)
}

func TestParseTable_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"policy":`},
		{"unknown policy", `{"policy": "leitner"}`},
		{"missing policy", `{"stages": []}`},
		{"unknown field", `{"policy": "sm2", "cram_mode": true}`},
		{"stage without name", `{"policy": "dual-track", "stages": [{"interval_hours": 4}]}`},
		{"negative interval", `{"policy": "dual-track", "stages": [{"name": "a", "interval_hours": -1}]}`},
		{"zero retry delay", `{"policy": "sm2", "retry_delay_minutes": 0}`},
		{"fixed-stage nonzero first threshold", `{
			"policy": "fixed-stage",
			"stages": [
				{"name": "a", "mastery": 10, "interval_hours": 1},
				{"name": "b", "mastery": 50, "interval_hours": 24}
			]
		}`},
		{"fixed-stage non-increasing thresholds", `{
			"policy": "fixed-stage",
			"stages": [
				{"name": "a", "mastery": 0, "interval_hours": 1},
				{"name": "b", "mastery": 0, "interval_hours": 24}
			]
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseTable([]byte(tt.raw))
			require.Error(t, err)
		})
	}
}
