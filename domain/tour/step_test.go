package tour

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSteps(t *testing.T) {
	steps, err := DefaultSteps()
	require.NoError(t, err)

	ids := make([]string, 0, len(steps))
	for _, s := range steps {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"dashboard", "appointments", "billing", "whatsapp"}, ids)
	assert.Equal(t, 4500*time.Millisecond, steps[1].Duration())
}

func TestParseSteps_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "steps: []"},
		{"missing id", "steps:\n  - title: x\n    durationMs: 100\n"},
		{"zero duration", "steps:\n  - id: a\n    durationMs: 0\n"},
		{"negative duration", "steps:\n  - id: a\n    durationMs: -5\n"},
		{"duplicate id", "steps:\n  - id: a\n    durationMs: 1\n  - id: a\n    durationMs: 1\n"},
		{"not yaml", "steps: [::"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSteps([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseSteps_EmptyIsErrNoSteps(t *testing.T) {
	_, err := ParseSteps([]byte("steps: []"))
	assert.ErrorIs(t, err, ErrNoSteps)
}
