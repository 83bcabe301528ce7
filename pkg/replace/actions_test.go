package replace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAction(t *testing.T) {
	tests := []struct {
		name   string
		action string
		input  string
		want   string
		wantOk bool
	}{
		{name: "lower_case", action: "LOWER_CASE", input: "Hello", want: "hello", wantOk: true},
		{name: "upper_case", action: "UPPER_CASE", input: "Hello", want: "HELLO", wantOk: true},
		{name: "unknown", action: "REVERSE", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := LookupAction(tt.action)
			require.Equal(t, tt.wantOk, ok)
			if ok {
				assert.Equal(t, tt.want, action.Apply(tt.input))
			}
		})
	}
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, []string{"LOWER_CASE", "UPPER_CASE"}, ActionNames())
}

func TestPhaseValid(t *testing.T) {
	assert.True(t, PhaseBefore.Valid())
	assert.True(t, PhaseAfter.Valid())
	assert.False(t, Phase("DURING").Valid())
	assert.False(t, Phase("").Valid())
}
