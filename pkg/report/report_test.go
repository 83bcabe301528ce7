package report

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestReporter(t *testing.T) (*Reporter, *bytes.Buffer) {
	t.Helper()
	pterm.SetDefaultOutput(io.Discard)
	t.Cleanup(func() { pterm.SetDefaultOutput(os.Stdout) })

	var buf bytes.Buffer
	return NewReporter(zerolog.New(&buf)), &buf
}

func TestLogChange(t *testing.T) {
	tests := []struct {
		name   string
		change Change
		want   []string
	}{
		{
			name: "changed",
			change: Change{
				Type:   PropertyChanged,
				Key:    "version",
				Target: "version",
				Before: "1.0.0-SNAPSHOT",
				After:  "1.0.0",
			},
			want: []string{"Changed version", "1.0.0-SNAPSHOT", `"level":"info"`},
		},
		{
			name: "created",
			change: Change{
				Type:   PropertyCreated,
				Key:    "build",
				Target: "build.masked",
				After:  "abc#",
			},
			want: []string{"Created build.masked", "abc#"},
		},
		{
			name: "error",
			change: Change{
				Type:   PropertyError,
				Key:    "key",
				Target: "key",
				Err:    assert.AnError,
			},
			want: []string{"Error key", `"level":"error"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter, buf := newTestReporter(t)
			reporter.LogChange(tt.change)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestLogSummary(t *testing.T) {
	reporter, buf := newTestReporter(t)
	reporter.LogSummary("app.properties", 2, 1, 10)

	out := buf.String()
	assert.Contains(t, out, `"file":"app.properties"`)
	assert.Contains(t, out, `"changed":2`)
	assert.Contains(t, out, `"created":1`)
	assert.Contains(t, out, `"total":10`)
}

func TestLogValidation(t *testing.T) {
	reporter, buf := newTestReporter(t)
	reporter.LogValidation(false, "bad config", assert.AnError)
	assert.Contains(t, buf.String(), `"level":"error"`)

	reporter.LogValidation(true, "all good", nil)
	assert.Contains(t, buf.String(), "all good")
}
