package answer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aockit/pkg/runner"
)

func TestFromRunTakesLastNonEmptyLine(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		want   string
	}{
		{"single line", "300\n", "300"},
		{"progress then answer", "parsing...\nsolving...\n4711\n", "4711"},
		{"trailing blank lines", "answer\n\n\n", "answer"},
		{"no trailing newline", "12", "12"},
		{"surrounding spaces", "  42  \n", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromRun(&runner.Result{Stdout: tt.stdout}, "cargo run")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromRunNoOutput(t *testing.T) {
	for _, stdout := range []string{"", "\n\n", "   \n\t\n"} {
		_, err := FromRun(&runner.Result{Stdout: stdout}, "cargo run --bin part-1")
		require.ErrorIs(t, err, ErrNoOutput)
		assert.Contains(t, err.Error(), "cargo run --bin part-1")
	}
}

func TestFromReader(t *testing.T) {
	got, err := FromReader(strings.NewReader("300\n"))
	require.NoError(t, err)
	assert.Equal(t, "300", got)
}

func TestFromReaderEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   \n\t  \n"} {
		_, err := FromReader(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestChooseSource(t *testing.T) {
	tests := []struct {
		name           string
		stdinFlag      bool
		piped          bool
		partOverridden bool
		want           Source
	}{
		{"flag wins", true, false, false, FromStdin},
		{"flag wins over part", true, true, true, FromStdin},
		{"piped implies stdin", false, true, false, FromStdin},
		{"part override forces run", false, true, true, FromProcess},
		{"terminal means process", false, false, false, FromProcess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChooseSource(tt.stdinFlag, tt.piped, tt.partOverridden))
		})
	}
}
