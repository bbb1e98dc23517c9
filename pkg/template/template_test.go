package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	ctx := Context{Year: 2023, Day: 7, Part: 2, File: "part-2.rs"}

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"repo", "advent-of-code-{year}", "advent-of-code-2023"},
		{"day plain", "day-{day}", "day-7"},
		{"day padded", "day-{day:02}", "day-07"},
		{"part file", "part-{part}.rs", "part-2.rs"},
		{"command", "cargo run --quiet --bin {file}", "cargo run --quiet --bin part-2.rs"},
		{"no placeholders", "input.txt", "input.txt"},
		{"adjacent", "{year}{day}{part}", "202372"},
		{"wide padding", "{part:04}", "0002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderLeavesNoDelimiters(t *testing.T) {
	ctx := Context{Year: 2023, Day: 7, Part: 2, File: "solve.py"}
	templates := []string{
		"advent-of-code-{year}",
		"day-{day:02}",
		"part-{part}.rs",
		"python3 {file} < input.txt",
		"{year}/{day}/{part}",
	}
	for _, tmpl := range templates {
		got, err := Render(tmpl, ctx)
		require.NoError(t, err, tmpl)
		assert.NotContains(t, got, "{", tmpl)
		assert.NotContains(t, got, "}", tmpl)
	}
}

func TestRenderDoesNotReinterpretValues(t *testing.T) {
	// A substituted value containing brace syntax must come through as a
	// literal, not as a fresh placeholder.
	ctx := Context{Year: 2023, Day: 7, Part: 1, File: "{day}.rs"}
	got, err := Render("run {file}", ctx)
	require.NoError(t, err)
	assert.Equal(t, "run {day}.rs", got)
}

func TestRenderUnresolvedPlaceholder(t *testing.T) {
	_, err := Render("day-{month}", Context{})
	require.ErrorIs(t, err, ErrUnresolvedPlaceholder)
	assert.Contains(t, err.Error(), "{month}")
}

func TestRenderMalformed(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
	}{
		{"unclosed", "day-{day"},
		{"unmatched close", "day-}day"},
		{"empty", "day-{}"},
		{"nested open", "day-{{day}"},
		{"bad directive", "day-{day:xx}"},
		{"negative directive", "day-{day:-2}"},
		{"padding on file", "{file:02}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.tmpl, Context{Day: 1})
			assert.ErrorIs(t, err, ErrMalformedTemplate)
		})
	}
}
