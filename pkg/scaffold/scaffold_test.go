package scaffold

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aockit/pkg/config"
	"github.com/aockit/pkg/workspace"
)

func newTestScaffolder(t *testing.T, fs afero.Fs) (*Scaffolder, *workspace.Resolver) {
	t.Helper()
	formats := config.Default().Formats
	resolver, err := workspace.NewResolver(fs, formats)
	require.NoError(t, err)
	return New(fs, formats, resolver), resolver
}

func TestNewDay(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/x/advent-of-code-2023", 0o755))

	s, _ := newTestScaffolder(t, fs)
	created, err := s.NewDay("/x/advent-of-code-2023", 2023, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/x/advent-of-code-2023/day-07",
		"/x/advent-of-code-2023/day-07/part-1.rs",
	}, created)

	ok, err := afero.Exists(fs, "/x/advent-of-code-2023/day-07/part-1.rs")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewDaySeedsFromTemplate(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed := []byte("fn main() { todo!() }\n")
	require.NoError(t, afero.WriteFile(fs, "/x/advent-of-code-2023/templates/part.rs", seed, 0o644))

	s, _ := newTestScaffolder(t, fs)
	_, err := s.NewDay("/x/advent-of-code-2023", 2023, 1)
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "/x/advent-of-code-2023/day-01/part-1.rs")
	require.NoError(t, err)
	assert.Equal(t, seed, content)
}

func TestNewDayRefusesToOverwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/x/advent-of-code-2023", 0o755))

	s, _ := newTestScaffolder(t, fs)
	_, err := s.NewDay("/x/advent-of-code-2023", 2023, 7)
	require.NoError(t, err)

	// Mark the first-created file so we can prove it survives.
	marker := []byte("do not touch")
	require.NoError(t, afero.WriteFile(fs, "/x/advent-of-code-2023/day-07/part-1.rs", marker, 0o644))

	_, err = s.NewDay("/x/advent-of-code-2023", 2023, 7)
	require.ErrorIs(t, err, ErrAlreadyExists)
	assert.Contains(t, err.Error(), "day-07")

	content, err := afero.ReadFile(fs, "/x/advent-of-code-2023/day-07/part-1.rs")
	require.NoError(t, err)
	assert.Equal(t, marker, content)
}

func TestNewDayRejectsOutOfRange(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, _ := newTestScaffolder(t, fs)

	_, err := s.NewDay("/x/advent-of-code-2023", 2023, 26)
	assert.Error(t, err)
	_, err = s.NewDay("/x/advent-of-code-2023", 2023, 0)
	assert.Error(t, err)
}

func TestNewPartCopiesPreviousVerbatim(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := []byte("fn solve(input: &str) -> i32 { 42 }\n")
	require.NoError(t, afero.WriteFile(fs, "/x/advent-of-code-2023/day-07/part-1.rs", content, 0o644))

	s, resolver := newTestScaffolder(t, fs)
	loc, err := resolver.Resolve("/x/advent-of-code-2023/day-07", workspace.Options{})
	require.NoError(t, err)

	created, err := s.NewPart(loc)
	require.NoError(t, err)
	assert.Equal(t, "/x/advent-of-code-2023/day-07/part-2.rs", created)

	copied, err := afero.ReadFile(fs, created)
	require.NoError(t, err)
	assert.Equal(t, content, copied)
}

func TestNewPartWithoutPrevious(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/x/advent-of-code-2023/day-07", 0o755))

	s, resolver := newTestScaffolder(t, fs)
	loc, err := resolver.Resolve("/x/advent-of-code-2023/day-07", workspace.Options{})
	require.NoError(t, err)

	_, err = s.NewPart(loc)
	require.ErrorIs(t, err, ErrNoPreviousPart)
	assert.Contains(t, err.Error(), "day-07")
}

func TestNewPartWhenBothPartsExist(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/x/advent-of-code-2023/day-07/part-1.rs", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/x/advent-of-code-2023/day-07/part-2.rs", nil, 0o644))

	s, resolver := newTestScaffolder(t, fs)
	loc, err := resolver.Resolve("/x/advent-of-code-2023/day-07", workspace.Options{})
	require.NoError(t, err)

	_, err = s.NewPart(loc)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}
