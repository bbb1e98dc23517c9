// Package scaffold creates day directories and part files from the
// configured format templates. It never overwrites: every target is checked
// before anything is written, so a failed call leaves the tree untouched.
package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/aockit/pkg/config"
	"github.com/aockit/pkg/template"
	"github.com/aockit/pkg/workspace"
)

// Advent of Code bounds: 25 days, two parts each.
const (
	MaxDay  = 25
	MaxPart = 2
)

// SeedDir is the repo subdirectory searched for part seed files, e.g.
// templates/part.rs for a ".rs" part format.
const SeedDir = "templates"

// Scaffolder creates new day and part structures.
type Scaffolder struct {
	fs       afero.Fs
	formats  config.Formats
	resolver *workspace.Resolver
}

// New creates a Scaffolder sharing the resolver's view of the tree.
func New(fs afero.Fs, formats config.Formats, resolver *workspace.Resolver) *Scaffolder {
	return &Scaffolder{fs: fs, formats: formats, resolver: resolver}
}

// NewDay creates the rendered day directory and its part-1 file inside
// repoDir. The part file is seeded from templates/part<ext> at the repo root
// when present, otherwise created empty. Returns the created paths.
func (s *Scaffolder) NewDay(repoDir string, year, day int) ([]string, error) {
	if day < 1 || day > MaxDay {
		return nil, fmt.Errorf("day %d out of range (1-%d)", day, MaxDay)
	}

	ctx := template.Context{Year: year, Day: day, Part: 1}
	dayName, err := template.Render(s.formats.Day, ctx)
	if err != nil {
		return nil, err
	}
	partName, err := template.Render(s.formats.Part, ctx)
	if err != nil {
		return nil, err
	}

	dayDir := filepath.Join(repoDir, dayName)
	if ok, err := afero.Exists(s.fs, dayDir); err != nil {
		return nil, err
	} else if ok {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, dayDir)
	}

	seed, err := s.seedContent(repoDir, partName)
	if err != nil {
		return nil, err
	}

	if err := s.fs.MkdirAll(dayDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dayDir, err)
	}
	partPath := filepath.Join(dayDir, partName)
	if err := afero.WriteFile(s.fs, partPath, seed, 0o644); err != nil {
		return nil, fmt.Errorf("creating %s: %w", partPath, err)
	}
	return []string{dayDir, partPath}, nil
}

// NewPart copies the highest existing part file verbatim to the next part
// number and returns the created path.
func (s *Scaffolder) NewPart(loc workspace.Location) (string, error) {
	prev, prevName, err := s.resolver.HighestPart(loc.DayDir)
	if err != nil {
		return "", err
	}
	if prev == 0 {
		return "", fmt.Errorf("%w: no file matching %q in %s",
			ErrNoPreviousPart, s.formats.Part, loc.DayDir)
	}
	next := prev + 1
	if next > MaxPart {
		return "", fmt.Errorf("%w: %s already has part %d", ErrAlreadyExists, loc.DayDir, MaxPart)
	}

	ctx := loc.Context
	ctx.Part = next
	nextName, err := template.Render(s.formats.Part, ctx)
	if err != nil {
		return "", err
	}

	target := filepath.Join(loc.DayDir, nextName)
	if ok, err := afero.Exists(s.fs, target); err != nil {
		return "", err
	} else if ok {
		return "", fmt.Errorf("%w: %s", ErrAlreadyExists, target)
	}

	content, err := afero.ReadFile(s.fs, filepath.Join(loc.DayDir, prevName))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", prevName, err)
	}
	if err := afero.WriteFile(s.fs, target, content, 0o644); err != nil {
		return "", fmt.Errorf("creating %s: %w", target, err)
	}
	return target, nil
}

// seedContent loads the seed file for new part files, keyed by the part
// format's extension. Missing seed files are not an error.
func (s *Scaffolder) seedContent(repoDir, partName string) ([]byte, error) {
	ext := filepath.Ext(partName)
	if ext == "" {
		return nil, nil
	}
	seedPath := filepath.Join(repoDir, SeedDir, "part"+ext)
	ok, err := afero.Exists(s.fs, seedPath)
	if err != nil || !ok {
		return nil, err
	}
	content, err := afero.ReadFile(s.fs, seedPath)
	if err != nil {
		return nil, fmt.Errorf("reading seed %s: %w", seedPath, err)
	}
	return content, nil
}
