// Package workspace infers the current puzzle context from the directory
// tree. Directory and file names are matched against the configured format
// templates with their placeholders acting as capture groups, so
// "advent-of-code-2023/day-07/part-2.rs" resolves to year 2023, day 7,
// part 2. Resolution is deterministic: the same tree and the same templates
// always produce the same context.
package workspace

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/aockit/pkg/config"
	"github.com/aockit/pkg/template"
)

// Location is a resolved context together with the directories it was
// resolved from.
type Location struct {
	template.Context

	RepoDir string
	DayDir  string
}

// PartPath returns the full path of the resolved part file.
func (l Location) PartPath() string {
	return filepath.Join(l.DayDir, l.File)
}

// Options adjusts resolution for a single call. Zero values mean "infer from
// the filesystem".
type Options struct {
	Day      int  // force the day instead of matching directories
	Part     int  // force the part instead of scanning part files
	NeedPart bool // fail with ErrNoPartFound when no part can be resolved
}

// Resolver matches working directories against the configured formats.
type Resolver struct {
	fs      afero.Fs
	formats config.Formats

	repoPat *template.Pattern
	dayPat  *template.Pattern
	partPat *template.Pattern
}

// NewResolver compiles the format templates into matching patterns.
func NewResolver(fs afero.Fs, formats config.Formats) (*Resolver, error) {
	repoPat, err := template.Compile(formats.Repo)
	if err != nil {
		return nil, fmt.Errorf("repo format: %w", err)
	}
	dayPat, err := template.Compile(formats.Day)
	if err != nil {
		return nil, fmt.Errorf("day format: %w", err)
	}
	partPat, err := template.Compile(formats.Part)
	if err != nil {
		return nil, fmt.Errorf("part format: %w", err)
	}
	return &Resolver{
		fs:      fs,
		formats: formats,
		repoPat: repoPat,
		dayPat:  dayPat,
		partPat: partPat,
	}, nil
}

// Resolve determines the current (year, day, part) from cwd.
//
// The repo directory is found by walking upward until a segment matches the
// repo pattern. The day comes from the first path segment below the repo
// that matches the day pattern; when cwd is the repo root itself, the repo's
// children are scanned instead, and more than one matching child is an
// ambiguity error rather than a guess.
func (r *Resolver) Resolve(cwd string, opt Options) (Location, error) {
	repoDir, year, below, err := r.findRepo(cwd)
	if err != nil {
		return Location{}, err
	}

	loc := Location{RepoDir: repoDir}
	loc.Year = year

	loc.Day, loc.DayDir, err = r.resolveDay(repoDir, below, opt.Day, year)
	if err != nil {
		return Location{}, err
	}

	if err := r.resolvePart(&loc, opt); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// FindRepo locates the repo directory at or above cwd and extracts the year.
func (r *Resolver) FindRepo(cwd string) (string, int, error) {
	repoDir, year, _, err := r.findRepo(cwd)
	return repoDir, year, err
}

func (r *Resolver) findRepo(cwd string) (repoDir string, year int, below []string, err error) {
	dir := filepath.Clean(cwd)
	for {
		base := filepath.Base(dir)
		if caps, ok := r.repoPat.Match(base); ok {
			return dir, caps[template.KeyYear], below, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", 0, nil, fmt.Errorf("%w: no directory matching %q at or above %s",
				ErrContextNotFound, r.formats.Repo, cwd)
		}
		below = append([]string{base}, below...)
		dir = parent
	}
}

func (r *Resolver) resolveDay(repoDir string, below []string, forced, year int) (int, string, error) {
	if forced > 0 {
		ctx := template.Context{Year: year, Day: forced}
		name, err := template.Render(r.formats.Day, ctx)
		if err != nil {
			return 0, "", err
		}
		return forced, filepath.Join(repoDir, name), nil
	}

	// A day segment on the path from the repo down to cwd wins.
	dir := repoDir
	for _, seg := range below {
		dir = filepath.Join(dir, seg)
		if caps, ok := r.dayPat.Match(seg); ok {
			return caps[template.KeyDay], dir, nil
		}
	}

	// Otherwise the day must be the unique matching child of the repo.
	entries, err := afero.ReadDir(r.fs, repoDir)
	if err != nil {
		return 0, "", fmt.Errorf("reading %s: %w", repoDir, err)
	}
	type candidate struct {
		name string
		day  int
	}
	var matches []candidate
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if caps, ok := r.dayPat.Match(e.Name()); ok {
			matches = append(matches, candidate{name: e.Name(), day: caps[template.KeyDay]})
		}
	}
	switch len(matches) {
	case 0:
		return 0, "", fmt.Errorf("%w: no directory matching %q in %s",
			ErrContextNotFound, r.formats.Day, repoDir)
	case 1:
		return matches[0].day, filepath.Join(repoDir, matches[0].name), nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.name
		}
		sort.Strings(names)
		return 0, "", fmt.Errorf("%w: %q matches multiple directories in %s: %s",
			ErrAmbiguousContext, r.formats.Day, repoDir, strings.Join(names, ", "))
	}
}

func (r *Resolver) resolvePart(loc *Location, opt Options) error {
	if opt.Part > 0 {
		loc.Part = opt.Part
		name, err := template.Render(r.formats.Part, loc.Context)
		if err != nil {
			return err
		}
		loc.File = name
		return nil
	}

	part, name, err := r.highestPart(loc.DayDir)
	if err != nil {
		return err
	}
	if part == 0 {
		if opt.NeedPart {
			return fmt.Errorf("%w: no file matching %q in %s",
				ErrNoPartFound, r.formats.Part, loc.DayDir)
		}
		return nil
	}
	loc.Part = part
	loc.File = name
	return nil
}

// highestPart scans a day directory for part files and returns the highest
// capture with its file name, or (0, "") when none match.
func (r *Resolver) highestPart(dayDir string) (int, string, error) {
	entries, err := afero.ReadDir(r.fs, dayDir)
	if err != nil {
		// A missing day directory simply has no parts yet.
		if ok, _ := afero.DirExists(r.fs, dayDir); !ok {
			return 0, "", nil
		}
		return 0, "", fmt.Errorf("reading %s: %w", dayDir, err)
	}

	best, bestName := 0, ""
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		caps, ok := r.partPat.Match(e.Name())
		if !ok {
			continue
		}
		if p := caps[template.KeyPart]; p > best {
			best, bestName = p, e.Name()
		}
	}
	return best, bestName, nil
}

// HighestDay returns the largest day captured from the repo's child
// directories, or 0 when no day directory exists yet.
func (r *Resolver) HighestDay(repoDir string) (int, error) {
	entries, err := afero.ReadDir(r.fs, repoDir)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", repoDir, err)
	}
	best := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if caps, ok := r.dayPat.Match(e.Name()); ok {
			if d := caps[template.KeyDay]; d > best {
				best = d
			}
		}
	}
	return best, nil
}

// HighestPart returns the largest part captured from the day directory's
// files, or 0 when none exist.
func (r *Resolver) HighestPart(dayDir string) (int, string, error) {
	return r.highestPart(dayDir)
}

// InputPath renders the input file location for a resolved day.
func (r *Resolver) InputPath(loc Location) (string, error) {
	name, err := template.Render(r.formats.Input, loc.Context)
	if err != nil {
		return "", err
	}
	return filepath.Join(loc.DayDir, name), nil
}
