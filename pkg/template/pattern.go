package template

import (
	"fmt"
	"regexp"
	"strconv"
)

// Pattern is a compiled template usable for matching a single path segment
// and extracting its numeric placeholders as captures. "day-{day}" matches
// "day-7" and captures day=7.
type Pattern struct {
	re   *regexp.Regexp
	keys []string
}

// Compile turns a template into an anchored matching pattern. Only the
// numeric keys (year, day, part) may appear; each at most once. A padded
// placeholder like {day:02} still matches unpadded names, padding is a
// rendering concern only.
func Compile(tmpl string) (*Pattern, error) {
	segs, err := parse(tmpl)
	if err != nil {
		return nil, err
	}

	expr := "^"
	var keys []string
	seen := make(map[string]bool)
	for _, seg := range segs {
		if seg.kind == segLiteral {
			expr += regexp.QuoteMeta(seg.text)
			continue
		}
		switch seg.text {
		case KeyYear, KeyDay, KeyPart:
		case KeyFile:
			return nil, fmt.Errorf("%w: {file} cannot be used as a capture in %q", ErrMalformedTemplate, tmpl)
		default:
			return nil, fmt.Errorf("%w: {%s} in %q", ErrUnresolvedPlaceholder, seg.text, tmpl)
		}
		if seen[seg.text] {
			return nil, fmt.Errorf("%w: duplicate placeholder {%s} in %q", ErrMalformedTemplate, seg.text, tmpl)
		}
		seen[seg.text] = true
		keys = append(keys, seg.text)
		expr += fmt.Sprintf("(?P<%s>\\d+)", seg.text)
	}
	expr += "$"

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedTemplate, tmpl, err)
	}
	return &Pattern{re: re, keys: keys}, nil
}

// Match tests a single path segment against the pattern. On success it
// returns the captured placeholder values keyed by placeholder name.
func (p *Pattern) Match(segment string) (map[string]int, bool) {
	m := p.re.FindStringSubmatch(segment)
	if m == nil {
		return nil, false
	}
	caps := make(map[string]int, len(p.keys))
	for _, key := range p.keys {
		idx := p.re.SubexpIndex(key)
		if idx < 0 {
			continue
		}
		v, err := strconv.Atoi(m[idx])
		if err != nil {
			return nil, false
		}
		caps[key] = v
	}
	return caps, true
}
