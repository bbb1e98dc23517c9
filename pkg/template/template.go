// Package template renders path and command templates against a resolved
// puzzle context, and compiles the same templates into patterns that extract
// a context back out of directory and file names.
//
// Templates contain named placeholders in braces: {year}, {day}, {part} and
// {file}. Numeric placeholders render as plain decimal unless the template
// carries an explicit zero-padding directive, e.g. {day:02} renders day 7 as
// "07". Substitution happens in a single pass: produced text is never
// re-scanned, so a value containing braces cannot inject new placeholders.
package template

import (
	"fmt"
	"strconv"
	"strings"
)

// Context identifies where the user currently is in the puzzle tree.
// It is resolved once per invocation and never mutated.
type Context struct {
	Year int
	Day  int    // 1-25
	Part int    // 1 or 2
	File string // resolved part filename, available to command templates
}

// Placeholder keys understood by Render and Compile.
const (
	KeyYear = "year"
	KeyDay  = "day"
	KeyPart = "part"
	KeyFile = "file"
)

type segmentKind int

const (
	segLiteral segmentKind = iota
	segPlaceholder
)

// segment is one parsed piece of a template: either literal text or a
// placeholder with an optional zero-padding width.
type segment struct {
	kind  segmentKind
	text  string // literal text, or the placeholder key
	width int    // zero-padding width; 0 means no padding
}

// parse splits a template into literal and placeholder segments. It rejects
// unbalanced braces, empty placeholders and unknown padding directives, but
// does not check placeholder keys; callers decide which keys they accept.
func parse(tmpl string) ([]segment, error) {
	var segs []segment
	var lit strings.Builder

	for i := 0; i < len(tmpl); i++ {
		switch tmpl[i] {
		case '{':
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed '{' at offset %d in %q", ErrMalformedTemplate, i, tmpl)
			}
			body := tmpl[i+1 : i+end]
			if body == "" {
				return nil, fmt.Errorf("%w: empty placeholder at offset %d in %q", ErrMalformedTemplate, i, tmpl)
			}
			if strings.ContainsRune(body, '{') {
				return nil, fmt.Errorf("%w: nested '{' in placeholder %q", ErrMalformedTemplate, body)
			}
			seg, err := parsePlaceholder(body)
			if err != nil {
				return nil, err
			}
			if lit.Len() > 0 {
				segs = append(segs, segment{kind: segLiteral, text: lit.String()})
				lit.Reset()
			}
			segs = append(segs, seg)
			i += end
		case '}':
			return nil, fmt.Errorf("%w: unmatched '}' at offset %d in %q", ErrMalformedTemplate, i, tmpl)
		default:
			lit.WriteByte(tmpl[i])
		}
	}
	if lit.Len() > 0 {
		segs = append(segs, segment{kind: segLiteral, text: lit.String()})
	}
	return segs, nil
}

// parsePlaceholder parses the inside of a {...} pair: a key, optionally
// followed by a ":0N" zero-padding directive.
func parsePlaceholder(body string) (segment, error) {
	key, directive, hasDirective := strings.Cut(body, ":")
	seg := segment{kind: segPlaceholder, text: key}
	if !hasDirective {
		return seg, nil
	}
	if len(directive) < 2 || directive[0] != '0' {
		return segment{}, fmt.Errorf("%w: unsupported directive %q in placeholder {%s}", ErrMalformedTemplate, directive, body)
	}
	width, err := strconv.Atoi(directive)
	if err != nil || width <= 0 {
		return segment{}, fmt.Errorf("%w: unsupported directive %q in placeholder {%s}", ErrMalformedTemplate, directive, body)
	}
	seg.width = width
	return seg, nil
}

// Render substitutes the context into the template. Each placeholder is
// resolved exactly once; an unknown key fails with ErrUnresolvedPlaceholder
// naming the key.
func Render(tmpl string, ctx Context) (string, error) {
	segs, err := parse(tmpl)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, seg := range segs {
		if seg.kind == segLiteral {
			out.WriteString(seg.text)
			continue
		}
		switch seg.text {
		case KeyYear:
			out.WriteString(pad(ctx.Year, seg.width))
		case KeyDay:
			out.WriteString(pad(ctx.Day, seg.width))
		case KeyPart:
			out.WriteString(pad(ctx.Part, seg.width))
		case KeyFile:
			if seg.width != 0 {
				return "", fmt.Errorf("%w: padding directive not valid for {file} in %q", ErrMalformedTemplate, tmpl)
			}
			out.WriteString(ctx.File)
		default:
			return "", fmt.Errorf("%w: {%s} in %q", ErrUnresolvedPlaceholder, seg.text, tmpl)
		}
	}
	return out.String(), nil
}

// pad formats v as decimal, zero-padded to width when width > 0.
func pad(v, width int) string {
	if width > 0 {
		return fmt.Sprintf("%0*d", width, v)
	}
	return strconv.Itoa(v)
}
