package ignore

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed pattern. The whole set fails to load on
// the first one; matching never produces errors.
type ParseError struct {
	Line    int    // 1-indexed line number in the source
	Pattern string // the offending line, as written
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid pattern %q: %s", e.Line, e.Pattern, e.Reason)
}

// Pattern is a single compiled exclusion rule. Patterns are immutable
// after compilation.
type Pattern struct {
	raw      string
	line     int
	negated  bool
	dirOnly  bool
	anchored bool
	segments []segment
}

// segment is one "/"-delimited part of a pattern.
type segment struct {
	text       string
	wildcard   bool // contains *, ?, [ or \ and needs glob matching
	doubleStar bool // "**", matches zero or more directories
}

// String returns the pattern as written in the source.
func (p *Pattern) String() string { return p.raw }

// Line returns the 1-indexed source line the pattern came from.
func (p *Pattern) Line() int { return p.line }

// Negated reports whether the pattern re-includes matches ("!" prefix).
func (p *Pattern) Negated() bool { return p.negated }

// DirOnly reports whether the pattern matches directories only ("/" suffix).
func (p *Pattern) DirOnly() bool { return p.dirOnly }

// Anchored reports whether the pattern matches from the root only.
func (p *Pattern) Anchored() bool { return p.anchored }

// ParsePattern compiles one pattern line. Blank lines and comments are the
// caller's concern; text here must be a pattern. The line number is kept
// for error reporting and Decision output.
func ParsePattern(text string, line int) (*Pattern, error) {
	raw := text
	text = trimTrailingSpace(text)

	negated := false
	switch {
	case strings.HasPrefix(text, "\\!"):
		text = text[1:] // literal leading bang
	case strings.HasPrefix(text, "!"):
		negated = true
		text = text[1:]
	}
	if strings.HasPrefix(text, "\\#") {
		text = text[1:] // literal leading hash
	}

	dirOnly := false
	if strings.HasSuffix(text, "/") {
		dirOnly = true
		text = strings.TrimSuffix(text, "/")
	}

	if text == "" {
		return nil, &ParseError{Line: line, Pattern: raw, Reason: "pattern is empty after processing"}
	}

	if n := trailingBackslashes(text); n%2 == 1 {
		return nil, &ParseError{Line: line, Pattern: raw, Reason: "trailing backslash"}
	}

	// A pattern is anchored when it starts with "/" or contains "/" anywhere
	// except a leading "**/".
	anchored := false
	if strings.HasPrefix(text, "/") {
		anchored = true
		text = text[1:]
		if text == "" {
			return nil, &ParseError{Line: line, Pattern: raw, Reason: "pattern is empty after removing leading slash"}
		}
	} else if strings.Contains(text, "/") && !strings.HasPrefix(text, "**/") {
		anchored = true
	}

	segments, err := parseSegments(text, line, raw)
	if err != nil {
		return nil, err
	}

	return &Pattern{
		raw:      raw,
		line:     line,
		negated:  negated,
		dirOnly:  dirOnly,
		anchored: anchored,
		segments: segments,
	}, nil
}

// parseSegments splits a pattern on "/" and classifies each part,
// validating glob syntax as it goes.
func parseSegments(text string, line int, raw string) ([]segment, error) {
	parts := strings.Split(text, "/")
	segments := make([]segment, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue // double slashes in the pattern
		}

		seg := segment{text: part}
		if part == "**" {
			seg.doubleStar = true
			seg.text = ""
		} else if strings.ContainsAny(part, "*?[\\") {
			if reason := validateGlob(part); reason != "" {
				return nil, &ParseError{Line: line, Pattern: raw, Reason: reason}
			}
			seg.wildcard = true
		}
		segments = append(segments, seg)
	}

	return segments, nil
}

// validateGlob checks a wildcard segment for syntax errors that must be
// rejected at load time. Returns an empty string when the segment is fine.
func validateGlob(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i == len(s)-1 {
				return "trailing backslash"
			}
			i++ // escaped character, skip it
		case '[':
			end, ok := scanClass(s, i)
			if !ok {
				return "unterminated character class"
			}
			i = end
		}
	}
	return ""
}

// scanClass scans a character class starting at the "[" at s[start] and
// returns the index of the closing "]". A "]" immediately after the
// opening bracket (or after "!"/"^") is a literal member, not a closer.
func scanClass(s string, start int) (end int, ok bool) {
	i := start + 1
	if i < len(s) && (s[i] == '!' || s[i] == '^') {
		i++
	}
	if i < len(s) && s[i] == ']' {
		i++
	}
	for ; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i == len(s)-1 {
				return 0, false
			}
			i++
		case ']':
			return i, true
		}
	}
	return 0, false
}

func trailingBackslashes(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n
}
