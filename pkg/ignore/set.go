package ignore

import (
	"os"
	"strings"

	"github.com/arthur-debert/sieve/pkg/errors"
)

// Options tunes matching behavior. The zero value gives git's defaults:
// case-sensitive matching with the standard backtrack budget.
type Options struct {
	// CaseInsensitive folds case on both patterns and paths.
	CaseInsensitive bool

	// MaxBacktrack caps matching work per evaluation. Zero means
	// DefaultMaxBacktrack; -1 removes the cap (not recommended).
	MaxBacktrack int
}

// Decision explains the verdict for one path.
type Decision struct {
	// Excluded is the final verdict.
	Excluded bool

	// Matched reports whether any pattern matched at all. When false the
	// verdict is the default: not excluded.
	Matched bool

	// Negated reports whether the deciding pattern was a "!" re-include.
	Negated bool

	// Pattern is the deciding pattern as written, empty when Matched is false.
	Pattern string

	// Line is the deciding pattern's 1-indexed source line.
	Line int

	// Ancestor names the excluded parent directory when the verdict was
	// decided above the path itself. Descendants of an excluded directory
	// stay excluded no matter what negations say.
	Ancestor string
}

// Set is an ordered, immutable sequence of compiled patterns.
type Set struct {
	patterns []Pattern
	opts     Options
}

// Parse compiles ignore-file content into a Set. Content is normalized
// first (BOM, CRLF); blank lines and "#" comments are skipped. The first
// malformed pattern aborts the whole load with a *ParseError.
func Parse(content []byte) (*Set, error) {
	content = normalizeContent(content)
	return ParseLines(strings.Split(string(content), "\n"))
}

// ParseLines compiles a Set from pre-split lines.
func ParseLines(lines []string) (*Set, error) {
	patterns := make([]Pattern, 0, len(lines))
	for i, line := range lines {
		trimmed := trimTrailingSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		p, err := ParsePattern(line, i+1)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, *p)
	}
	return &Set{patterns: patterns}, nil
}

// Load reads an ignore file and parses it.
func Load(path string) (*Set, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "ignore file %s does not exist", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "reading ignore file %s", path)
	}
	set, err := Parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesetLoad, "loading ignore file %s", path)
	}
	return set, nil
}

// Compile concatenates sets in order into a new Set. Later sets' patterns
// evaluate after (and so can override) earlier ones. Options are not
// carried over; apply them with WithOptions.
func Compile(sets ...*Set) *Set {
	var patterns []Pattern
	for _, s := range sets {
		if s == nil {
			continue
		}
		patterns = append(patterns, s.patterns...)
	}
	return &Set{patterns: patterns}
}

// WithOptions returns a copy of the set using the given options.
func (s *Set) WithOptions(opts Options) *Set {
	return &Set{patterns: s.patterns, opts: opts}
}

// Len returns the number of compiled patterns.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.patterns)
}

// Patterns returns a copy of the compiled patterns in evaluation order.
func (s *Set) Patterns() []Pattern {
	if s == nil || len(s.patterns) == 0 {
		return nil
	}
	out := make([]Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Match reports whether the path is excluded. The path should be relative
// to the root the patterns apply to; isDir says whether it names a
// directory.
func (s *Set) Match(path string, isDir bool) bool {
	return s.Evaluate(path, isDir).Excluded
}

// Evaluate returns the verdict for a path along with the pattern that
// decided it.
//
// Every proper ancestor directory is evaluated first: if one is excluded,
// the path is excluded terminally and deeper negations are ignored. Then
// the path itself is evaluated in pattern order, last match winning.
func (s *Set) Evaluate(path string, isDir bool) Decision {
	if s == nil || len(s.patterns) == 0 {
		return Decision{}
	}

	path = NormalizePath(path)
	if path == "" {
		return Decision{}
	}

	segs := splitPath(path)
	bg := newBudget(s.opts.MaxBacktrack)

	for i := 1; i < len(segs); i++ {
		d := s.evaluate(segs[:i], true, bg)
		if d.Excluded {
			d.Ancestor = strings.Join(segs[:i], "/")
			return d
		}
	}

	return s.evaluate(segs, isDir, bg)
}

// evaluate runs the ordered last-match-wins loop for one exact path.
func (s *Set) evaluate(segs []string, isDir bool, bg *budget) Decision {
	var d Decision
	for i := range s.patterns {
		p := &s.patterns[i]
		if p.match(segs, isDir, s.opts.CaseInsensitive, bg) {
			d.Matched = true
			d.Negated = p.negated
			d.Pattern = p.raw
			d.Line = p.line
			d.Excluded = !p.negated
		}
	}
	return d
}
