package ignore

import "strings"

// DefaultMaxBacktrack caps the total matching work for one Evaluate call.
// The budget is shared across every pattern in the set and covers both
// segment-level "**" expansion and character-level glob backtracking, so
// pathological patterns (e.g. *a*a*a*a*b) cannot burn unbounded CPU.
const DefaultMaxBacktrack = 10000

// budget tracks remaining matching work for a single evaluation.
type budget struct {
	used int
	max  int
}

func newBudget(max int) *budget {
	if max == 0 {
		max = DefaultMaxBacktrack
	}
	return &budget{max: max}
}

// tick spends one unit of work; false means the budget is exhausted and
// matching must give up (treating the pattern as non-matching).
func (b *budget) tick() bool {
	b.used++
	if b.max < 0 {
		return true
	}
	return b.used <= b.max
}

// match reports whether the pattern matches the path given as segments.
func (p *Pattern) match(path []string, isDir, fold bool, bg *budget) bool {
	if p.dirOnly && !isDir {
		return false
	}
	if !bg.tick() {
		return false
	}

	if p.anchored {
		return matchSegments(p.segments, path, fold, bg)
	}

	// Floating patterns may match starting at any depth.
	for i := 0; i <= len(path)-len(p.segments); i++ {
		if matchSegments(p.segments, path[i:], fold, bg) {
			return true
		}
		if !bg.tick() {
			return false
		}
	}

	// A leading "**" can collapse to nothing, so "**/foo" must still be
	// tried against a path shorter than the pattern.
	if len(p.segments) > 0 && p.segments[0].doubleStar {
		return matchSegments(p.segments, path, fold, bg)
	}

	return false
}

// matchSegments matches pattern segments against path segments exactly,
// expanding "**" to zero or more directories.
func matchSegments(pat []segment, path []string, fold bool, bg *budget) bool {
	if !bg.tick() {
		return false
	}
	if len(pat) == 0 {
		return len(path) == 0
	}

	if pat[0].doubleStar {
		for i := 0; i <= len(path); i++ {
			if matchSegments(pat[1:], path[i:], fold, bg) {
				return true
			}
			if !bg.tick() {
				return false
			}
		}
		return false
	}

	if len(path) == 0 {
		return false
	}
	if !matchSegment(pat[0], path[0], fold, bg) {
		return false
	}
	return matchSegments(pat[1:], path[1:], fold, bg)
}

func matchSegment(seg segment, name string, fold bool, bg *budget) bool {
	text := seg.text
	if fold {
		text = strings.ToLower(text)
		name = strings.ToLower(name)
	}
	if !seg.wildcard {
		return text == name
	}
	return matchGlob(text, name, bg)
}

// matchGlob matches a single-segment glob against a name. Supports "*"
// (any run of characters), "?" (exactly one), "[...]" classes and "\"
// escapes. Class syntax was validated at load time.
func matchGlob(p, s string, bg *budget) bool {
	// Fast paths for the overwhelmingly common shapes.
	if p == "*" {
		return true
	}
	if !strings.ContainsAny(p, "?[\\") {
		if n := strings.Count(p, "*"); n == 0 {
			return p == s
		} else if n == 1 {
			if strings.HasSuffix(p, "*") {
				return strings.HasPrefix(s, p[:len(p)-1])
			}
			if strings.HasPrefix(p, "*") {
				return strings.HasSuffix(s, p[1:])
			}
		}
	}
	return matchGlobRecursive(p, s, bg)
}

func matchGlobRecursive(p, s string, bg *budget) bool {
	for len(p) > 0 {
		if !bg.tick() {
			return false
		}

		if p[0] == '*' {
			for len(p) > 0 && p[0] == '*' {
				p = p[1:]
			}
			if len(p) == 0 {
				return true
			}
			for i := 0; i <= len(s); i++ {
				if matchGlobRecursive(p, s[i:], bg) {
					return true
				}
				if !bg.tick() {
					return false
				}
			}
			return false
		}

		if p[0] == '?' {
			if len(s) == 0 {
				return false
			}
			p, s = p[1:], s[1:]
			continue
		}

		if p[0] == '[' {
			end, ok := scanClass(p, 0)
			if !ok || len(s) == 0 {
				return false
			}
			if !classMatch(p[1:end], s[0]) {
				return false
			}
			p, s = p[end+1:], s[1:]
			continue
		}

		if p[0] == '\\' && len(p) > 1 {
			p = p[1:] // escaped literal
		}

		if len(s) == 0 || p[0] != s[0] {
			return false
		}
		p, s = p[1:], s[1:]
	}
	return len(s) == 0
}

// classMatch matches one byte against a character-class body (the text
// between "[" and "]"). Leading "!" or "^" negates; "a-z" ranges and "\"
// escapes are honored.
func classMatch(body string, c byte) bool {
	negate := false
	if len(body) > 0 && (body[0] == '!' || body[0] == '^') {
		negate = true
		body = body[1:]
	}

	matched := false
	for i := 0; i < len(body); i++ {
		lo := body[i]
		if lo == '\\' && i+1 < len(body) {
			i++
			lo = body[i]
		}
		if i+2 < len(body) && body[i+1] == '-' {
			j := i + 2
			hi := body[j]
			if hi == '\\' && j+1 < len(body) {
				j++
				hi = body[j]
			}
			i = j
			if lo <= c && c <= hi {
				matched = true
			}
			continue
		}
		if c == lo {
			matched = true
		}
	}
	return matched != negate
}
