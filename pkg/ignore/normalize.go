package ignore

import (
	"bytes"
	"runtime"
	"strings"
)

// NormalizePath canonicalizes a candidate path for matching:
// separators become "/", consecutive slashes collapse, leading "./"
// prefixes and any trailing slash are stripped.
//
// Backslash conversion only happens on Windows; on Unix a backslash is a
// legal filename character.
func NormalizePath(p string) string {
	if runtime.GOOS == "windows" {
		p = strings.ReplaceAll(p, "\\", "/")
	}

	if strings.Contains(p, "//") {
		var b strings.Builder
		b.Grow(len(p))
		prevSlash := false
		for i := 0; i < len(p); i++ {
			if p[i] == '/' {
				if !prevSlash {
					b.WriteByte('/')
				}
				prevSlash = true
			} else {
				b.WriteByte(p[i])
				prevSlash = false
			}
		}
		p = b.String()
	}

	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}

	return strings.TrimSuffix(p, "/")
}

// normalizeContent prepares ignore-file content for line parsing:
// UTF-8 BOMs are stripped and CRLF / lone CR line endings become LF.
func normalizeContent(content []byte) []byte {
	for len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	content = bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))
	return content
}

// trimTrailingSpace drops trailing spaces and tabs from a pattern line.
// A space quoted with a backslash survives: "foo\ " keeps its space while
// "foo " loses it.
func trimTrailingSpace(line string) string {
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	if end == len(line) {
		return line
	}

	// An odd run of backslashes before the whitespace escapes the first space.
	bs := 0
	for i := end - 1; i >= 0 && line[i] == '\\'; i-- {
		bs++
	}
	if bs%2 == 1 && line[end] == ' ' {
		return line[:end-1] + " "
	}
	return line[:end]
}

// splitPath splits a normalized path on "/", dropping empty parts.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
