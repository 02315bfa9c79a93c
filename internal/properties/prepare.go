package properties

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEscape is returned for a \u escape not followed by four hex digits.
var ErrInvalidEscape = errors.New("invalid unicode escape")

// prepare rewrites file content into the subset the parser accepts.
//
// Logical lines whose key is empty ("=value", ": value") are dropped, and
// the content always ends with a newline so a trailing backslash reads as a
// continuation. Malformed \u escapes are reported here, before parsing, since
// the parser does not release its lexer when it fails.
func prepare(src string) (string, error) {
	var b strings.Builder
	b.Grow(len(src) + 1)

	cont, drop := false, false
	for n, line := range strings.SplitAfter(src, "\n") {
		body := strings.TrimRight(line, "\r\n")
		if !cont {
			trimmed := strings.TrimLeft(body, " \t\f")
			// Blank and comment lines never continue.
			if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '!' {
				b.WriteString(line)
				continue
			}
			drop = trimmed[0] == '=' || trimmed[0] == ':'
		}
		cont = continues(body)
		if drop {
			continue
		}
		if err := checkEscapes(body); err != nil {
			return "", fmt.Errorf("line %d: %w", n+1, err)
		}
		b.WriteString(line)
	}

	out := b.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// continues reports whether line ends with an odd number of backslashes.
func continues(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func checkEscapes(line string) error {
	for i := 0; i < len(line); i++ {
		if line[i] != '\\' || i+1 >= len(line) {
			continue
		}
		i++
		if line[i] != 'u' {
			continue
		}
		if !isHex4(line[i+1:]) {
			return ErrInvalidEscape
		}
		i += 4
	}
	return nil
}

func isHex4(s string) bool {
	if len(s) < 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
