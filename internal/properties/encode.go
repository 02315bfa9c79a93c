package properties

import (
	"fmt"
	"strings"
)

// FormatEntry renders one key=value line, escaping both sides so that
// parsing the line back yields the same key and value.
//
// Keys escape every space; values escape only a leading space. Both escape
// backslash, the separators "=" and ":", the comment markers "#" and "!",
// and control characters.
//
// Example:
//
//	FormatEntry("PATH", `C:\Marumaru`) // `PATH=C\:\\Marumaru` + "\n"
//	FormatEntry("my key", " v")       // "my\\ key=\\ v\n"
func FormatEntry(key, value string) string {
	var b strings.Builder
	escape(&b, key, true)
	b.WriteByte('=')
	escape(&b, value, false)
	b.WriteByte('\n')
	return b.String()
}

func escape(b *strings.Builder, s string, isKey bool) {
	for i, r := range s {
		switch r {
		case ' ':
			if isKey || i == 0 {
				b.WriteByte('\\')
			}
			b.WriteByte(' ')
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '\\', '=', ':', '#', '!':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
				fmt.Fprintf(b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
}
