package reportcard

import (
	"strings"
	"unicode/utf8"
)

// SanitizeName drops invalid UTF-8 and control characters from a typed name
// and trims surrounding whitespace.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		i += size
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if isControlRune(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func isControlRune(r rune) bool {
	if r < 0x20 || r == 0x7F {
		return true
	}
	return r >= 0x80 && r < 0xA0
}
