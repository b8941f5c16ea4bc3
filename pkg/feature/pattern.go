package feature

import (
	"fmt"
	"regexp"
	"strings"
)

// wordClass is the Unicode-aware replacement for \w.
const wordClass = `\p{L}\p{N}_`

// Compile compiles a rule source after widening every \w to Unicode letters,
// digits and underscore. POSIX bracket classes are not supported in sources.
func Compile(source string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(widen(source))
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", source, err)
	}
	return re, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(source string) *regexp.Regexp {
	re, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return re
}

func widen(src string) string {
	var b strings.Builder
	b.Grow(len(src) + 16)

	inClass := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\\' && i+1 < len(src):
			next := src[i+1]
			i++
			if next == 'w' {
				if inClass {
					b.WriteString(wordClass)
				} else {
					b.WriteString("[" + wordClass + "]")
				}
				continue
			}
			b.WriteByte(c)
			b.WriteByte(next)
		case c == '[' && !inClass:
			inClass = true
			b.WriteByte(c)
		case c == ']' && inClass:
			inClass = false
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
