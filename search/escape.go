// search/escape.go
package search

import (
	"strings"
	"unicode"
)

// EscapeQueryChars backslash-escapes every character the Lucene query
// parser treats as syntax, including whitespace.
func EscapeQueryChars(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', '+', '-', '!', '(', ')', ':', '^', '[', ']', '"', '{', '}', '~',
			'*', '?', '|', '&', ';', '/':
			sb.WriteByte('\\')
		default:
			if unicode.IsSpace(r) {
				sb.WriteByte('\\')
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
