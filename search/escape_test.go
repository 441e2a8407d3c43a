package search

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

const luceneSpecials = `\+-!():^[]"{}~*?|&;/`

func unescape(s string) string {
	var sb strings.Builder
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestEscapeQueryChars(t *testing.T) {
	assert.Equal(t, "", EscapeQueryChars(""))
	assert.Equal(t, "hdfs", EscapeQueryChars("hdfs"))
	assert.Equal(t, `a\:b`, EscapeQueryChars("a:b"))
	assert.Equal(t, `\/user\/hive\ warehouse`, EscapeQueryChars("/user/hive warehouse"))
	assert.Equal(t, `\\\*\?`, EscapeQueryChars(`\*?`))
	assert.Equal(t, "tab\\\tnl\\\n", EscapeQueryChars("tab\tnl\n"))
	assert.Equal(t, "café", EscapeQueryChars("café"))
	for _, r := range luceneSpecials {
		assert.Equal(t, `\`+string(r), EscapeQueryChars(string(r)))
	}
}

func TestEscapeQueryCharsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("escaping round-trips", prop.ForAll(
		func(s string) bool {
			return unescape(EscapeQueryChars(s)) == s
		},
		gen.AnyString(),
	))

	properties.Property("every special or space is preceded by a backslash", prop.ForAll(
		func(s string) bool {
			escaped := []rune(EscapeQueryChars(s))
			for i := 0; i < len(escaped); i++ {
				r := escaped[i]
				if r == '\\' {
					i++ // skip the escaped rune
					continue
				}
				if strings.ContainsRune(luceneSpecials, r) || unicode.IsSpace(r) {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("or-list wraps one clause per value", prop.ForAll(
		func(values []string) bool {
			if len(values) == 0 {
				return utcUtil().OrList("f", nil) == ""
			}
			items := make([]any, len(values))
			for i, v := range values {
				items[i] = v
			}
			expr := utcUtil().OrList("f", items)
			return strings.HasPrefix(expr, "(f:") &&
				strings.HasSuffix(expr, ")") &&
				strings.Count(expr, " OR ") == len(values)-1
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
