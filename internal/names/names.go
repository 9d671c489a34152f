// Package names provides human-readable formatting of node-kind names for
// CLI and MCP output.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Spaced splits a PascalCase kind name into space-separated words and
// title-cases the result using golang.org/x/text/cases, so acronym-ish
// runs of kind names still read naturally.
//
// Example: "FragmentSpread" -> "Fragment Spread"
// Example: "NonNullType" -> "Non Null Type"
func Spaced(kind string) string {
	if kind == "" {
		return ""
	}

	var words []string
	var current strings.Builder
	runes := []rune(kind)
	for i, r := range runes {
		if unicode.IsUpper(r) && current.Len() > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				words = append(words, current.String())
				current.Reset()
			}
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return titleCaser.String(strings.Join(words, " "))
}
