package match

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// nameSuffixes are tokens commonly appended to deserializer names. Longer
// ones come first so "deserializer" wins over "serializer".
var nameSuffixes = []string{"deserializer", "serializer", "schema", "params"}

// NormalizeIdent folds an identifier for fuzzy matching: CamelCase, kebab
// and snake spellings of the same words normalize to one lowercase string
// without separators.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// NormalizeIdentWithSuffixStrip normalizes and drops one trailing
// deserializer-style suffix, unless nothing would be left.
func NormalizeIdentWithSuffixStrip(s string) string {
	normalized := NormalizeIdent(s)

	for _, suffix := range nameSuffixes {
		if strings.HasSuffix(normalized, suffix) {
			if len(normalized) == len(suffix) {
				return normalized
			}

			return strings.TrimSuffix(normalized, suffix)
		}
	}

	return normalized
}

// TokenizeIdent splits an identifier into lowercase words.
func TokenizeIdent(s string) []string {
	snake := strcase.ToSnake(s)
	if snake == "" {
		return nil
	}

	var tokens []string

	for _, t := range strings.Split(snake, "_") {
		if t != "" {
			tokens = append(tokens, t)
		}
	}

	return tokens
}
