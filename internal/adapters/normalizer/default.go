package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// DefaultNormalizer implements the default text normalization strategy.
// It lowercases the input, replaces every rune outside the comparison
// alphabet (CJK unified ideographs U+4E00..U+9FFF, ASCII letters and digits)
// with a space, collapses whitespace runs and trims the ends. A run of any
// length, a single tab or newline included, becomes one plain space, so ' '
// is the only separator in the output. Replacing disallowed runes before
// collapsing guarantees punctuation never glues two words together.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize reduces text to the comparison alphabet. Empty input yields an
// empty string; there are no error conditions.
func (n *DefaultNormalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(text))
	lastWasSpace := true // also drops leading spaces
	for _, r := range strings.ToLower(text) {
		if allowedRune(r) {
			sb.WriteRune(r)
			lastWasSpace = false
		} else if !lastWasSpace {
			sb.WriteByte(' ')
			lastWasSpace = true
		}
	}
	return strings.TrimSuffix(sb.String(), " ")
}

// allowedRune reports whether r belongs to the comparison alphabet.
// Uppercase ASCII never reaches this check since the input is lowercased first.
func allowedRune(r rune) bool {
	switch {
	case r >= 0x4e00 && r <= 0x9fff:
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return false
}

// DefaultTokenizer splits normalized text into tokens on whitespace.
type DefaultTokenizer struct{}

// NewDefaultTokenizer creates a new whitespace tokenizer.
func NewDefaultTokenizer() ports.Tokenizer {
	return &DefaultTokenizer{}
}

// Tokenize returns the whitespace-delimited tokens of text, discarding empty
// fragments. Tokens are compared by exact string equality downstream; no
// further normalization happens here.
func (t *DefaultTokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Fields(text)
}
