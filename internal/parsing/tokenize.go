// Package parsing provides deterministic text normalization primitives for
// keyword extraction and matching: tokenization, stopword removal, bigram
// building, and change-detection hashing.
package parsing

import "strings"

// smartQuoteReplacer strips typographic quotes so "don’t" tokenizes as "dont".
var smartQuoteReplacer = strings.NewReplacer("‘", "", "’", "", "“", "", "”", "")

// Tokenize lowercases text and splits it into tokens. Word characters, '&',
// '-' and '/' are kept so hyphenated compounds ("cross-platform") and
// ampersand terms ("att&ck") survive as single tokens; everything else
// becomes a separator. Leading and trailing hyphens/slashes are trimmed per
// token and empty tokens are dropped.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	lower := smartQuoteReplacer.Replace(strings.ToLower(text))

	var sb strings.Builder
	sb.Grow(len(lower))
	for _, r := range lower {
		if isTokenRune(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}

	fields := strings.Fields(sb.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "-/")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// isTokenRune reports whether r may appear inside a token.
func isTokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '&' || r == '-' || r == '/':
		return true
	}
	return false
}

// Normalize lowercases, trims, and collapses internal whitespace runs to
// single spaces. Used for hashing and substring containment checks.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// ExtractBigrams joins adjacent token pairs with a single space. Returns
// nil for fewer than two tokens.
func ExtractBigrams(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}
	bigrams := make([]string, 0, len(tokens)-1)
	for i := 0; i < len(tokens)-1; i++ {
		bigrams = append(bigrams, tokens[i]+" "+tokens[i+1])
	}
	return bigrams
}
