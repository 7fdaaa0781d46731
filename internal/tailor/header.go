package tailor

import (
	"regexp"
	"strings"

	"github.com/jacobdsantos/resume-tailor/internal/types"
)

// maxInferredRoleLen bounds the header label inferred from a JD.
const maxInferredRoleLen = 60

var jdTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)job title:\s*([^\n.,;]+)`),
	regexp.MustCompile(`(?i)we are (?:looking for|hiring|seeking) (?:a|an)\s+([^\n.,;]+)`),
}

// resolveTargetRole resolves the header label: an explicit option wins, then
// a title inferred from the JD text, then the candidate's default label.
func resolveTargetRole(opts types.GenerateOptions, jdText, defaultLabel string) string {
	if opts.TargetRole != "" {
		return opts.TargetRole
	}
	if inferred := inferJDTitle(jdText); inferred != "" {
		return inferred
	}
	return defaultLabel
}

// inferJDTitle extracts a role title from the JD via the fixed patterns,
// title-cased and truncated to 60 characters. Empty when nothing matches.
func inferJDTitle(jdText string) string {
	for _, re := range jdTitlePatterns {
		if m := re.FindStringSubmatch(jdText); m != nil {
			title := titleCase(strings.TrimSpace(m[1]))
			if runes := []rune(title); len(runes) > maxInferredRoleLen {
				title = string(runes[:maxInferredRoleLen])
			}
			if title != "" {
				return title
			}
		}
	}
	return ""
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
