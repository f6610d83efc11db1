package stylist

import (
	"regexp"
	"strings"
)

var (
	newlineRe = regexp.MustCompile(`[\r\n]+`)
	bracketRe = regexp.MustCompile(`[<>{}\[\]]`)

	// Known instruction-override phrases removed as substrings. An enumerable
	// denylist, not a classifier; defense in depth on top of the structural
	// stripping above.
	injectionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)ignore.*previous.*instructions?`),
		regexp.MustCompile(`(?i)system.*prompt`),
		regexp.MustCompile(`(?i)you.*are.*now`),
	}
)

// Sanitize normalizes untrusted free text before it is embedded in a prompt or
// URL. Newlines collapse to spaces, bracket characters and known injection
// phrases are stripped, and the result is truncated to maxLength runes and
// trimmed. Never fails; hostile input just comes back smaller.
func Sanitize(input string, maxLength int) string {
	s := newlineRe.ReplaceAllString(input, " ")
	s = bracketRe.ReplaceAllString(s, "")
	for _, re := range injectionRes {
		s = re.ReplaceAllString(s, "")
	}
	if runes := []rune(s); maxLength >= 0 && len(runes) > maxLength {
		s = string(runes[:maxLength])
	}
	return strings.TrimSpace(s)
}
