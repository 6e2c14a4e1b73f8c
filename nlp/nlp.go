package nlp

import (
	"log"
	"regexp"
	"strings"

	"go-mulika/types"
)

var (
	// urls, @mentions and #tags are dropped entirely; case-insensitive so an
	// uppercase URL is stripped before lowercasing and keeps Normalize
	// idempotent
	noisePattern = regexp.MustCompile(`(?i)http\S+|@\w+|#\w+`)
	// keep word characters plus Latin Extended (covers Swahili diacritics),
	// everything else becomes a space
	specialPattern = regexp.MustCompile(`[^a-zA-Z0-9_\s\x{00C0}-\x{024F}]`)
)

// Normalize cleans raw source text into the canonical lowercase form used by
// keyword detection. Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	text = noisePattern.ReplaceAllString(text, "")
	text = specialPattern.ReplaceAllString(text, " ")
	text = strings.Join(strings.Fields(text), " ")
	return strings.ToLower(text)
}

// DetectKeywords matches normalized text against the active keyword table and
// returns the matched labels in table order. Duplicate labels are allowed. A
// bad regex in one entry never aborts detection for the rest.
func DetectKeywords(text string, keywords []types.IncidentKeyword) []string {
	matched := []string{}

	for _, kw := range keywords {
		if !kw.IsActive {
			continue
		}
		if kw.IsRegex && kw.RegexPattern != "" {
			re, err := regexp.Compile("(?i)" + kw.RegexPattern)
			if err != nil {
				log.Printf("Warning: bad regex for keyword %q: %v", kw.Keyword, err)
				continue
			}
			if re.MatchString(text) {
				matched = append(matched, kw.Keyword)
			}
		} else if strings.Contains(text, strings.ToLower(kw.Keyword)) {
			matched = append(matched, kw.Keyword)
		}
	}

	return matched
}

// certainty indicators and their weights, applied on top of a 0.5 base
var certaintyIndicators = []struct {
	pattern *regexp.Regexp
	weight  float64
}{
	{regexp.MustCompile(`(?i)\bconfirmed\b|\bverified\b`), 0.3},
	{regexp.MustCompile(`(?i)\breported\b|\bsaid\b`), 0.1},
	{regexp.MustCompile(`(?i)\balleged\b|\bunconfirmed\b`), -0.2},
	{regexp.MustCompile(`(?i)\brumou?r\b|\bheard\b`), -0.3},
	{regexp.MustCompile(`(?i)\bmultiple\s+witnesses\b`), 0.2},
	{regexp.MustCompile(`(?i)\bpolice\s+confirm`), 0.4},
}

// CalculateCertainty derives a 0-1 linguistic-certainty value from hedging
// and confirming language in the text.
func CalculateCertainty(text string) float64 {
	certainty := 0.5

	for _, ind := range certaintyIndicators {
		if ind.pattern.MatchString(text) {
			certainty += ind.weight
		}
	}

	if certainty < 0 {
		return 0
	}
	if certainty > 1 {
		return 1
	}
	return certainty
}
