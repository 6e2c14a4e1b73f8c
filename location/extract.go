package location

import (
	"regexp"
	"strings"

	"go-mulika/types"
)

// Extracted holds whatever location hints the text gave up. All fields empty
// is a common, valid outcome.
type Extracted struct {
	Text         string
	County       string
	Constituency string
	Ward         string
	Road         string
	Landmark     string
}

// the 47 counties, matched as lowercase literals against normalized text
var counties = []string{
	"nairobi", "mombasa", "kisumu", "nakuru", "kiambu", "kakamega",
	"bungoma", "migori", "kisii", "nyamira", "laikipia", "nyeri",
	"kilifi", "kwale", "lamu", "taita taveta", "garissa", "wajir",
	"mandera", "marsabit", "isiolo", "meru", "tharaka nithi", "embu",
	"kitui", "machakos", "makueni", "nyandarua", "kirinyaga", "muranga",
	"bomet", "kericho", "narok", "kajiado", "turkana", "west pokot",
	"samburu", "trans nzoia", "uasin gishu", "elgeyo marakwet", "nandi",
	"baringo", "vihiga", "busia", "siaya", "homa bay", "tana river",
}

type phrasePattern struct {
	re   *regexp.Regexp
	kind string // road | landmark | county | junction
}

// ordered phrase patterns, applied to the ORIGINAL text so display
// capitalization survives; the first hit wins
var phrasePatterns = []phrasePattern{
	{regexp.MustCompile(`(?i)along\s+([A-Za-z ]+?(?:Road|Way|Avenue|Street|Highway|Bypass))\b`), "road"},
	{regexp.MustCompile(`(?i)near\s+([A-Za-z ]+?(?:Mall|Market|Hospital|School|City|Centre|Stage|Stadium))\b`), "landmark"},
	{regexp.MustCompile(`(?i)in\s+([A-Za-z ]+?County)\b`), "county"},
	{regexp.MustCompile(`(?i)at\s+([A-Za-z ]+?(?:Roundabout|Junction|Interchange))\b`), "junction"},
}

// Extract pulls location hints out of a report. The county scan runs on the
// normalized text; phrase patterns run on the original text. The gazetteer
// only comes into play when no county literal matched.
func Extract(originalText, normalizedText string, gazetteer []types.GazetteerEntry) Extracted {
	var result Extracted

	for _, county := range counties {
		if strings.Contains(normalizedText, county) {
			result.County = titleCase(county)
			break
		}
	}

	if result.County == "" {
		if entry, ok := bestGazetteerHit(normalizedText, gazetteer); ok {
			result.County = titleCase(entry.County)
			result.Constituency = entry.Constituency
			result.Ward = entry.Ward
		}
	}

	for _, p := range phrasePatterns {
		m := p.re.FindStringSubmatch(originalText)
		if m == nil {
			continue
		}
		result.Text = strings.TrimSpace(m[1])
		switch p.kind {
		case "road":
			result.Road = result.Text
		case "landmark":
			result.Landmark = result.Text
		}
		break
	}

	return result
}

// bestGazetteerHit returns the highest-importance active entry whose name (or
// an alternate name) appears in the text.
func bestGazetteerHit(normalizedText string, gazetteer []types.GazetteerEntry) (types.GazetteerEntry, bool) {
	var best types.GazetteerEntry
	found := false

	for _, entry := range gazetteer {
		if !entry.IsActive || entry.County == "" {
			continue
		}
		names := append([]string{entry.Name}, entry.AlternateNames...)
		for _, name := range names {
			if name == "" {
				continue
			}
			if strings.Contains(normalizedText, strings.ToLower(name)) {
				if !found || entry.Importance > best.Importance {
					best = entry
					found = true
				}
				break
			}
		}
	}

	return best, found
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
