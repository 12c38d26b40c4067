package transcript

import (
	"regexp"
	"strings"
)

// Filler tokens removed from utterances. The set is deliberately small:
// discourse words like "like" or "well" carry meaning and stay.
var fillerRe = regexp.MustCompile(`(?i)\b(?:uh-huh|um+|uh+|er+m?|ah+|hm+|mhm|mm)\b[,.!?]?`)

// Bracketed annotations from the ASR provider, e.g. [inaudible],
// [background noise], (coughs). Each collapses to a single {noise} token.
var (
	noiseMarkerRe = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)
	noiseRunRe    = regexp.MustCompile(`\{noise\}(?:\s*\{noise\})+`)
)

var (
	spaceRe      = regexp.MustCompile(`\s+`)
	punctSpaceRe = regexp.MustCompile(`\s+([,.!?;:])`)
)

// cleanText normalizes a single utterance: noise markers to {noise},
// fillers removed, whitespace and punctuation spacing fixed.
// Returns "" when nothing survives.
func cleanText(text string) string {
	s := noiseMarkerRe.ReplaceAllString(text, "{noise}")
	s = fillerRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	s = punctSpaceRe.ReplaceAllString(s, "$1")
	s = noiseRunRe.ReplaceAllString(s, "{noise}")
	s = strings.TrimSpace(s)
	// An utterance that was only fillers can leave dangling punctuation.
	if strings.Trim(s, ",.!?;: ") == "" {
		return ""
	}
	return s
}
