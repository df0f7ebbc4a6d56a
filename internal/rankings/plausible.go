package rankings

import (
	"regexp"
	"strings"

	"github.com/pfrederiksen/rankwatch/internal/roster"
)

const (
	// minMarkers rank markers, or minTeamMentions distinct rostered names,
	// mark a page as a plausible ranking article.
	minMarkers      = 2
	minTeamMentions = 10
)

// markerPattern matches whitespace-delimited rank markers like "#7".
var markerPattern = regexp.MustCompile(`(?:^|\s)#\d{1,2}(?:\s|$)`)

// Plausible reports whether a materialized page reads like a power rankings
// article rather than an ordinary news story. The article selector uses it
// to reject listing noise before freshness scoring.
func Plausible(seq *Sequence, reg *roster.Registry) bool {
	text := seq.FlatText()

	if len(markerPattern.FindAllStringIndex(text, -1)) >= minMarkers {
		return true
	}

	hits := 0
	for _, team := range reg.Teams() {
		if strings.Contains(text, team) {
			hits++
			if hits >= minTeamMentions {
				return true
			}
		}
	}
	return false
}
