package rankings

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pfrederiksen/rankwatch/internal/roster"
)

// blockTags are the elements whose flattened text the ordinal scan reads.
var blockTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"p": true, "li": true, "strong": true, "div": true, "span": true,
}

// ordinalPattern matches "3. Boston Celtics", "12) Memphis Grizzlies (2-1)",
// "1 - Denver Nuggets - still rolling" and similar leading-ordinal forms,
// capturing the rank and the name fragment before any trailing aside.
var ordinalPattern = regexp.MustCompile(`^\s*(\d{1,2})\s*[.)\-–—:]\s+(.+?)\s*(?:[–—-]\s+.*|\(.*|$)`)

// fillFromOrdinals implements the ordinal-prefix block scan. Ranks outside
// 1..30 are discarded; the first occurrence of a rank wins.
func fillFromOrdinals(seq *Sequence, reg *roster.Registry, topN int, got map[int]Ranked) {
	for _, n := range seq.Nodes {
		if n.Kind != KindElement || !blockTags[n.Tag] {
			continue
		}

		m := ordinalPattern.FindStringSubmatch(n.Text)
		if m == nil {
			continue
		}

		rank, err := strconv.Atoi(m[1])
		if err != nil || rank < 1 || rank > 30 {
			continue
		}
		if _, ok := got[rank]; ok {
			continue
		}

		name := strings.TrimSpace(m[2])
		// A team-page link inside the block names the team more reliably
		// than the regex capture.
		if strings.Contains(n.LinkHref, "/team/") && n.LinkText != "" {
			name = n.LinkText
		}
		if !reg.IsKnown(name) {
			continue
		}

		got[rank] = Ranked{Rank: rank, Team: reg.Canonicalize(name), Strategy: StrategyOrdinal}
	}
}
