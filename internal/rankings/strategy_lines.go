package rankings

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pfrederiksen/rankwatch/internal/roster"
)

// lineWindow is how many flattened text lines, counting the matching line
// itself, the last-resort scan searches for a team name.
const lineWindow = 3

// fillFromLineWindows implements the last-resort scan over flattened text
// lines: find a line opening with the rank ("#3", "No. 3", "3.") and look
// for a team name within the next few lines.
func fillFromLineWindows(seq *Sequence, reg *roster.Registry, topN int, got map[int]Ranked) {
	teams := reg.Teams()

	for rank := 1; rank <= topN; rank++ {
		if _, ok := got[rank]; ok {
			continue
		}

		pat := lineRankPattern(rank)
		for i, line := range seq.Lines {
			if !pat.MatchString(line) {
				continue
			}

			end := i + lineWindow
			if end > len(seq.Lines) {
				end = len(seq.Lines)
			}
			window := strings.Join(seq.Lines[i:end], " ")

			if team, ok := firstMentioned(window, teams); ok {
				got[rank] = Ranked{Rank: rank, Team: team, Strategy: StrategyLineWindow}
				break
			}
		}
	}
}

// lineRankPattern matches a line that starts with the given rank, with an
// optional "#" or "No." prefix and a separator or end of line after the
// digits.
func lineRankPattern(rank int) *regexp.Regexp {
	return regexp.MustCompile(`^(?:#|No\.\s*)?` + strconv.Itoa(rank) + `(?:[.)\-–—: ]|$)`)
}
