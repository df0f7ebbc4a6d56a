package rankings

import (
	"strconv"
	"strings"

	"github.com/pfrederiksen/rankwatch/internal/roster"
)

// markerLookahead bounds how many nodes past a rank marker the team may
// appear. Article layouts put a stats block and some imagery between the
// marker and the team link, but never hundreds of elements.
const markerLookahead = 600

// fillFromMarkers implements the marker-adjacency scan: for each missing
// rank r, find a node whose exact text is "#r" and search the nodes that
// follow it for the team the marker labels. The search window closes early
// when the next rank's marker appears.
func fillFromMarkers(seq *Sequence, reg *roster.Registry, topN int, got map[int]Ranked) {
	teams := reg.Teams()

	for rank := 1; rank <= topN; rank++ {
		if _, ok := got[rank]; ok {
			continue
		}
		if team, ok := teamAfterMarker(seq, reg, teams, rank); ok {
			got[rank] = Ranked{Rank: rank, Team: team, Strategy: StrategyMarker}
		}
	}
}

// teamAfterMarker tries each occurrence of the rank marker in turn and
// returns the team named in the first window that yields one.
func teamAfterMarker(seq *Sequence, reg *roster.Registry, teams []string, rank int) (string, bool) {
	marker := "#" + strconv.Itoa(rank)
	next := "#" + strconv.Itoa(rank+1)

	for i, n := range seq.Nodes {
		if n.Text != marker {
			continue
		}

		end := i + markerLookahead
		if end > len(seq.Nodes) {
			end = len(seq.Nodes)
		}
		window := seq.Nodes[i+1 : end]
		for j, w := range window {
			if w.Text == next {
				window = window[:j]
				break
			}
		}

		if team, ok := teamFromWindow(window, reg, teams); ok {
			return team, true
		}
	}
	return "", false
}

// teamFromWindow prefers the first team-page link whose text is a rostered
// name; failing that, it accepts the first element whose text mentions one.
func teamFromWindow(window []Node, reg *roster.Registry, teams []string) (string, bool) {
	for _, n := range window {
		if n.Kind != KindElement || n.Tag != "a" {
			continue
		}
		if !strings.Contains(n.Href, "/team/") {
			continue
		}
		if reg.IsKnown(n.Text) {
			return reg.Canonicalize(n.Text), true
		}
	}

	for _, n := range window {
		if n.Kind != KindElement || n.Text == "" {
			continue
		}
		if team, ok := firstMentioned(n.Text, teams); ok {
			return team, true
		}
	}

	return "", false
}
