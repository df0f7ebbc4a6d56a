package rankings

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pfrederiksen/rankwatch/internal/roster"
)

// ErrIncomplete marks an extraction that could not fill every rank after the
// full strategy cascade.
var ErrIncomplete = errors.New("incomplete ranking extraction")

// Strategy identifies which extraction strategy resolved a rank.
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyMarker
	StrategyOrdinal
	StrategyLineWindow
)

func (s Strategy) String() string {
	switch s {
	case StrategyMarker:
		return "marker"
	case StrategyOrdinal:
		return "ordinal"
	case StrategyLineWindow:
		return "line-window"
	default:
		return "none"
	}
}

// Ranked is one extracted ranking entry. Rank runs 1..N with no gaps or
// repeats in a completed extraction.
type Ranked struct {
	Rank     int
	Team     string
	Strategy Strategy
}

// fillFunc adds entries for still-missing ranks into got. Implementations
// never overwrite ranks already present.
type fillFunc func(seq *Sequence, reg *roster.Registry, topN int, got map[int]Ranked)

type stage struct {
	id   Strategy
	fill fillFunc
}

// Extractor runs the strategy cascade over materialized articles.
type Extractor struct {
	reg    *roster.Registry
	stages []stage
}

// NewExtractor creates an extractor resolving names against reg.
func NewExtractor(reg *roster.Registry) *Extractor {
	return &Extractor{
		reg: reg,
		stages: []stage{
			{StrategyMarker, fillFromMarkers},
			{StrategyOrdinal, fillFromOrdinals},
			{StrategyLineWindow, fillFromLineWindows},
		},
	}
}

// Extract maps ranks 1..topN to canonical team names. Strategies run in
// fixed order; each fills only the ranks earlier ones left open, and the
// cascade stops as soon as every rank is resolved. Fewer than topN resolved
// ranks after all strategies is an ErrIncomplete.
func (e *Extractor) Extract(seq *Sequence, topN int) ([]Ranked, error) {
	if topN < 1 {
		return nil, errors.Newf("top count must be positive, got %d", topN)
	}

	got := make(map[int]Ranked, topN)
	for _, st := range e.stages {
		st.fill(seq, e.reg, topN, got)
		if complete(got, topN) {
			break
		}
	}

	if !complete(got, topN) {
		return nil, errors.Wrapf(ErrIncomplete, "resolved %d of %d ranks", resolved(got, topN), topN)
	}

	out := make([]Ranked, 0, topN)
	for r := 1; r <= topN; r++ {
		out = append(out, got[r])
	}
	return out, nil
}

func complete(got map[int]Ranked, topN int) bool {
	return resolved(got, topN) == topN
}

func resolved(got map[int]Ranked, topN int) int {
	n := 0
	for r := 1; r <= topN; r++ {
		if _, ok := got[r]; ok {
			n++
		}
	}
	return n
}

// firstMentioned returns the first team, in roster order, whose display name
// appears verbatim in text.
func firstMentioned(text string, teams []string) (string, bool) {
	for _, team := range teams {
		if strings.Contains(text, team) {
			return team, true
		}
	}
	return "", false
}
