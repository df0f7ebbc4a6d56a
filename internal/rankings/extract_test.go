package rankings

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/rankwatch/internal/roster"
)

// markerArticle has the layout of a marker-based rankings page: every rank
// gets a "#N" badge followed by a team page link.
const markerArticle = `<html><body><article>
<section><h2><span>#1</span></h2><img src="a.png"/><a href="/team/1610612738/celtics">Boston Celtics</a><p>Still rolling.</p></section>
<section><h2><span>#2</span></h2><a href="/team/1610612743/nuggets">Denver Nuggets</a><p>Deep rotation.</p></section>
<section><h2><span>#3</span></h2><a href="/team/1610612760/thunder">Oklahoma City Thunder</a></section>
<section><h2><span>#4</span></h2><a href="/team/1610612750/timberwolves">Minnesota Timberwolves</a></section>
</article></body></html>`

// headingArticle numbers its entries in plain headings with no rank badges.
const headingArticle = `<html><body><article>
<h3>1. Boston Celtics</h3><p>Held serve at home.</p>
<h3>2. Denver Nuggets</h3><p>Closed out two road wins.</p>
<h3>3. Oklahoma City Thunder</h3><p>Best point differential.</p>
<h3>4. Minnesota Timberwolves</h3><p>Defense travels.</p>
</article></body></html>`

func TestExtract_MarkerStrategy(t *testing.T) {
	reg := roster.Default()
	seq := mustSeq(t, markerArticle)

	got, err := NewExtractor(reg).Extract(seq, 4)
	require.NoError(t, err)
	require.Len(t, got, 4)

	want := []string{"Boston Celtics", "Denver Nuggets", "Oklahoma City Thunder", "Minnesota Timberwolves"}
	for i, r := range got {
		assert.Equal(t, i+1, r.Rank)
		assert.Equal(t, want[i], r.Team)
		assert.Equal(t, StrategyMarker, r.Strategy)
	}
}

func TestExtract_OrdinalStrategy(t *testing.T) {
	reg := roster.Default()
	seq := mustSeq(t, headingArticle)

	// No "#N" markers anywhere, so the marker scan contributes nothing.
	markerOnly := make(map[int]Ranked)
	fillFromMarkers(seq, reg, 4, markerOnly)
	assert.Empty(t, markerOnly)

	got, err := NewExtractor(reg).Extract(seq, 4)
	require.NoError(t, err)
	require.Len(t, got, 4)

	want := []string{"Boston Celtics", "Denver Nuggets", "Oklahoma City Thunder", "Minnesota Timberwolves"}
	for i, r := range got {
		assert.Equal(t, i+1, r.Rank)
		assert.Equal(t, want[i], r.Team)
		assert.Equal(t, StrategyOrdinal, r.Strategy)
	}
}

func TestExtract_ShortCircuits(t *testing.T) {
	reg := roster.Default()
	seq := mustSeq(t, markerArticle)

	ex := NewExtractor(reg)
	calls := make([]int, len(ex.stages))
	for i := range ex.stages {
		i := i
		orig := ex.stages[i].fill
		ex.stages[i].fill = func(seq *Sequence, reg *roster.Registry, topN int, got map[int]Ranked) {
			calls[i]++
			orig(seq, reg, topN, got)
		}
	}

	_, err := ex.Extract(seq, 4)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 0}, calls)
}

func TestExtract_CarriesPartialsForward(t *testing.T) {
	reg := roster.Default()
	// Rank 1 resolves from its marker; rank 2 only exists as a heading;
	// rank 3 only survives in loose text lines.
	seq := mustSeq(t, `<html><body><article>
<section><span>#1</span><a href="/team/1610612738/celtics">Boston Celtics</a></section>
<h3>2. Denver Nuggets</h3>
<p>No. 3
took a leap:
Oklahoma City Thunder</p>
</article></body></html>`)

	got, err := NewExtractor(reg).Extract(seq, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, Ranked{1, "Boston Celtics", StrategyMarker}, got[0])
	assert.Equal(t, Ranked{2, "Denver Nuggets", StrategyOrdinal}, got[1])
	assert.Equal(t, Ranked{3, "Oklahoma City Thunder", StrategyLineWindow}, got[2])
}

func TestExtract_NeverOverwritesEarlierStrategy(t *testing.T) {
	reg := roster.Default()
	// The marker names Boston at rank 1; a later heading claims rank 1
	// for Chicago. The marker assignment must survive.
	seq := mustSeq(t, `<html><body><article>
<section><span>#1</span><a href="/team/1610612738/celtics">Boston Celtics</a></section>
<h3>1. Chicago Bulls</h3>
<h3>2. Denver Nuggets</h3>
</article></body></html>`)

	got, err := NewExtractor(reg).Extract(seq, 2)
	require.NoError(t, err)

	assert.Equal(t, "Boston Celtics", got[0].Team)
	assert.Equal(t, StrategyMarker, got[0].Strategy)
	assert.Equal(t, "Denver Nuggets", got[1].Team)
	assert.Equal(t, StrategyOrdinal, got[1].Strategy)
}

func TestExtract_Incomplete(t *testing.T) {
	reg := roster.Default()
	seq := mustSeq(t, `<html><body><article><h3>1. Boston Celtics</h3></article></body></html>`)

	_, err := NewExtractor(reg).Extract(seq, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncomplete))
	assert.Contains(t, err.Error(), "1 of 3")
}

func TestExtract_InvalidTopCount(t *testing.T) {
	reg := roster.Default()
	seq := mustSeq(t, headingArticle)

	_, err := NewExtractor(reg).Extract(seq, 0)
	assert.Error(t, err)
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "marker", StrategyMarker.String())
	assert.Equal(t, "ordinal", StrategyOrdinal.String())
	assert.Equal(t, "line-window", StrategyLineWindow.String())
	assert.Equal(t, "none", StrategyNone.String())
}

func TestFirstMentioned_RosterOrder(t *testing.T) {
	teams := roster.Default().Teams()

	// Utah Jazz appears first in the text, but Atlanta Hawks comes first
	// in roster order.
	team, ok := firstMentioned("the Utah Jazz beat the Atlanta Hawks", teams)
	require.True(t, ok)
	assert.Equal(t, "Atlanta Hawks", team)

	_, ok = firstMentioned("no teams here", teams)
	assert.False(t, ok)
}
