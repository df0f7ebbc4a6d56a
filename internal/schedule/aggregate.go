package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/pfrederiksen/rankwatch/internal/httpx"
	"github.com/pfrederiksen/rankwatch/internal/logger"
	"github.com/pfrederiksen/rankwatch/internal/roster"
)

const (
	defaultScoreboardURL = "https://cdn.nba.com/static/json/liveData/scoreboard/todaysScoreboard_00.json"
	defaultSeasonBaseURL = "https://cdn.nba.com/static/json/staticData/"
	defaultESPNURL       = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba/scoreboard"
	defaultSeasonProbes  = 20
)

// Config points the aggregator at its feeds.
type Config struct {
	ScoreboardURL string
	SeasonBaseURL string
	SeasonProbes  int
	ESPNURL       string
}

// Aggregator merges the schedule feeds into per-team opponent lists.
type Aggregator struct {
	client *httpx.Client
	reg    *roster.Registry
	cfg    Config
	now    func() time.Time
}

// New creates an aggregator fetching through client and resolving names
// against reg. Zero Config fields fall back to the production feeds.
func New(client *httpx.Client, reg *roster.Registry, cfg Config) *Aggregator {
	if cfg.ScoreboardURL == "" {
		cfg.ScoreboardURL = defaultScoreboardURL
	}
	if cfg.SeasonBaseURL == "" {
		cfg.SeasonBaseURL = defaultSeasonBaseURL
	}
	if cfg.ESPNURL == "" {
		cfg.ESPNURL = defaultESPNURL
	}
	if cfg.SeasonProbes <= 0 {
		cfg.SeasonProbes = defaultSeasonProbes
	}

	return &Aggregator{
		client: client,
		reg:    reg,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Upcoming returns, for each given team, its games in [today, today+days-1]
// in ascending date order. Today's games come only from the live scoreboard;
// future dates come from the season schedule, with ESPN filling dates the
// season schedule has no games for. A team with no games in the window maps
// to an empty list.
func (a *Aggregator) Upcoming(ctx context.Context, teams []string, days int) (map[string][]Opponent, error) {
	if days < 1 {
		return nil, errors.Newf("window must be at least one day, got %d", days)
	}

	today := day(a.now())
	end := today.AddDate(0, 0, days-1)

	live := a.liveGames(ctx, today)
	season := a.seasonGames(ctx, today)

	// Index future season games by date. Today's season records are
	// discarded here: the live source owns today outright.
	seasonByDate := make(map[time.Time][]GameRecord)
	for _, g := range season {
		if g.Date.After(today) && !g.Date.After(end) {
			seasonByDate[g.Date] = append(seasonByDate[g.Date], g)
		}
	}

	merged := make([]GameRecord, 0, len(live))
	for _, g := range live {
		if g.Date.Equal(today) {
			merged = append(merged, g)
		}
	}
	for d := today.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		games := seasonByDate[d]
		if len(games) == 0 {
			games = a.espnGames(ctx, d)
		}
		merged = append(merged, games...)
	}

	bySource := make(map[string]int, 3)
	for _, g := range merged {
		bySource[g.Source]++
	}
	logger.Debug("merged schedule window", logger.Fields{
		"records":   len(merged),
		"by_source": bySource,
	})

	want := make(map[string]string, len(teams))
	out := make(map[string][]Opponent, len(teams))
	for _, team := range teams {
		want[a.reg.Normalize(team)] = team
		out[team] = []Opponent{}
	}

	for _, g := range merged {
		home := a.resolveName(g.Home)
		away := a.resolveName(g.Away)
		if team, ok := want[a.reg.Normalize(home)]; ok {
			out[team] = append(out[team], Opponent{Date: g.Date, Opponent: away, Venue: VenueHome})
		}
		if team, ok := want[a.reg.Normalize(away)]; ok {
			out[team] = append(out[team], Opponent{Date: g.Date, Opponent: home, Venue: VenueAway})
		}
	}

	for team := range out {
		opps := out[team]
		sort.SliceStable(opps, func(i, j int) bool { return opps[i].Date.Before(opps[j].Date) })
	}

	return out, nil
}

// resolveName canonicalizes a raw feed name, passing unknown names through
// trimmed.
func (a *Aggregator) resolveName(raw string) string {
	name, ok := a.reg.Resolve(raw)
	if !ok {
		logger.IncrCounter("schedule.unresolved_names")
		logger.Debug("unresolved team name", logger.Fields{"name": raw})
	}
	return name
}
