package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/rankwatch/internal/logger"
)

// seasonHorizonDays is how far past today a record still counts toward a
// candidate file's coverage score.
const seasonHorizonDays = 30

type leaguePayload struct {
	LeagueSchedule struct {
		GameDates []struct {
			GameDate string `json:"gameDate"`
			Games    []struct {
				HomeTeam teamIdent `json:"homeTeam"`
				AwayTeam teamIdent `json:"awayTeam"`
			} `json:"games"`
		} `json:"gameDates"`
	} `json:"leagueSchedule"`
}

// gameDateLayouts covers both forms the season feed has shipped: a bare ISO
// date, and a US-style date with a time-of-day suffix.
var gameDateLayouts = []string{"2006-01-02", "01/02/2006"}

// seasonGames probes the season schedule candidates in order and returns the
// games of the one whose records best cover [today, today+30]. Strictly
// greater coverage replaces the incumbent, so the first-probed candidate wins
// ties. An unusable candidate contributes nothing.
func (a *Aggregator) seasonGames(ctx context.Context, today time.Time) []GameRecord {
	horizon := today.AddDate(0, 0, seasonHorizonDays)

	var best []GameRecord
	bestCoverage := -1
	for _, url := range a.seasonCandidates() {
		var payload leaguePayload
		if err := a.client.GetStaticJSON(ctx, url, &payload); err != nil {
			logger.Debug("season schedule candidate unavailable", logger.Fields{
				"url":   url,
				"error": err.Error(),
			})
			continue
		}

		games := parseLeagueSchedule(payload)
		if len(games) == 0 {
			continue
		}

		coverage := 0
		for _, g := range games {
			if !g.Date.Before(today) && !g.Date.After(horizon) {
				coverage++
			}
		}
		if coverage > bestCoverage {
			bestCoverage = coverage
			best = games
			logger.Debug("season schedule candidate selected", logger.Fields{
				"url":      url,
				"games":    len(games),
				"coverage": coverage,
			})
		}
	}

	if len(best) == 0 {
		logger.Warn("no usable season schedule candidate", logger.Fields{
			"probed": len(a.seasonCandidates()),
		})
	}
	return best
}

// seasonCandidates lists the schedule URLs in probe order: the unnumbered
// file first, then the numbered mirrors.
func (a *Aggregator) seasonCandidates() []string {
	base := a.cfg.SeasonBaseURL
	urls := make([]string, 0, a.cfg.SeasonProbes+1)
	urls = append(urls, base+"scheduleLeagueV2.json")
	for i := 1; i <= a.cfg.SeasonProbes; i++ {
		urls = append(urls, fmt.Sprintf("%sscheduleLeagueV2_%d.json", base, i))
	}
	return urls
}

func parseLeagueSchedule(payload leaguePayload) []GameRecord {
	var records []GameRecord
	for _, gd := range payload.LeagueSchedule.GameDates {
		date, ok := parseGameDate(gd.GameDate)
		if !ok {
			continue
		}
		for _, g := range gd.Games {
			records = append(records, GameRecord{
				Date:   date,
				Home:   g.HomeTeam.fullName(),
				Away:   g.AwayTeam.fullName(),
				Source: sourceSeason,
			})
		}
	}
	return records
}

// parseGameDate reads the date portion of a gameDate value, ignoring any
// time-of-day suffix.
func parseGameDate(raw string) (time.Time, bool) {
	datePart, _, _ := strings.Cut(strings.TrimSpace(raw), " ")
	for _, layout := range gameDateLayouts {
		if t, err := time.Parse(layout, datePart); err == nil {
			return day(t), true
		}
	}
	return time.Time{}, false
}
