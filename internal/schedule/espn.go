package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/pfrederiksen/rankwatch/internal/logger"
)

type espnPayload struct {
	Events []struct {
		Competitions []struct {
			Competitors []struct {
				HomeAway string `json:"homeAway"`
				Team     struct {
					DisplayName string `json:"displayName"`
					Location    string `json:"location"`
					Name        string `json:"name"`
				} `json:"team"`
			} `json:"competitors"`
		} `json:"competitions"`
	} `json:"events"`
}

// espnGames loads the fixtures for one calendar date from the ESPN
// scoreboard. Events missing either side are dropped; a failed fetch
// contributes nothing.
func (a *Aggregator) espnGames(ctx context.Context, date time.Time) []GameRecord {
	url := a.cfg.ESPNURL + "?dates=" + date.Format("20060102")

	var payload espnPayload
	if err := a.client.GetJSON(ctx, url, &payload); err != nil {
		logger.Debug("espn scoreboard unavailable", logger.Fields{
			"url":   url,
			"error": err.Error(),
		})
		return nil
	}

	var records []GameRecord
	for _, ev := range payload.Events {
		if len(ev.Competitions) == 0 {
			continue
		}

		var home, away string
		for _, c := range ev.Competitions[0].Competitors {
			name := c.Team.DisplayName
			if name == "" {
				name = strings.TrimSpace(c.Team.Location + " " + c.Team.Name)
			}

			switch c.HomeAway {
			case "home":
				home = name
			case "away":
				away = name
			}
		}
		if home == "" || away == "" {
			continue
		}

		records = append(records, GameRecord{Date: date, Home: home, Away: away, Source: sourceESPN})
	}
	return records
}
