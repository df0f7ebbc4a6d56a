package schedule

import (
	"context"
	"time"

	"github.com/pfrederiksen/rankwatch/internal/logger"
)

type scoreboardPayload struct {
	Scoreboard struct {
		Games []struct {
			HomeTeam teamIdent `json:"homeTeam"`
			AwayTeam teamIdent `json:"awayTeam"`
		} `json:"games"`
	} `json:"scoreboard"`
}

// liveGames loads today's games from the live scoreboard. Every record is
// stamped with today regardless of what the feed says; a failed fetch
// contributes nothing.
func (a *Aggregator) liveGames(ctx context.Context, today time.Time) []GameRecord {
	var payload scoreboardPayload
	if err := a.client.GetJSON(ctx, a.cfg.ScoreboardURL, &payload); err != nil {
		logger.Warn("live scoreboard unavailable", logger.Fields{
			"url":   a.cfg.ScoreboardURL,
			"error": err.Error(),
		})
		return nil
	}

	records := make([]GameRecord, 0, len(payload.Scoreboard.Games))
	for _, g := range payload.Scoreboard.Games {
		records = append(records, GameRecord{
			Date:   today,
			Home:   g.HomeTeam.fullName(),
			Away:   g.AwayTeam.fullName(),
			Source: sourceLive,
		})
	}

	logger.Debug("loaded live scoreboard", logger.Fields{"games": len(records)})
	return records
}
