package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/pfrederiksen/rankwatch/internal/calendar"
	"github.com/pfrederiksen/rankwatch/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

// Supported output formats
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

const icsCalendarName = "NBA Power Rankings Watch"

// Report is the assembled result of one pipeline run.
type Report struct {
	GeneratedAt time.Time
	ArticleURL  string
	Days        int
	Teams       []TeamSchedule
}

// TeamSchedule holds one ranked team and its upcoming games, already sorted
// by date.
type TeamSchedule struct {
	Rank  int
	Team  string
	Games []schedule.Opponent
}

// WriteOutput writes the report to w in the specified format
func WriteOutput(w io.Writer, report *Report, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatICS:
		return writeICS(w, report)
	case FormatText:
		return writeText(w, report)
	default:
		return errors.Newf("unknown output format: %s", format)
	}
}

func writeText(w io.Writer, report *Report) error {
	fmt.Fprintf(w, "Latest NBA.com Power Rankings article:\n  %s\n\n", report.ArticleURL)
	fmt.Fprintf(w, "Top %d teams and opponents in the next %d days:\n\n", len(report.Teams), report.Days)

	for _, ts := range report.Teams {
		fmt.Fprintf(w, "%s:\n", ts.Team)
		if len(ts.Games) == 0 {
			fmt.Fprintf(w, "  (No games in the next %d days)\n", report.Days)
		}
		for _, g := range ts.Games {
			fmt.Fprintf(w, "  %s — %s %s\n", g.Date.Format("2006-01-02"), venueMark(g.Venue), g.Opponent)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// venueMark renders a venue the way box scores abbreviate it: "vs" for home,
// "@" for away.
func venueMark(v schedule.Venue) string {
	if v == schedule.VenueHome {
		return "vs"
	}
	return "@"
}

// jsonReport mirrors Report with stable lowercase keys and dates flattened to
// YYYY-MM-DD strings.
type jsonReport struct {
	GeneratedAt string     `json:"generated_at"`
	ArticleURL  string     `json:"article_url"`
	Days        int        `json:"days"`
	Teams       []jsonTeam `json:"teams"`
}

type jsonTeam struct {
	Rank  int        `json:"rank"`
	Team  string     `json:"team"`
	Games []jsonGame `json:"games"`
}

type jsonGame struct {
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Venue    string `json:"venue"`
}

func writeJSON(w io.Writer, report *Report) error {
	out := jsonReport{
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		ArticleURL:  report.ArticleURL,
		Days:        report.Days,
		Teams:       make([]jsonTeam, 0, len(report.Teams)),
	}
	for _, ts := range report.Teams {
		jt := jsonTeam{
			Rank:  ts.Rank,
			Team:  ts.Team,
			Games: make([]jsonGame, 0, len(ts.Games)),
		}
		for _, g := range ts.Games {
			jt.Games = append(jt.Games, jsonGame{
				Date:     g.Date.Format("2006-01-02"),
				Opponent: g.Opponent,
				Venue:    string(g.Venue),
			})
		}
		out.Teams = append(out.Teams, jt)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func writeICS(w io.Writer, report *Report) error {
	_, err := io.WriteString(w, calendar.GenerateICS(flattenGames(report), icsCalendarName))
	return err
}

// flattenGames collects every team's games in rank order for calendar export.
func flattenGames(report *Report) []calendar.Game {
	var games []calendar.Game
	for _, ts := range report.Teams {
		for _, g := range ts.Games {
			games = append(games, calendar.Game{
				Team:     ts.Team,
				Opponent: g.Opponent,
				Venue:    g.Venue,
				Date:     g.Date,
			})
		}
	}
	return games
}
