package schedule

import (
	"strings"
	"time"
)

// Venue marks which side of a fixture the tracked team plays on.
type Venue string

const (
	VenueHome Venue = "HOME"
	VenueAway Venue = "AWAY"
)

// Source tags for GameRecord, one per feed.
const (
	sourceLive   = "scoreboard"
	sourceSeason = "season"
	sourceESPN   = "espn"
)

// GameRecord is one fixture in the common shape every feed decodes to.
// Date is a calendar date (midnight UTC); Home and Away carry the names
// exactly as the feed sent them, canonicalized later during the merge.
type GameRecord struct {
	Date   time.Time
	Home   string
	Away   string
	Source string
}

// Opponent is one entry in a tracked team's upcoming schedule.
type Opponent struct {
	Date     time.Time
	Opponent string
	Venue    Venue
}

// teamIdent is the {teamCity, teamName} pair the NBA feeds use.
type teamIdent struct {
	TeamCity string `json:"teamCity"`
	TeamName string `json:"teamName"`
}

func (t teamIdent) fullName() string {
	return strings.TrimSpace(strings.TrimSpace(t.TeamCity) + " " + strings.TrimSpace(t.TeamName))
}

// day truncates a time to its calendar date, keyed in UTC so dates compare
// and hash consistently.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
