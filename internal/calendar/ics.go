package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/rankwatch/internal/schedule"
)

// Game is one fixture to render as a calendar entry, seen from the tracked
// team's side.
type Game struct {
	Team     string
	Opponent string
	Venue    schedule.Venue
	Date     time.Time
}

// GenerateICS renders games as a single iCalendar document with one VEVENT
// per game. Games carry no tip-off time, so every entry is an all-day event.
// An empty games slice returns an empty string.
func GenerateICS(games []Game, calendarName string) string {
	if len(games) == 0 {
		return ""
	}

	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//rankwatch//rankwatch//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	if calendarName != "" {
		ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(calendarName)))
	}

	// One DTSTAMP for the whole run keeps regenerated calendars diffable.
	stamp := time.Now().UTC()
	for _, g := range games {
		writeEvent(&ics, g, stamp)
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

func writeEvent(ics *strings.Builder, g Game, stamp time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	ics.WriteString(fmt.Sprintf("UID:%s@rankwatch\r\n", eventUID(g)))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(stamp)))

	// All-day event spanning the game date.
	ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", formatICSDate(g.Date)))
	ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", formatICSDate(g.Date.AddDate(0, 0, 1))))

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summaryLine(g))))
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(descriptionLine(g))))

	// Best location available at schedule granularity: the home side.
	ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(homeSide(g))))

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")

	ics.WriteString("END:VEVENT\r\n")
}

func summaryLine(g Game) string {
	if g.Venue == schedule.VenueHome {
		return fmt.Sprintf("%s vs %s", g.Team, g.Opponent)
	}
	return fmt.Sprintf("%s @ %s", g.Team, g.Opponent)
}

func descriptionLine(g Game) string {
	if g.Venue == schedule.VenueHome {
		return fmt.Sprintf("%s host the %s.", g.Team, g.Opponent)
	}
	return fmt.Sprintf("%s visit the %s.", g.Team, g.Opponent)
}

func homeSide(g Game) string {
	if g.Venue == schedule.VenueHome {
		return g.Team
	}
	return g.Opponent
}

// eventUID builds a deterministic identifier so reimporting a regenerated
// calendar updates events instead of duplicating them.
func eventUID(g Game) string {
	return fmt.Sprintf("%s-%s-%s", g.Date.Format("20060102"), slug(g.Team), slug(g.Opponent))
}

// slug lowercases a team name and joins its alphanumeric runs with dashes.
func slug(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	return strings.Join(fields, "-")
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// formatICSDate formats a time.Time as an iCalendar all-day date string
func formatICSDate(t time.Time) string {
	return t.UTC().Format("20060102")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
