package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/rankwatch/internal/schedule"
)

func TestGenerateICS(t *testing.T) {
	games := []Game{
		{
			Team:     "Boston Celtics",
			Opponent: "Denver Nuggets",
			Venue:    schedule.VenueHome,
			Date:     time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Team:     "Boston Celtics",
			Opponent: "New York Knicks",
			Venue:    schedule.VenueAway,
			Date:     time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		},
	}

	ics := GenerateICS(games, "NBA Power Rankings Watch")

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//rankwatch//rankwatch//EN",
		"X-WR-CALNAME:NBA Power Rankings Watch",
		"BEGIN:VEVENT",
		"UID:20260115-boston-celtics-denver-nuggets@rankwatch",
		"UID:20260117-boston-celtics-new-york-knicks@rankwatch",
		"DTSTAMP:",
		"DTSTART;VALUE=DATE:20260115",
		"DTEND;VALUE=DATE:20260116",
		"SUMMARY:Boston Celtics vs Denver Nuggets",
		"SUMMARY:Boston Celtics @ New York Knicks",
		"LOCATION:Boston Celtics",
		"LOCATION:New York Knicks",
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("Expected 2 BEGIN:VEVENT, got %d", got)
	}
	if got := strings.Count(ics, "END:VEVENT"); got != 2 {
		t.Errorf("Expected 2 END:VEVENT, got %d", got)
	}

	// Check that lines end with \r\n
	if !strings.Contains(ics, "\r\n") {
		t.Error("ICS should use \\r\\n line endings")
	}
}

func TestGenerateICS_EmptyGames(t *testing.T) {
	if ics := GenerateICS(nil, "Empty"); ics != "" {
		t.Errorf("Empty games should return empty string, got %q", ics)
	}
}

func TestGenerateICS_NoCalendarName(t *testing.T) {
	games := []Game{
		{
			Team:     "Utah Jazz",
			Opponent: "Phoenix Suns",
			Venue:    schedule.VenueHome,
			Date:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	ics := GenerateICS(games, "")

	if !strings.Contains(ics, "BEGIN:VCALENDAR") {
		t.Error("Should generate ICS even without calendar name")
	}
	if strings.Contains(ics, "X-WR-CALNAME:") {
		t.Error("Should not include X-WR-CALNAME when name is empty")
	}
}

func TestGenerateICS_AwayGameLocation(t *testing.T) {
	games := []Game{
		{
			Team:     "Boston Celtics",
			Opponent: "Miami Heat",
			Venue:    schedule.VenueAway,
			Date:     time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC),
		},
	}

	ics := GenerateICS(games, "")

	// Away games happen at the opponent's venue
	if !strings.Contains(ics, "LOCATION:Miami Heat") {
		t.Errorf("Away game location should be the opponent, got:\n%s", ics)
	}
	if !strings.Contains(ics, "DESCRIPTION:Boston Celtics visit the Miami Heat.") {
		t.Error("Away game description should use visit phrasing")
	}
}

func TestSummaryLine(t *testing.T) {
	home := Game{Team: "Boston Celtics", Opponent: "Denver Nuggets", Venue: schedule.VenueHome}
	if got := summaryLine(home); got != "Boston Celtics vs Denver Nuggets" {
		t.Errorf("summaryLine(home) = %q", got)
	}

	away := Game{Team: "Boston Celtics", Opponent: "Denver Nuggets", Venue: schedule.VenueAway}
	if got := summaryLine(away); got != "Boston Celtics @ Denver Nuggets" {
		t.Errorf("summaryLine(away) = %q", got)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Boston Celtics", "boston-celtics"},
		{"Philadelphia 76ers", "philadelphia-76ers"},
		{"  Los  Angeles  Clippers ", "los-angeles-clippers"},
		{"A.B. Team", "a-b-team"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := slug(tt.input); got != tt.expected {
				t.Errorf("slug(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatICSTime(t *testing.T) {
	testTime := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	formatted := formatICSTime(testTime)

	expected := "20260315T143000Z"
	if formatted != expected {
		t.Errorf("formatICSTime() = %q, want %q", formatted, expected)
	}
}

func TestFormatICSDate(t *testing.T) {
	testTime := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if got := formatICSDate(testTime); got != "20260315" {
		t.Errorf("formatICSDate() = %q, want %q", got, "20260315")
	}
}

func TestEscapeICS(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Simple text", "Simple text"},
		{"Text with, comma", "Text with\\, comma"},
		{"Text with; semicolon", "Text with\\; semicolon"},
		{"Text with\\backslash", "Text with\\\\backslash"},
		{"Text with\nnewline", "Text with\\nnewline"},
		{"All, special; chars\\\n", "All\\, special\\; chars\\\\\\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeICS(tt.input)
			if got != tt.expected {
				t.Errorf("escapeICS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
