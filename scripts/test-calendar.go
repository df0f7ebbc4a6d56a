package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/rankwatch/internal/calendar"
	"github.com/pfrederiksen/rankwatch/internal/schedule"
)

func main() {
	// A sample home-and-away pair
	games := []calendar.Game{
		{
			Team:     "Oklahoma City Thunder",
			Opponent: "Denver Nuggets",
			Venue:    schedule.VenueHome,
			Date:     time.Now().AddDate(0, 0, 2),
		},
		{
			Team:     "Oklahoma City Thunder",
			Opponent: "Boston Celtics",
			Venue:    schedule.VenueAway,
			Date:     time.Now().AddDate(0, 0, 4),
		},
	}

	icsContent := calendar.GenerateICS(games, "rankwatch sample")

	// Write to file (owner read/write only)
	filename := "sample-rankwatch.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
