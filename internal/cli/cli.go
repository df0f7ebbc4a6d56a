package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/rankwatch/internal/article"
	"github.com/pfrederiksen/rankwatch/internal/calendar"
	"github.com/pfrederiksen/rankwatch/internal/config"
	"github.com/pfrederiksen/rankwatch/internal/httpx"
	"github.com/pfrederiksen/rankwatch/internal/logger"
	"github.com/pfrederiksen/rankwatch/internal/rankings"
	"github.com/pfrederiksen/rankwatch/internal/roster"
	"github.com/pfrederiksen/rankwatch/internal/schedule"
)

// Exit codes for the CLI
const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagTop     int
	flagDays    int
	flagFormat  string
	flagICSOut  string
	flagRoster  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rankwatch",
		Short: "Report the top power-ranked NBA teams and their upcoming games",
		Long: `rankwatch finds the latest power rankings article on NBA.com, extracts the
top-ranked teams, and reports each team's opponents over the coming days,
combining the live scoreboard, the season schedule feed, and ESPN.`,
		RunE: runWatch,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file (default rankwatch.yaml)")
	cmd.Flags().IntVar(&flagTop, "top", config.DefaultTop, "How many top-ranked teams to report")
	cmd.Flags().IntVar(&flagDays, "days", config.DefaultDays, "Length of the schedule window in days, starting today")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json, or ics")
	cmd.Flags().StringVar(&flagICSOut, "ics-out", "", "Write iCalendar output to this file (implies --format ics)")
	cmd.Flags().StringVar(&flagRoster, "roster", "", "YAML file overriding the built-in team roster")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if flagICSOut != "" {
		format = FormatICS
	}
	if format != FormatText && format != FormatJSON && format != FormatICS {
		return errors.Newf("invalid format: %s (must be 'text', 'json', or 'ics')", flagFormat)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("top") {
		cfg.Top = flagTop
	}
	if cmd.Flags().Changed("days") {
		cfg.Days = flagDays
	}
	if cmd.Flags().Changed("roster") {
		cfg.RosterFile = flagRoster
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	reg, err := loadRoster(cfg.RosterFile)
	if err != nil {
		return err
	}

	client := httpx.New(httpx.Config{
		UserAgent:     cfg.UserAgent,
		PageTimeout:   cfg.PageTimeout,
		StaticTimeout: cfg.SeasonTimeout,
	})

	ctx := context.Background()
	report, err := buildReport(ctx, cfg, client, reg)
	if err != nil {
		return err
	}

	if flagICSOut != "" {
		return writeICSFile(report, flagICSOut)
	}
	return WriteOutput(os.Stdout, report, format)
}

// buildReport runs the pipeline: article discovery, rankings extraction,
// schedule aggregation.
func buildReport(ctx context.Context, cfg *config.Config, client *httpx.Client, reg *roster.Registry) (*Report, error) {
	start := time.Now()

	finder := article.New(client, reg)
	art, err := finder.Latest(ctx, cfg.Sources.Listings, cfg.FetchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "finding power rankings article")
	}
	logger.Info("selected power rankings article", logger.Fields{
		"url":       art.URL,
		"published": art.Published.Format(time.RFC3339),
	})

	seq := rankings.Materialize(art.Doc)
	ranked, err := rankings.NewExtractor(reg).Extract(seq, cfg.Top)
	if err != nil {
		return nil, errors.Wrapf(err, "extracting top %d teams from %s", cfg.Top, art.URL)
	}
	teams := make([]string, 0, len(ranked))
	for _, r := range ranked {
		teams = append(teams, r.Team)
		logger.Debug("ranked team", logger.Fields{
			"rank":     r.Rank,
			"team":     r.Team,
			"strategy": r.Strategy.String(),
		})
	}

	agg := schedule.New(client, reg, schedule.Config{
		ScoreboardURL: cfg.Sources.Scoreboard,
		SeasonBaseURL: cfg.Sources.SeasonBase,
		SeasonProbes:  cfg.Sources.SeasonProbes,
		ESPNURL:       cfg.Sources.ESPN,
	})
	opponents, err := agg.Upcoming(ctx, teams, cfg.Days)
	if err != nil {
		return nil, errors.Wrap(err, "aggregating schedules")
	}

	report := &Report{
		GeneratedAt: time.Now().UTC(),
		ArticleURL:  art.URL,
		Days:        cfg.Days,
	}
	for _, r := range ranked {
		report.Teams = append(report.Teams, TeamSchedule{
			Rank:  r.Rank,
			Team:  r.Team,
			Games: opponents[r.Team],
		})
	}

	logger.RecordTiming("cli.report_build", time.Since(start))
	logger.Debug("pipeline metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	return report, nil
}

func loadRoster(path string) (*roster.Registry, error) {
	if path == "" {
		return roster.Default(), nil
	}
	reg, err := roster.LoadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading roster file %s", path)
	}
	logger.Info("loaded roster override", logger.Fields{"path": path, "teams": reg.Len()})
	return reg, nil
}

func writeICSFile(report *Report, path string) error {
	games := flattenGames(report)
	ics := calendar.GenerateICS(games, icsCalendarName)
	if err := os.WriteFile(path, []byte(ics), 0644); err != nil {
		return errors.Wrapf(err, "writing calendar file %s", path)
	}
	fmt.Printf("Wrote %d games to %s\n", len(games), path)
	return nil
}

// Execute runs the CLI
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
