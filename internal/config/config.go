// Package config loads and validates runtime configuration for rankwatch.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults applied when neither the config file nor the environment provides
// a value.
const (
	DefaultTop          = 5
	DefaultDays         = 7
	DefaultFetchLimit   = 12
	DefaultSeasonProbes = 20
	DefaultLogLevel     = "info"

	DefaultPageTimeout   = 20 * time.Second
	DefaultSeasonTimeout = 30 * time.Second

	// NBA.com serves different markup to non-browser agents, so fetches
	// carry a browser user agent.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/127.0.0.0 Safari/537.36"
)

// Default upstream endpoints. The season base is a directory; versioned
// schedule variants (scheduleLeagueV2.json, _1.._20) are derived from it in
// the schedule package.
const (
	DefaultScoreboardURL = "https://cdn.nba.com/static/json/liveData/scoreboard/todaysScoreboard_00.json"
	DefaultSeasonBaseURL = "https://cdn.nba.com/static/json/staticData/"
	DefaultESPNURL       = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba/scoreboard"
)

// Config is the runtime configuration for a rankwatch run. Load builds and
// validates it once; nothing mutates it afterwards.
type Config struct {
	Top        int    `mapstructure:"top" validate:"min=1,max=30"`
	Days       int    `mapstructure:"days" validate:"min=1"`
	FetchLimit int    `mapstructure:"fetch_limit" validate:"min=1"`
	LogLevel   string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	RosterFile string `mapstructure:"roster_file"`

	UserAgent     string        `mapstructure:"user_agent" validate:"required"`
	PageTimeout   time.Duration `mapstructure:"page_timeout" validate:"gt=0"`
	SeasonTimeout time.Duration `mapstructure:"season_timeout" validate:"gt=0"`

	Sources Sources `mapstructure:"sources"`
}

// Sources holds the upstream endpoints the pipeline reads from.
type Sources struct {
	Listings     []string `mapstructure:"listings" validate:"min=1,dive,url"`
	Scoreboard   string   `mapstructure:"scoreboard" validate:"url"`
	SeasonBase   string   `mapstructure:"season_base" validate:"url"`
	SeasonProbes int      `mapstructure:"season_probes" validate:"min=0,max=50"`
	ESPN         string   `mapstructure:"espn" validate:"url"`
}

// Load reads configuration from cfgFile when given, otherwise from
// rankwatch.yaml in the working directory or ~/.config/rankwatch. Environment
// variables prefixed RANKWATCH_ override file values (RANKWATCH_TOP,
// RANKWATCH_SOURCES_ESPN, ...). A missing config file is fine unless the path
// was explicit.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("rankwatch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "rankwatch"))
		}
	}

	v.SetEnvPrefix("RANKWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct constraints. Callers overriding fields after
// Load (flag values, for instance) run it again.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("top", DefaultTop)
	v.SetDefault("days", DefaultDays)
	v.SetDefault("fetch_limit", DefaultFetchLimit)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("page_timeout", DefaultPageTimeout)
	v.SetDefault("season_timeout", DefaultSeasonTimeout)
	v.SetDefault("sources.listings", []string{
		"https://www.nba.com/news/category/power-rankings",
		"https://www.nba.com/news/power-rankings",
	})
	v.SetDefault("sources.scoreboard", DefaultScoreboardURL)
	v.SetDefault("sources.season_base", DefaultSeasonBaseURL)
	v.SetDefault("sources.season_probes", DefaultSeasonProbes)
	v.SetDefault("sources.espn", DefaultESPNURL)
}
