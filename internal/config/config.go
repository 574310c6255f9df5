// Package config assembles the monitor configuration from the
// process environment and an optional YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Handoyofan/joffre-monitor/internal/park"
)

// Defaults for everything the YAML file may override.
const (
	DefaultBaseURL        = "https://reserve.bcparks.ca"
	DefaultWindowDays     = 3
	DefaultRequestDelay   = 1 * time.Second
	DefaultUnitDelay      = 2 * time.Second
	DefaultFetchTimeout   = 15 * time.Second
	DefaultActiveHourFrom = 6
	DefaultActiveHourTo   = 23
)

// DefaultSummaryHours are the hours-of-day (Pacific) at which the
// no-availability summary may be sent.
var DefaultSummaryHours = []int{7, 12, 19}

// Config is the fully resolved monitor configuration.
type Config struct {
	BotToken string
	ChatID   string

	BaseURL        string
	WindowDays     int
	RequestDelay   time.Duration
	UnitDelay      time.Duration
	FetchTimeout   time.Duration
	SummaryHours   []int
	ActiveHourFrom int
	ActiveHourTo   int
	DumpDir        string
	Parks          []park.Park
}

// fileConfig is the YAML schema. Delays are whole seconds.
type fileConfig struct {
	BaseURL             string      `yaml:"base_url"`
	WindowDays          int         `yaml:"window_days"`
	RequestDelaySeconds int         `yaml:"request_delay_seconds"`
	UnitDelaySeconds    int         `yaml:"unit_delay_seconds"`
	FetchTimeoutSeconds int         `yaml:"fetch_timeout_seconds"`
	SummaryHours        []int       `yaml:"summary_hours"`
	ActiveHourFrom      *int        `yaml:"active_hour_from"`
	ActiveHourTo        *int        `yaml:"active_hour_to"`
	DumpDir             string      `yaml:"dump_dir"`
	Parks               []park.Park `yaml:"parks"`
}

// Load builds the configuration: defaults, then the YAML file at
// path (if path is non-empty), then the environment for the secrets.
// A .env file in the working directory is honored when present.
// Missing Telegram credentials are a startup-fatal error, raised
// before any network activity.
func Load(path string) (*Config, error) {
	// Best-effort; the env vars may come from the real environment.
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:        DefaultBaseURL,
		WindowDays:     DefaultWindowDays,
		RequestDelay:   DefaultRequestDelay,
		UnitDelay:      DefaultUnitDelay,
		FetchTimeout:   DefaultFetchTimeout,
		SummaryHours:   DefaultSummaryHours,
		ActiveHourFrom: DefaultActiveHourFrom,
		ActiveHourTo:   DefaultActiveHourTo,
		Parks:          park.DefaultRegistry(),
	}

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.ChatID = os.Getenv("TELEGRAM_CHAT_ID")
	if cfg.BotToken == "" || cfg.ChatID == "" {
		return nil, fmt.Errorf("missing Telegram credentials: TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required")
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.WindowDays > 0 {
		c.WindowDays = fc.WindowDays
	}
	if fc.RequestDelaySeconds > 0 {
		c.RequestDelay = time.Duration(fc.RequestDelaySeconds) * time.Second
	}
	if fc.UnitDelaySeconds > 0 {
		c.UnitDelay = time.Duration(fc.UnitDelaySeconds) * time.Second
	}
	if fc.FetchTimeoutSeconds > 0 {
		c.FetchTimeout = time.Duration(fc.FetchTimeoutSeconds) * time.Second
	}
	if len(fc.SummaryHours) > 0 {
		c.SummaryHours = fc.SummaryHours
	}
	if fc.ActiveHourFrom != nil {
		c.ActiveHourFrom = *fc.ActiveHourFrom
	}
	if fc.ActiveHourTo != nil {
		c.ActiveHourTo = *fc.ActiveHourTo
	}
	if fc.DumpDir != "" {
		c.DumpDir = fc.DumpDir
	}
	if len(fc.Parks) > 0 {
		c.Parks = park.SortByPriority(fc.Parks)
	}

	return nil
}
