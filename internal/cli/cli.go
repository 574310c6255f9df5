package cli

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Handoyofan/joffre-monitor/internal/config"
	"github.com/Handoyofan/joffre-monitor/internal/dump"
	"github.com/Handoyofan/joffre-monitor/internal/fetch"
	"github.com/Handoyofan/joffre-monitor/internal/monitor"
	"github.com/Handoyofan/joffre-monitor/internal/notifier"
	"github.com/Handoyofan/joffre-monitor/internal/park"
	"github.com/Handoyofan/joffre-monitor/internal/telegram"
)

var (
	flagConfig        string
	flagDryRun        bool
	flagDumpDir       string
	flagWindow        int
	flagAnnounceStart bool
	flagVerbose       bool
	flagTimeout       time.Duration
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "joffre-monitor",
		Short: "Check BC Parks day-use pass availability and alert via Telegram",
		Long: `A one-shot availability check for BC Parks day-use passes.
Expands the park registry over a rolling date window, probes candidate
reservation URLs for each (park, date) pair, and sends a Telegram alert
the moment a page shows availability indicators. Meant to be invoked
periodically by an external scheduler.`,
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file (optional)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print notifications instead of sending them")
	cmd.Flags().StringVar(&flagDumpDir, "dump-dir", "", "Directory for debug page dumps (disabled when empty)")
	cmd.Flags().IntVar(&flagWindow, "window", 0, "Days to check (default from config, normally 3)")
	cmd.Flags().BoolVar(&flagAnnounceStart, "announce-start", false, "Send a monitor-started message before checking")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Per-request timeout (default from config, normally 15s)")

	return cmd
}

// runCheck is the main command logic. Configuration problems are
// returned (and exit non-zero); once a run has started, all failures
// are handled inside it and the process exits 0.
func runCheck(cmd *cobra.Command, args []string) error {
	log := newLogger(flagVerbose)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		log.Error().Err(err).Msg("configuration error")
		return err
	}

	if flagWindow > 0 {
		cfg.WindowDays = flagWindow
	}
	if flagDumpDir != "" {
		cfg.DumpDir = flagDumpDir
	}
	if flagTimeout > 0 {
		cfg.FetchTimeout = flagTimeout
	}

	note, err := buildNotifier(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("configuration error")
		return err
	}

	var dumper monitor.DumpWriter
	if cfg.DumpDir != "" {
		w, err := dump.New(cfg.DumpDir)
		if err != nil {
			log.Error().Err(err).Msg("configuration error")
			return err
		}
		dumper = w
	}

	loc, err := time.LoadLocation(park.ReferenceTimezone)
	if err != nil {
		loc = time.UTC
	}

	if flagAnnounceStart {
		window := park.Window(time.Now(), cfg.WindowDays)
		if err := note.Notify(telegram.FormatStartup(cfg.Parks, window)); err != nil {
			log.Warn().Err(err).Msg("startup announcement failed")
		}
	}

	m := monitor.New(monitor.Options{
		Fetcher:      fetch.New(cfg.FetchTimeout),
		Notifier:     note,
		Parks:        cfg.Parks,
		BaseURL:      cfg.BaseURL,
		WindowDays:   cfg.WindowDays,
		RequestDelay: cfg.RequestDelay,
		UnitDelay:    cfg.UnitDelay,
		SummaryGate:  monitor.HoursGate(loc, cfg.SummaryHours...),
		ActiveGate:   monitor.HourRangeGate(loc, cfg.ActiveHourFrom, cfg.ActiveHourTo),
		Dump:         dumper,
		Logger:       log,
	})

	result := m.Run(context.Background())

	log.Info().
		Str("run_id", result.RunID).
		Int("units", len(result.Results)).
		Int("available", result.AvailableCount()).
		Msg("run finished")

	return nil
}

// buildNotifier picks the delivery channel. In dry-run mode nothing
// is sent; otherwise the Telegram credential is verified up front so
// a dead bot shows up in the logs, not as silence.
func buildNotifier(cfg *config.Config, log zerolog.Logger) (notifier.Notifier, error) {
	if flagDryRun {
		log.Info().Msg("dry-run mode, notifications will be printed")
		return notifier.NewDryRunNotifier(os.Stdout), nil
	}

	client, err := telegram.NewClient(cfg.BotToken, cfg.ChatID)
	if err != nil {
		return nil, err
	}

	if username, err := client.GetMe(); err != nil {
		log.Warn().Err(err).Msg("telegram connection test failed")
	} else {
		log.Info().Str("bot", username).Msg("telegram bot connected")
	}

	return notifier.NewTelegramNotifier(client), nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
