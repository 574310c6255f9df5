package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Handoyofan/joffre-monitor/internal/classify"
	"github.com/Handoyofan/joffre-monitor/internal/fetch"
	"github.com/Handoyofan/joffre-monitor/internal/notifier"
	"github.com/Handoyofan/joffre-monitor/internal/park"
	"github.com/Handoyofan/joffre-monitor/internal/telegram"
)

// PageFetcher abstracts the HTTP side so tests can run offline.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Page, error)
}

// DumpWriter persists fetched pages as debug artifacts, tagged with
// the run they came from.
type DumpWriter interface {
	WritePage(runID string, u park.Unit, candidateIdx int, sourceURL, html string, now time.Time) error
}

// UnitResult is one unit's outcome within a run.
type UnitResult struct {
	Unit      park.Unit
	Available bool
	Evidence  classify.Evidence
	SourceURL string // the candidate URL that produced the positive
}

// RunResult aggregates one run. It lives only long enough to build
// the end-of-run summary; nothing survives process exit.
type RunResult struct {
	RunID   string
	Results []UnitResult
}

// AvailableCount returns how many units had availability.
func (r *RunResult) AvailableCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Available {
			n++
		}
	}
	return n
}

// Options configures a Monitor. Zero-value delays mean no pacing,
// which tests rely on.
type Options struct {
	Fetcher      PageFetcher
	Notifier     notifier.Notifier
	Parks        []park.Park
	BaseURL      string
	WindowDays   int
	RequestDelay time.Duration // between consecutive candidate URLs
	UnitDelay    time.Duration // between consecutive units
	SummaryGate  HourGate
	ActiveGate   HourGate
	Dump         DumpWriter // optional
	Logger       zerolog.Logger
	Now          func() time.Time
}

// Monitor drives one full availability check.
type Monitor struct {
	opts Options
}

// New creates a Monitor, applying defaults for the window size,
// gates, and clock.
func New(opts Options) *Monitor {
	if opts.WindowDays <= 0 {
		opts.WindowDays = 3
	}
	if opts.SummaryGate == nil {
		opts.SummaryGate = Always
	}
	if opts.ActiveGate == nil {
		opts.ActiveGate = Always
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Monitor{opts: opts}
}

// Run executes one full check and returns the aggregated result.
// Failures are contained per-URL and per-unit; an unexpected panic is
// caught here, logged, reported once through the active-hours gate,
// and the run still returns cleanly with whatever it gathered.
func (m *Monitor) Run(ctx context.Context) (result *RunResult) {
	runID := uuid.NewString()
	log := m.opts.Logger.With().Str("run_id", runID).Logger()

	result = &RunResult{RunID: runID}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("availability check failed: %v", r)
			log.Error().Err(err).Msg("unexpected failure during run")
			now := m.opts.Now()
			if m.opts.ActiveGate(now) {
				m.notify(log, telegram.FormatError(err, now))
			}
		}
	}()

	window := park.Window(m.opts.Now(), m.opts.WindowDays)
	units := park.ExpandUnits(m.opts.BaseURL, m.opts.Parks, window)

	log.Info().
		Int("parks", len(m.opts.Parks)).
		Int("window_days", len(window)).
		Int("units", len(units)).
		Msg("starting availability check")

	for i, u := range units {
		if i > 0 && m.opts.UnitDelay > 0 {
			time.Sleep(m.opts.UnitDelay)
		}
		result.Results = append(result.Results, m.checkUnit(ctx, log, runID, u))
	}

	m.sendSummary(log, result)

	log.Info().
		Int("available", result.AvailableCount()).
		Int("units", len(result.Results)).
		Msg("availability check completed")

	return result
}

// checkUnit tries the unit's candidate URLs in order and stops at the
// first one that classifies as available. A fetch failure abandons
// that URL only; when every candidate fails the unit is simply not
// available, never an error.
func (m *Monitor) checkUnit(ctx context.Context, log zerolog.Logger, runID string, u park.Unit) UnitResult {
	ulog := log.With().
		Str("park", u.Park.ID).
		Str("date", u.Date.ISO).
		Str("label", u.Date.Label).
		Logger()

	ulog.Info().Msg("checking unit")

	for i, url := range u.URLs {
		if i > 0 && m.opts.RequestDelay > 0 {
			time.Sleep(m.opts.RequestDelay)
		}

		ulog.Debug().Str("url", url).Msgf("fetching candidate [%d/%d]", i+1, len(u.URLs))

		page, err := m.opts.Fetcher.Fetch(ctx, url)
		if err != nil {
			ulog.Warn().Err(err).Str("url", url).Msg("candidate fetch failed")
			continue
		}

		if m.opts.Dump != nil {
			if err := m.opts.Dump.WritePage(runID, u, i+1, url, page.Body, m.opts.Now()); err != nil {
				ulog.Warn().Err(err).Msg("debug dump failed")
			}
		}

		res := classify.ClassifyReader(strings.NewReader(page.Body), u.Park.Keywords, &u.Date)
		ulog.Debug().
			Stringer("verdict", res.Verdict).
			Strs("availability_phrases", res.Evidence.AvailabilityPhrases).
			Strs("unavailability_phrases", res.Evidence.UnavailabilityPhrases).
			Bool("booking_controls", res.Evidence.BookingControls).
			Bool("date_mentioned", res.Evidence.DateMentioned).
			Msg("classified page")

		if res.Verdict == classify.Available {
			ulog.Info().Str("url", url).Msg("availability detected")
			m.notify(ulog, telegram.FormatAlert(u.Park, u.Date, url, res.Evidence, m.opts.Now()))
			return UnitResult{Unit: u, Available: true, Evidence: res.Evidence, SourceURL: url}
		}
	}

	ulog.Info().Msg("no availability for unit")
	return UnitResult{Unit: u}
}

// sendSummary emits the end-of-run summary. Suppressed entirely when
// any unit was available (the alerts already informed the operator),
// otherwise gated to the configured summary hours.
func (m *Monitor) sendSummary(log zerolog.Logger, result *RunResult) {
	if result.AvailableCount() > 0 {
		log.Debug().Msg("summary suppressed, alerts already sent")
		return
	}

	now := m.opts.Now()
	if !m.opts.SummaryGate(now) {
		log.Debug().Msg("summary suppressed by hour gate")
		return
	}

	entries := make([]telegram.SummaryEntry, 0, len(result.Results))
	for _, res := range result.Results {
		entries = append(entries, telegram.SummaryEntry{
			Park:      res.Unit.Park,
			Date:      res.Unit.Date,
			Available: res.Available,
		})
	}
	m.notify(log, telegram.FormatSummary(entries, now))
}

// notify delivers a message best-effort; failures are logged and
// swallowed so they can never abort the run.
func (m *Monitor) notify(log zerolog.Logger, message string) {
	if m.opts.Notifier == nil {
		return
	}
	if err := m.opts.Notifier.Notify(message); err != nil {
		log.Error().Err(err).Msg("notification delivery failed")
	}
}
