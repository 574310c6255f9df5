// Package dump persists fetched pages to local debug files for
// offline inspection. It is a side-channel: failures are logged by
// callers and never affect classification.
package dump

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Handoyofan/joffre-monitor/internal/park"
)

// Writer persists page snapshots into a local directory.
type Writer struct {
	dir string
}

// New creates a Writer rooted at dir, creating it if needed. A "~/"
// prefix is expanded to the home directory.
func New(dir string) (*Writer, error) {
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating dump directory: %w", err)
	}

	return &Writer{dir: dir}, nil
}

// WritePage saves one fetched page as an HTML file plus a plain-text
// extraction, both tagged with run/park/date/candidate identifiers
// and a timestamp. candidateIdx is the 1-based position of the URL
// within the unit's candidate list.
func (w *Writer) WritePage(runID string, u park.Unit, candidateIdx int, sourceURL, html string, now time.Time) error {
	prefix := fmt.Sprintf("debug_%s_%s_%d_%s_%d_%s",
		u.Park.ID,
		strings.ReplaceAll(u.Date.Label, " ", "_"),
		candidateIdx,
		u.Date.Date.Format("20060102"),
		now.Unix(),
		shortRunID(runID))

	header := fmt.Sprintf("Run: %s\nPark: %s\nDay Label: %s\nTarget Date: %s %s\nSource URL: %s\nGenerated: %s\n",
		runID, u.Park.Name, u.Date.Label, u.Date.ISO, u.Date.Weekday, sourceURL, now.Format(time.RFC3339))

	htmlPath := filepath.Join(w.dir, prefix+".html")
	htmlBody := fmt.Sprintf("<!--\n%s-->\n\n%s", header, html)
	if err := os.WriteFile(htmlPath, []byte(htmlBody), 0644); err != nil {
		return fmt.Errorf("writing html dump: %w", err)
	}

	text := extractText(html)
	textPath := filepath.Join(w.dir, prefix+".txt")
	textBody := header + strings.Repeat("=", 80) + "\n\n" + text
	if err := os.WriteFile(textPath, []byte(textBody), 0644); err != nil {
		return fmt.Errorf("writing text dump: %w", err)
	}

	return nil
}

// shortRunID keeps filenames readable: the first uuid group is
// plenty to correlate a dump with the run's logs.
func shortRunID(runID string) string {
	if i := strings.IndexByte(runID, '-'); i > 0 {
		return runID[:i]
	}
	return runID
}

// extractText pulls the visible text out of the page; unparseable
// HTML degrades to an empty extraction.
func extractText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return doc.Text()
}
