package classify

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Handoyofan/joffre-monitor/internal/park"
)

// Verdict is the outcome of classifying one page for one park.
type Verdict int

const (
	// NotThisPark means the page does not mention the target park at
	// all; no other signal on it is trustworthy.
	NotThisPark Verdict = iota
	// Unclear means no signal either way.
	Unclear
	// Unavailable means unavailability phrases matched; they win even
	// when availability signals are present on the same page.
	Unavailable
	// Available means availability phrases or booking controls were
	// found and no unavailability phrase contradicts them.
	Available
)

func (v Verdict) String() string {
	switch v {
	case Available:
		return "available"
	case Unavailable:
		return "unavailable"
	case Unclear:
		return "unclear"
	default:
		return "not-this-park"
	}
}

// Evidence records what produced a verdict.
type Evidence struct {
	AvailabilityPhrases   []string
	UnavailabilityPhrases []string
	BookingControls       bool
	DateMentioned         bool
}

// Result pairs a verdict with its evidence.
type Result struct {
	Verdict  Verdict
	Evidence Evidence
}

// availabilityPhrases are weak markers that passes can be booked.
var availabilityPhrases = []string{
	"available", "book now", "reserve now", "select date",
	"choose date", "select time", "purchase", "add to cart",
	"book online", "reservation available", "make reservation",
	"day use pass", "day pass available", "passes available",
	"book this date", "available for booking", "reserve this date",
}

// unavailabilityPhrases are weak markers that passes are gone.
var unavailabilityPhrases = []string{
	"sold out", "fully booked", "no availability", "unavailable",
	"no passes available", "booking closed", "not available",
	"waitlist only", "no day use passes", "passes sold out",
	"date unavailable", "not accepting reservations", "fully reserved",
}

// bookingActionWords mark buttons and links that carry booking intent.
var bookingActionWords = []string{"book", "reserve", "purchase", "select", "available"}

// dateControlWords mark form controls that take a visit date.
var dateControlWords = []string{"date", "arrival", "visit"}

// Classify decides availability for one park on one parsed page. The
// date target is optional; when present it only contributes the
// DateMentioned evidence bit and never changes the verdict, since
// pages frequently omit the literal date string while still
// describing the correct slot.
func Classify(doc *goquery.Document, keywords []string, date *park.DateTarget) Result {
	pageText := strings.ToLower(doc.Text())
	return classifyText(pageText, doc, keywords, date)
}

// ClassifyReader parses HTML from r and classifies it. Malformed
// input degrades to an empty page, which yields NotThisPark; this
// function never fails.
func ClassifyReader(r io.Reader, keywords []string, date *park.DateTarget) Result {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Result{Verdict: NotThisPark}
	}
	return Classify(doc, keywords, date)
}

func classifyText(pageText string, doc *goquery.Document, keywords []string, date *park.DateTarget) Result {
	// Relevance gate: a page that never mentions the park is not
	// about the park.
	if !mentionsPark(pageText, keywords) {
		return Result{Verdict: NotThisPark}
	}

	ev := Evidence{
		AvailabilityPhrases:   matchPhrases(pageText, availabilityPhrases),
		UnavailabilityPhrases: matchPhrases(pageText, unavailabilityPhrases),
	}
	if doc != nil {
		ev.BookingControls = hasBookingControls(doc)
	}
	if date != nil {
		ev.DateMentioned = mentionsDate(pageText, *date)
	}

	hasAvail := len(ev.AvailabilityPhrases) > 0 || ev.BookingControls
	hasUnavail := len(ev.UnavailabilityPhrases) > 0

	switch {
	case hasAvail && !hasUnavail:
		return Result{Verdict: Available, Evidence: ev}
	case hasUnavail:
		// Any unavailability phrase vetoes a positive, even when
		// availability signals are also present.
		return Result{Verdict: Unavailable, Evidence: ev}
	default:
		return Result{Verdict: Unclear, Evidence: ev}
	}
}

func mentionsPark(pageText string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(pageText, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func matchPhrases(pageText string, phrases []string) []string {
	var matched []string
	for _, phrase := range phrases {
		if strings.Contains(pageText, phrase) {
			matched = append(matched, phrase)
		}
	}
	return matched
}

// hasBookingControls scans the document for interactive elements with
// booking intent: buttons or links whose visible text contains a
// booking-action word, and input or select controls whose name
// attribute contains a date-related word. Presence counts as a
// positive signal; absence is not evidence of unavailability.
func hasBookingControls(doc *goquery.Document) bool {
	found := false

	doc.Find("button, a").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		if text == "" {
			return true
		}
		for _, word := range bookingActionWords {
			if strings.Contains(text, word) {
				found = true
				return false
			}
		}
		return true
	})
	if found {
		return true
	}

	doc.Find("input, select").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		name, ok := sel.Attr("name")
		if !ok {
			return true
		}
		name = strings.ToLower(name)
		for _, word := range dateControlWords {
			if strings.Contains(name, word) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// mentionsDate reports whether any textual rendering of the target
// date appears in the page text. Informational only, never a gate.
func mentionsDate(pageText string, d park.DateTarget) bool {
	// ISO, long month-day, abbreviated month-day, day-month, numeric
	// month/day, and the bare day number.
	forms := []string{
		d.ISO,
		strings.ToLower(d.Date.Format("January 2")),
		strings.ToLower(d.Date.Format("Jan 2")),
		strings.ToLower(d.Date.Format("2 January")),
		d.Date.Format("01/02"),
		strconv.Itoa(d.Date.Day()),
	}
	for _, form := range forms {
		if strings.Contains(pageText, form) {
			return true
		}
	}
	return false
}
