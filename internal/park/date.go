package park

import "time"

// ReferenceTimezone is the timezone the date window is computed in.
// BC Parks releases day-use passes on Pacific time.
const ReferenceTimezone = "America/Vancouver"

// DateTarget is one calendar date in the check window, with the
// derived string forms used for URL construction and display.
type DateTarget struct {
	Date    time.Time
	Label   string // "today", "tomorrow", "day after tomorrow"
	ISO     string // 2026-08-29
	Display string // August 29, 2026
	Short   string // 08/29/2026
	Weekday string // Saturday
}

// NewDateTarget derives all string forms for a date.
func NewDateTarget(date time.Time, label string) DateTarget {
	return DateTarget{
		Date:    date,
		Label:   label,
		ISO:     date.Format("2006-01-02"),
		Display: date.Format("January 2, 2006"),
		Short:   date.Format("01/02/2006"),
		Weekday: date.Format("Monday"),
	}
}

// windowLabels maps day offsets to semantic labels.
var windowLabels = []string{"today", "tomorrow", "day after tomorrow"}

// Window expands "now" into a window of consecutive date targets in
// the reference timezone: today first, then tomorrow, and so on.
// days is clamped to at least 1.
func Window(now time.Time, days int) []DateTarget {
	if days < 1 {
		days = 1
	}
	loc, err := time.LoadLocation(ReferenceTimezone)
	if err != nil {
		loc = time.UTC
	}
	local := now.In(loc)

	targets := make([]DateTarget, 0, days)
	for i := 0; i < days; i++ {
		label := ""
		if i < len(windowLabels) {
			label = windowLabels[i]
		} else {
			label = local.AddDate(0, 0, i).Format("Monday")
		}
		targets = append(targets, NewDateTarget(local.AddDate(0, 0, i), label))
	}
	return targets
}
