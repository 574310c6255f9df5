package park

import "fmt"

// Unit is one (park, date) pair being checked in a run, with the
// ordered candidate URLs to try for it.
type Unit struct {
	Park Park
	Date DateTarget
	URLs []string
}

// Key returns a stable identity for the unit within a run.
func (u Unit) Key() string {
	return u.Park.ID + "/" + u.Date.ISO
}

// CandidateURLs builds the speculative page addresses for a park and
// date. The target site's routing convention is not reliably known,
// so several variants embed the date under different parameter names.
// Order matters: the monitor tries them first to last.
func CandidateURLs(base string, p Park, d DateTarget) []string {
	return []string{
		fmt.Sprintf("%s/facility/%s", base, p.Slug),
		fmt.Sprintf("%s/dayuse/registration?facility=%s&date=%s", base, p.Slug, d.ISO),
		fmt.Sprintf("%s/dayuse/registration?facility=%s&arrivalDate=%s", base, p.Slug, d.ISO),
		fmt.Sprintf("%s/dayuse/registration?date=%s", base, d.ISO),
		fmt.Sprintf("%s/search?facility=%s&date=%s&partySize=1", base, p.Slug, d.ISO),
		fmt.Sprintf("%s/booking/%s?date=%s", base, p.Slug, d.ISO),
		fmt.Sprintf("%s/facility/%s?date=%s", base, p.Slug, d.ISO),
	}
}

// ExpandUnits enumerates the full check plan: parks in ascending
// priority order, and for each park the window in its given order.
func ExpandUnits(base string, parks []Park, window []DateTarget) []Unit {
	units := make([]Unit, 0, len(parks)*len(window))
	for _, p := range SortByPriority(parks) {
		for _, d := range window {
			units = append(units, Unit{
				Park: p,
				Date: d,
				URLs: CandidateURLs(base, p, d),
			})
		}
	}
	return units
}
