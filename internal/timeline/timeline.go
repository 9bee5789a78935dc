// Package timeline holds the pure computations behind the case-detail view:
// the next-hearing label, the alternating timeline entries, and the rail
// measurement that spans the rendered markers. None of it touches storage or
// HTTP, so it is unit-testable on its own.
package timeline

import (
	"sort"
	"time"
)

// Hearing is the subset of a hearing record the timeline needs.
type Hearing struct {
	Date     time.Time
	NextDate *time.Time
	Venue    string
	Notes    string
	Outcome  string
}

// Side of the rail an entry is rendered on.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Entry is one timeline item. Entries run newest-first and alternate sides,
// ending with a Start entry marking when the case was opened.
type Entry struct {
	Side    Side      `json:"side"`
	Start   bool      `json:"start,omitempty"`
	Time    time.Time `json:"time"`
	Venue   string    `json:"venue,omitempty"`
	Notes   string    `json:"notes,omitempty"`
	Outcome string    `json:"outcome,omitempty"`
}

// NextHearing returns the upcoming hearing instant: the earliest recorded
// adjournment (NextDate) when any hearing has one, otherwise the earliest
// Date strictly after now. Nil when neither exists. An adjournment wins even
// if a future Date would be earlier.
func NextHearing(hearings []Hearing, now time.Time) *time.Time {
	var fromNext *time.Time
	for i := range hearings {
		nd := hearings[i].NextDate
		if nd == nil {
			continue
		}
		if fromNext == nil || nd.Before(*fromNext) {
			t := *nd
			fromNext = &t
		}
	}
	if fromNext != nil {
		return fromNext
	}

	var fromFuture *time.Time
	for i := range hearings {
		d := hearings[i].Date
		if !d.After(now) {
			continue
		}
		if fromFuture == nil || d.Before(*fromFuture) {
			t := d
			fromFuture = &t
		}
	}
	return fromFuture
}

// Build lays out the timeline: hearings newest-first, alternating left/right
// starting on the left, closed by a "case started" entry whose side continues
// the alternation.
func Build(startedAt time.Time, hearings []Hearing) []Entry {
	sorted := make([]Hearing, len(hearings))
	copy(sorted, hearings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	entries := make([]Entry, 0, len(sorted)+1)
	for i, h := range sorted {
		entries = append(entries, Entry{
			Side:    sideFor(i),
			Time:    h.Date,
			Venue:   h.Venue,
			Notes:   h.Notes,
			Outcome: h.Outcome,
		})
	}

	entries = append(entries, Entry{
		Side:  sideFor(len(sorted)),
		Start: true,
		Time:  startedAt,
	})
	return entries
}

func sideFor(i int) Side {
	if i%2 == 0 {
		return SideLeft
	}
	return SideRight
}

// Rail is the vertical connector line: it starts at the first marker midpoint
// and runs exactly to the last one.
type Rail struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// MeasureRail maps rendered marker midpoints to the rail span. Order of the
// input does not matter; no markers yields a zero rail.
func MeasureRail(midpoints []float64) Rail {
	if len(midpoints) == 0 {
		return Rail{}
	}
	mids := make([]float64, len(midpoints))
	copy(mids, midpoints)
	sort.Float64s(mids)

	height := mids[len(mids)-1] - mids[0]
	if height < 0 {
		height = 0
	}
	return Rail{Top: mids[0], Height: height}
}
