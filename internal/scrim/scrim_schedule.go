package scrim

import (
	"fmt"
	"slices"
	"time"
	_ "time/tzdata" // zone database for minimal container images
)

// DefaultPeriodLayout renders days as "dd/mm".
const DefaultPeriodLayout = "02/01"

// Window is the rolling range of days teams can sign up for, starting today
// in the configured time zone.
type Window struct {
	loc    *time.Location
	days   int
	layout string
	now    func() time.Time
}

// NewWindow builds a window of days starting today in the named zone.
func NewWindow(timezone string, days int, layout string) (*Window, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	if days <= 0 {
		return nil, fmt.Errorf("window days must be positive, got %d", days)
	}
	if layout == "" {
		layout = DefaultPeriodLayout
	}
	return &Window{loc: loc, days: days, layout: layout, now: time.Now}, nil
}

// Days returns the number of days covered.
func (w *Window) Days() int { return w.days }

// Periods lists every day of the window, today first.
func (w *Window) Periods() []string {
	today := w.now().In(w.loc)
	out := make([]string, 0, w.days)
	for i := 0; i < w.days; i++ {
		out = append(out, today.AddDate(0, 0, i).Format(w.layout))
	}
	return out
}

// PeriodAt returns the period offset days from today.
func (w *Window) PeriodAt(offset int) (string, error) {
	if offset < 0 || offset >= w.days {
		return "", fmt.Errorf("%w: day offset must be between 0 and %d", ErrInvalidInput, w.days-1)
	}
	return w.now().In(w.loc).AddDate(0, 0, offset).Format(w.layout), nil
}

// Contains reports whether period falls inside the current window.
func (w *Window) Contains(period string) bool {
	return slices.Contains(w.Periods(), period)
}
