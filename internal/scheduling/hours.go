// Package scheduling implements the conflict and availability engine:
// business-hours validation, exclusive-resource conflict detection and
// countable-item stock calculation over a set of confirmed bookings.
package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

// ErrOutsideHours is returned when a room window falls outside the allowed
// daily range. The wrapped message names the configured range.
var ErrOutsideHours = errors.New("scheduling: outside business hours")

const hoursFormat = "15:04"

// BusinessHours restricts room allocations to a daily civil-time range in a
// reference timezone. Both window endpoints must fall inside the range,
// boundaries included. Vehicle allocations are exempt; callers apply the rule
// to room kinds only.
type BusinessHours struct {
	loc      *time.Location
	openMin  int
	closeMin int
	open     string
	close    string
}

// NewBusinessHours builds the validator from a timezone name (IANA) and the
// daily open/close times in "HH:MM" form.
func NewBusinessHours(timezone, open, close string) (*BusinessHours, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduling: unknown timezone %q: %w", timezone, err)
	}

	openMin, err := parseMinutes(open)
	if err != nil {
		return nil, fmt.Errorf("scheduling: invalid open time %q: %w", open, err)
	}
	closeMin, err := parseMinutes(close)
	if err != nil {
		return nil, fmt.Errorf("scheduling: invalid close time %q: %w", close, err)
	}
	if closeMin <= openMin {
		return nil, fmt.Errorf("scheduling: close time %q not after open time %q", close, open)
	}

	return &BusinessHours{
		loc:      loc,
		openMin:  openMin,
		closeMin: closeMin,
		open:     open,
		close:    close,
	}, nil
}

func parseMinutes(s string) (int, error) {
	t, err := time.Parse(hoursFormat, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Validate checks that both endpoints of the window fall within the allowed
// daily range, boundaries inclusive, evaluated in the reference timezone.
func (h *BusinessHours) Validate(w domain.Window) error {
	for _, t := range []time.Time{w.Start, w.End} {
		m := minutesOfDay(t.In(h.loc))
		if m < h.openMin || m > h.closeMin {
			return fmt.Errorf("%w: allowed range is %s-%s (%s)", ErrOutsideHours, h.open, h.close, h.loc)
		}
	}
	return nil
}

// Describe returns the allowed range as "HH:MM-HH:MM".
func (h *BusinessHours) Describe() string {
	return h.open + "-" + h.close
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
