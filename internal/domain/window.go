package domain

import "time"

// Window is a half-open time interval [Start, End) during which a resource
// is held. A window is valid only when Start is strictly before End.
type Window struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the window has positive duration.
func (w Window) Valid() bool {
	return w.Start.Before(w.End)
}

// Overlaps reports whether two windows share any instant.
// Touching endpoints do not overlap: a window ending exactly when the other
// begins leaves both resources free.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Duration returns End - Start.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
