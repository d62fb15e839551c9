package timing

import (
	"fmt"
	"math"
	"time"
)

// Mode is one of Shift, ExtendEnd or EnforceMinimum. The set is closed.
type Mode interface {
	// Apply returns the adjusted interval.
	Apply(iv Interval) Interval
	Name() string
	Amount() time.Duration
	mode()
}

// Shift moves both timestamps by Delta.
type Shift struct {
	Delta time.Duration
}

// ExtendEnd moves only the end timestamp by Delta.
type ExtendEnd struct {
	Delta time.Duration
}

// EnforceMinimum raises the end timestamp so the interval lasts at least
// Minimum. Intervals already that long are untouched.
type EnforceMinimum struct {
	Minimum time.Duration
}

func (s Shift) Apply(iv Interval) Interval {
	return Interval{Start: iv.Start.Add(s.Delta), End: iv.End.Add(s.Delta)}
}

func (e ExtendEnd) Apply(iv Interval) Interval {
	return Interval{Start: iv.Start, End: iv.End.Add(e.Delta)}
}

func (e EnforceMinimum) Apply(iv Interval) Interval {
	if iv.Duration() < e.Minimum {
		return Interval{Start: iv.Start, End: iv.Start.Add(e.Minimum)}
	}
	return iv
}

func (Shift) Name() string          { return "shift" }
func (ExtendEnd) Name() string      { return "extend-end" }
func (EnforceMinimum) Name() string { return "enforce-minimum" }

func (s Shift) Amount() time.Duration          { return s.Delta }
func (e ExtendEnd) Amount() time.Duration      { return e.Delta }
func (e EnforceMinimum) Amount() time.Duration { return e.Minimum }

func (Shift) mode()          {}
func (ExtendEnd) mode()      {}
func (EnforceMinimum) mode() {}

// Seconds converts a signed, fractional number of seconds to a duration at
// microsecond resolution.
func Seconds(s float64) (time.Duration, error) {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, fmt.Errorf("invalid duration %v", s)
	}
	us := math.Round(s * 1e6)
	if math.Abs(us) > float64(math.MaxInt64/int64(time.Microsecond)) {
		return 0, fmt.Errorf("duration %v seconds out of range", s)
	}
	return time.Duration(us) * time.Microsecond, nil
}
