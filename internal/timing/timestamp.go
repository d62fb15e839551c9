package timing

import (
	"fmt"
	"strconv"
	"time"
)

// Timestamp is an offset from zero, not a time of day. It may exceed 99 hours
// or go negative after a delta is applied.
type Timestamp time.Duration

// ParseTimestamp parses a single HH:MM:SS,mmm value.
func ParseTimestamp(s string) (Timestamp, error) {
	if !isCanonical(s) {
		return 0, fmt.Errorf("invalid timestamp %q: expected HH:MM:SS,mmm", s)
	}
	return parseFields(s[0:2], s[3:5], s[6:8], s[9:12])
}

func isCanonical(s string) bool {
	if len(s) != len("00:00:00,000") {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 2, 5:
			if s[i] != ':' {
				return false
			}
		case 8:
			if s[i] != ',' {
				return false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}

func parseFields(hours, minutes, seconds, millis string) (Timestamp, error) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, err
	}

	return Timestamp(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond), nil
}

func (t Timestamp) Duration() time.Duration {
	return time.Duration(t)
}

func (t Timestamp) Add(d time.Duration) Timestamp {
	return t + Timestamp(d)
}

// Sub returns t-u.
func (t Timestamp) Sub(u Timestamp) time.Duration {
	return time.Duration(t - u)
}

// String formats t as HH:MM:SS,mmm. Sub-millisecond residue is truncated
// toward zero and negative values carry a leading minus sign.
func (t Timestamp) String() string {
	d := time.Duration(t)
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	ms := int64(d / time.Millisecond)
	hours := ms / 3_600_000
	minutes := (ms / 60_000) % 60
	seconds := (ms / 1000) % 60
	millis := ms % 1000

	return fmt.Sprintf("%s%02d:%02d:%02d,%03d", sign, hours, minutes, seconds, millis)
}

// Interval is the start/end pair of one timing line. End before Start is
// carried through unchanged.
type Interval struct {
	Start Timestamp
	End   Timestamp
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i Interval) String() string {
	return i.Start.String() + arrow + i.End.String()
}
