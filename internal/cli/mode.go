package cli

import (
	"fmt"
	"strings"

	"github.com/mgpai22/srtedit/internal/timing"
	"github.com/spf13/pflag"
)

const (
	flagShift    = "shift"
	flagInterval = "interval"
	flagMinimum  = "minimum"
)

var modeFlags = []string{flagShift, flagInterval, flagMinimum}

func addModeFlags(fs *pflag.FlagSet) {
	fs.Float64P(flagShift, "s", 0,
		"Seconds to move every cue by, start and end (negative moves earlier)")
	fs.Float64P(flagInterval, "i", 0,
		"Seconds to add to the end of every cue (negative shortens)")
	fs.Float64P(flagMinimum, "m", 0,
		"Minimum cue duration in seconds; shorter cues are extended to it")
}

// exactly one of the mode flags must be set
func modeFromFlags(fs *pflag.FlagSet) (timing.Mode, error) {
	var chosen []string
	for _, name := range modeFlags {
		if fs.Changed(name) {
			chosen = append(chosen, name)
		}
	}

	switch len(chosen) {
	case 0:
		return nil, fmt.Errorf("one of --shift, --interval or --minimum is required")
	case 1:
	default:
		return nil, fmt.Errorf(
			"flags --%s are mutually exclusive",
			strings.Join(chosen, ", --"),
		)
	}

	seconds, err := fs.GetFloat64(chosen[0])
	if err != nil {
		return nil, err
	}
	d, err := timing.Seconds(seconds)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", chosen[0], err)
	}

	switch chosen[0] {
	case flagShift:
		return timing.Shift{Delta: d}, nil
	case flagInterval:
		return timing.ExtendEnd{Delta: d}, nil
	default:
		return timing.EnforceMinimum{Minimum: d}, nil
	}
}
