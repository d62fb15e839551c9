package timing

import (
	"testing"
	"time"
)

func allModes(d time.Duration) []Mode {
	return []Mode{
		Shift{Delta: d},
		ExtendEnd{Delta: d},
		EnforceMinimum{Minimum: d},
	}
}

func TestMatcher(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		line  string
		ok    bool
		start string
		end   string
	}{
		{"00:00:01,000 --> 00:00:04,000", true, "00:00:01,000", "00:00:04,000"},
		{"00:00:01,000 --> 00:00:04,000 X1:40 X2:600 Y1:20 Y2:50", true, "00:00:01,000", "00:00:04,000"},
		{"cue 00:00:01,000 --> 00:00:04,000", true, "00:00:01,000", "00:00:04,000"},
		{"", false, "", ""},
		{"1", false, "", ""},
		{"Hello, world!", false, "", ""},
		{"00:00:01.000 --> 00:00:04.000", false, "", ""},
		{"00:00:01,000-->00:00:04,000", false, "", ""},
		{"0:00:01,000 --> 00:00:04,000", false, "", ""},
		{"00:00:01,00 --> 00:00:04,000", false, "", ""},
		{"00:00:01,000  --> 00:00:04,000", false, "", ""},
		{"٠٠:00:01,000 --> 00:00:04,000", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			iv, ok := m.Match(tt.line)
			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			if iv.Start.String() != tt.start || iv.End.String() != tt.end {
				t.Errorf("Match(%q) = %s, want %s --> %s", tt.line, iv, tt.start, tt.end)
			}
		})
	}
}

func TestModeApply(t *testing.T) {
	const line = "00:00:01,000 --> 00:00:02,000"

	tests := []struct {
		name string
		mode Mode
		want string
	}{
		{"shift forward", Shift{Delta: 1500 * time.Millisecond}, "00:00:02,500 --> 00:00:03,500"},
		{"shift backward below zero", Shift{Delta: -1500 * time.Millisecond}, "-00:00:00,500 --> 00:00:00,500"},
		{"shift across minute", Shift{Delta: 59 * time.Second}, "00:01:00,000 --> 00:01:01,000"},
		{"extend end", ExtendEnd{Delta: 2 * time.Second}, "00:00:01,000 --> 00:00:04,000"},
		{"extend end negative past start", ExtendEnd{Delta: -3 * time.Second}, "00:00:01,000 --> -00:00:01,000"},
		{"minimum expands short cue", EnforceMinimum{Minimum: 3 * time.Second}, "00:00:01,000 --> 00:00:04,000"},
		{"minimum keeps equal cue", EnforceMinimum{Minimum: time.Second}, "00:00:01,000 --> 00:00:02,000"},
		{"minimum keeps longer cue", EnforceMinimum{Minimum: 500 * time.Millisecond}, "00:00:01,000 --> 00:00:02,000"},
		{"minimum sub-millisecond truncated", EnforceMinimum{Minimum: 2500500 * time.Microsecond}, "00:00:01,000 --> 00:00:03,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform([]string{line}, tt.mode)
			if len(got) != 1 {
				t.Fatalf("expected 1 line, got %d", len(got))
			}
			if got[0] != tt.want {
				t.Errorf("got %q, want %q", got[0], tt.want)
			}
		})
	}
}

func TestModeProperties(t *testing.T) {
	m := NewMatcher()
	lines := []string{
		"00:00:00,000 --> 00:00:00,000",
		"00:00:01,000 --> 00:00:02,000",
		"00:00:05,000 --> 00:00:03,000",
		"01:59:59,999 --> 02:00:00,001",
		"99:59:59,999 --> 99:59:59,999",
	}
	deltas := []time.Duration{
		0,
		time.Millisecond,
		-time.Millisecond,
		1500 * time.Millisecond,
		-90 * time.Minute,
		25 * time.Hour,
	}

	for _, line := range lines {
		iv, ok := m.Match(line)
		if !ok {
			t.Fatalf("fixture %q did not match", line)
		}
		for _, d := range deltas {
			shifted := Shift{Delta: d}.Apply(iv)
			if shifted.Start != iv.Start.Add(d) || shifted.End != iv.End.Add(d) {
				t.Errorf("Shift(%v) on %q = %s", d, line, shifted)
			}

			extended := ExtendEnd{Delta: d}.Apply(iv)
			if extended.Start != iv.Start || extended.End != iv.End.Add(d) {
				t.Errorf("ExtendEnd(%v) on %q = %s", d, line, extended)
			}

			minimum := EnforceMinimum{Minimum: d}.Apply(iv)
			if minimum.Start != iv.Start {
				t.Errorf("EnforceMinimum(%v) moved start on %q", d, line)
			}
			if iv.Duration() >= d && minimum.End != iv.End {
				t.Errorf("EnforceMinimum(%v) changed end of long cue %q", d, line)
			}
			if iv.Duration() < d && minimum.End != iv.Start.Add(d) {
				t.Errorf("EnforceMinimum(%v) on %q: end %s, want start+%v", d, line, minimum.End, d)
			}
		}
	}
}

func TestTransformPassesPlainLinesThrough(t *testing.T) {
	input := []string{
		"\ufeff1",
		"00:00:01,000 --> 00:00:02,000",
		"Hello, world!",
		"",
		"2",
		"00:00:05,500 --> 00:00:08,200",
		"  indented caption  ",
		"00:00:05.500 --> 00:00:08.200",
		"",
	}

	for _, mode := range allModes(2 * time.Second) {
		t.Run(mode.Name(), func(t *testing.T) {
			got := Transform(input, mode)
			if len(got) != len(input) {
				t.Fatalf("expected %d lines, got %d", len(input), len(got))
			}
			for i, line := range input {
				if i == 1 || i == 5 {
					continue
				}
				if got[i] != line {
					t.Errorf("line %d: expected %q unchanged, got %q", i+1, line, got[i])
				}
			}
		})
	}
}

func TestTransformDropsTextAroundTimingPair(t *testing.T) {
	got := Transform(
		[]string{"00:00:01,000 --> 00:00:02,000 X1:100 X2:200 Y1:10 Y2:20"},
		Shift{Delta: 0},
	)
	if got[0] != "00:00:01,000 --> 00:00:02,000" {
		t.Errorf("expected cue settings to be dropped, got %q", got[0])
	}
}

func TestTransformEndBeforeStart(t *testing.T) {
	got := Transform([]string{"00:00:05,000 --> 00:00:03,000"}, Shift{Delta: time.Second})
	if got[0] != "00:00:06,000 --> 00:00:04,000" {
		t.Errorf("got %q", got[0])
	}
}

func TestTransformEmptyInput(t *testing.T) {
	for _, mode := range allModes(time.Second) {
		if got := Transform(nil, mode); len(got) != 0 {
			t.Errorf("%s: expected no lines, got %d", mode.Name(), len(got))
		}
	}
}

func TestTransformerApplyRecordsCues(t *testing.T) {
	input := []string{
		"1",
		"00:00:01,000 --> 00:00:02,000",
		"short",
		"",
		"2",
		"00:00:03,000 --> 00:00:09,000",
		"long",
	}

	tr := NewTransformer(EnforceMinimum{Minimum: 3 * time.Second})
	res := tr.Apply(input)

	if len(res.Lines) != len(input) {
		t.Fatalf("expected %d lines, got %d", len(input), len(res.Lines))
	}
	if len(res.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(res.Cues))
	}
	if res.Changed() != 1 {
		t.Errorf("expected 1 changed cue, got %d", res.Changed())
	}

	first := res.Cues[0]
	if first.Line != 2 {
		t.Errorf("expected cue on line 2, got %d", first.Line)
	}
	if first.Rewrite != "00:00:01,000 --> 00:00:04,000" {
		t.Errorf("unexpected rewrite %q", first.Rewrite)
	}
	if first.After.Duration() != 3*time.Second {
		t.Errorf("expected 3s cue, got %v", first.After.Duration())
	}
	if res.Cues[1].Changed() {
		t.Errorf("expected second cue unchanged, got %q", res.Cues[1].Rewrite)
	}
}

func TestTransformerLine(t *testing.T) {
	tr := NewTransformer(ExtendEnd{Delta: 500 * time.Millisecond})

	got, ok := tr.Line("00:00:01,000 --> 00:00:02,000")
	if !ok || got != "00:00:01,000 --> 00:00:02,500" {
		t.Errorf("Line() = %q, %v", got, ok)
	}

	got, ok = tr.Line("caption")
	if ok || got != "caption" {
		t.Errorf("Line() on plain text = %q, %v", got, ok)
	}
}
