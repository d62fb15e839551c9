package timing

// Cue records one rewritten timing line.
type Cue struct {
	Line     int // 1-based
	Original string
	Rewrite  string
	Before   Interval
	After    Interval
}

// Changed reports whether either timestamp moved. Dropped trailing text alone
// does not count.
func (c Cue) Changed() bool {
	return c.Before != c.After
}

// Result is the output of one transformation run.
type Result struct {
	Lines []string
	Cues  []Cue
}

// Changed counts cues whose timing moved.
func (r *Result) Changed() int {
	n := 0
	for _, c := range r.Cues {
		if c.Changed() {
			n++
		}
	}
	return n
}

// Transformer rewrites the timing lines of a file under a single Mode.
type Transformer struct {
	matcher *Matcher
	mode    Mode
}

func NewTransformer(mode Mode) *Transformer {
	return &Transformer{matcher: NewMatcher(), mode: mode}
}

func (t *Transformer) Mode() Mode {
	return t.mode
}

// Line rewrites a single line. Plain lines come back unchanged with ok false.
// Any text around the timing pair is dropped.
func (t *Transformer) Line(line string) (rewritten string, ok bool) {
	iv, ok := t.matcher.Match(line)
	if !ok {
		return line, false
	}
	return t.mode.Apply(iv).String(), true
}

// Apply transforms every line and records each timing line it touched.
// len(Result.Lines) always equals len(lines).
func (t *Transformer) Apply(lines []string) *Result {
	res := &Result{Lines: make([]string, len(lines))}
	for i, line := range lines {
		iv, ok := t.matcher.Match(line)
		if !ok {
			res.Lines[i] = line
			continue
		}
		adjusted := t.mode.Apply(iv)
		res.Lines[i] = adjusted.String()
		res.Cues = append(res.Cues, Cue{
			Line:     i + 1,
			Original: line,
			Rewrite:  res.Lines[i],
			Before:   iv,
			After:    adjusted,
		})
	}
	return res
}

// Transform returns lines with every timing line adjusted by mode.
func Transform(lines []string, mode Mode) []string {
	return NewTransformer(mode).Apply(lines).Lines
}
