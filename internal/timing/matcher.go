package timing

import "regexp"

const arrow = " --> "

// Matcher recognises SRT timing lines. It is safe for concurrent use once
// built.
type Matcher struct {
	pattern *regexp.Regexp
}

func NewMatcher() *Matcher {
	return &Matcher{
		pattern: regexp.MustCompile(
			`([0-9]{2}):([0-9]{2}):([0-9]{2}),([0-9]{3})` + arrow +
				`([0-9]{2}):([0-9]{2}):([0-9]{2}),([0-9]{3})`,
		),
	}
}

// Match reports whether line contains a timing pair and returns its parsed
// interval. Only the first pair on the line is considered.
func (m *Matcher) Match(line string) (Interval, bool) {
	matches := m.pattern.FindStringSubmatch(line)
	if len(matches) != 9 {
		return Interval{}, false
	}

	start, err := parseFields(matches[1], matches[2], matches[3], matches[4])
	if err != nil {
		return Interval{}, false
	}
	end, err := parseFields(matches[5], matches[6], matches[7], matches[8])
	if err != nil {
		return Interval{}, false
	}

	return Interval{Start: start, End: end}, true
}
