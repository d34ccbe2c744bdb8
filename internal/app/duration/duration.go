// Package duration parses the ISO-8601 duration strings returned by the
// YouTube Data API (contentDetails.duration, e.g. "PT5M30S").
package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts an ISO-8601 duration into total minutes.
// "PT5M30S" -> 5.5, "PT1H2M" -> 62. Malformed input is an error; the
// caller decides whether a single bad value is fatal.
func Parse(iso string) (float64, error) {
	s := strings.ToUpper(strings.TrimSpace(iso))
	if len(s) < 3 || s[0] != 'P' {
		return 0, fmt.Errorf("malformed ISO-8601 duration %q", iso)
	}

	rest := s[1:]
	inTime := false
	seenComponent := false
	var minutes float64

	for len(rest) > 0 {
		if rest[0] == 'T' {
			if inTime {
				return 0, fmt.Errorf("malformed ISO-8601 duration %q: repeated time designator", iso)
			}
			inTime = true
			rest = rest[1:]
			continue
		}

		i := 0
		for i < len(rest) && (rest[i] >= '0' && rest[i] <= '9' || rest[i] == '.') {
			i++
		}
		if i == 0 || i >= len(rest) {
			return 0, fmt.Errorf("malformed ISO-8601 duration %q", iso)
		}

		value, err := strconv.ParseFloat(rest[:i], 64)
		if err != nil {
			return 0, fmt.Errorf("malformed ISO-8601 duration %q: %w", iso, err)
		}
		unit := rest[i]
		rest = rest[i+1:]

		switch {
		case !inTime && unit == 'W':
			minutes += value * 7 * 24 * 60
		case !inTime && unit == 'D':
			minutes += value * 24 * 60
		case inTime && unit == 'H':
			minutes += value * 60
		case inTime && unit == 'M':
			minutes += value
		case inTime && unit == 'S':
			minutes += value / 60
		default:
			return 0, fmt.Errorf("malformed ISO-8601 duration %q: unexpected designator %q", iso, string(unit))
		}
		seenComponent = true
	}

	if !seenComponent {
		return 0, fmt.Errorf("malformed ISO-8601 duration %q: no components", iso)
	}

	return minutes, nil
}
