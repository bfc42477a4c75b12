// Package clock parses and formats chess clock readings as they appear in
// PGN [%clk] annotations, e.g. "0:29:59.9" or "29:59.9".
package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a clock string into seconds. It accepts the H:MM:SS.s,
// MM:SS.s and SS.s layouts.
func Parse(raw string) (seconds float64, err error) {
	parts := strings.Split(raw, ":")

	switch len(parts) {
	case 3:
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("failed to parse hours in clock string %q: %w", raw, err)
		}

		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("failed to parse minutes in clock string %q: %w", raw, err)
		}

		secs, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse seconds in clock string %q: %w", raw, err)
		}

		return float64(hours)*3600 + float64(minutes)*60 + secs, nil
	case 2:
		minutes, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("failed to parse minutes in clock string %q: %w", raw, err)
		}

		secs, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse seconds in clock string %q: %w", raw, err)
		}

		return float64(minutes)*60 + secs, nil
	case 1:
		secs, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse clock string %q: %w", raw, err)
		}

		return secs, nil
	default:
		return 0, fmt.Errorf("clock string %q has too many colon-separated parts", raw)
	}
}

// FormatMMSS renders a duration in seconds as "MM:SS", truncating fractions.
func FormatMMSS(seconds float64) string {
	minutes := int(seconds / 60)
	secs := int(seconds) % 60

	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
