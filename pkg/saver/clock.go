package saver

import (
	"fmt"
	"strconv"
	"strings"
)

// parseClock converts xscreensaver's H:MM:SS notation to seconds.
func parseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, &ParseError{What: "H:MM:SS timeout value", Raw: value}
	}

	fields := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, &ParseError{What: "H:MM:SS timeout value", Raw: value}
		}
		fields[i] = n
	}
	return fields[0]*3600 + fields[1]*60 + fields[2], nil
}

// formatClock renders a number of seconds in H:MM:SS notation.
func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// minutesFor truncates seconds to whole minutes with a one-minute floor.
// Sub-minute precision is not preserved by the minute-granular backends.
func minutesFor(seconds int) int {
	minutes := seconds / 60
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
