package update

import (
	"fmt"
	"strings"
)

// FormatUserName shortens long display names: three words collapse the
// middle name to an initial, more than three keep first and last only.
func FormatUserName(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	parts := strings.Fields(name)
	switch {
	case len(parts) == 3:
		initial := strings.ToUpper(string([]rune(parts[1])[0]))
		return fmt.Sprintf("%s %s. %s", parts[0], initial, parts[2])
	case len(parts) > 3:
		return parts[0] + " " + parts[len(parts)-1]
	default:
		return name
	}
}

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

func formatClockSec(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	h := totalSec / 3600
	min := (totalSec % 3600) / 60
	sec := totalSec % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, min, sec)
	}
	return fmt.Sprintf("%02d:%02d", min, sec)
}
