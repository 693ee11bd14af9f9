package model

import (
	"regexp"
	"strconv"
	"strings"
)

// Water totals are derived, never stored: a completed task whose title
// mentions water or a drink encodes its amount in the title text. Historical
// data depends on this exact parse, so every consumer goes through here.
var waterAmountPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(ml|l)?`)

// ParseWaterML extracts the water amount in milliliters encoded in a task
// title. The leading quantity may carry an ml or l unit; an unlabeled
// quantity under 10 is read as liters.
func ParseWaterML(title string) (float64, bool) {
	text := strings.ToLower(title)
	if !strings.Contains(text, "water") && !strings.Contains(text, "drink") {
		return 0, false
	}
	match := waterAmountPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	val, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	switch match[2] {
	case "l":
		val *= 1000
	case "ml":
	default:
		if val < 10 {
			val *= 1000
		}
	}
	return val, true
}

// WaterIntakeML sums the water encoded in completed tasks.
func WaterIntakeML(tasks []Task) int {
	total := 0.0
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		if ml, ok := ParseWaterML(t.Title); ok {
			total += ml
		}
	}
	return int(total)
}
