package nutrition

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// RawValue is one nutrition field exactly as the model returned it: either an
// integer or some text.
type RawValue struct {
	n     int
	text  string
	isInt bool
}

// IntValue wraps a value the model already returned as an integer.
func IntValue(n int) RawValue {
	return RawValue{n: n, isInt: true}
}

// TextValue wraps any non-integer value by its textual form.
func TextValue(s string) RawValue {
	return RawValue{text: s}
}

func (v RawValue) String() string {
	if v.isInt {
		return strconv.Itoa(v.n)
	}
	return v.text
}

// Normalize collapses a raw field into one integer. It never fails:
//
//   - integers pass through unchanged
//   - "low-high" yields the floor average of the two bounds
//   - otherwise the first run of digits is used ("approximately 450 kcal" is 450)
//   - text without digits is 0
//
// A leading minus is read as a range separator, so "-5" normalizes to 5.
func Normalize(v RawValue) int {
	if v.isInt {
		return v.n
	}

	s := v.text
	if strings.Contains(s, "-") {
		if avg, ok := rangeAverage(s); ok {
			return avg
		}
	}

	if m := digitRun.FindString(s); m != "" {
		// Atoi saturates at the max int on overflow; keep that value.
		n, _ := strconv.Atoi(m)
		return n
	}
	return 0
}

// rangeAverage parses "low-high". More than one hyphen is not a range.
func rangeAverage(s string) (int, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, false
	}

	low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	high, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}

	// Bounds are non-negative here; summing halves avoids overflow.
	return low/2 + high/2 + (low%2+high%2)/2, true
}
