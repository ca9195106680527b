package subtitle

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var timestampRegex = regexp.MustCompile(`^(?:(\d+):)?(\d+):(\d+),(\d+)$`)

// ParseTimestamp converts a [HH:]MM:SS,mmm token into microseconds.
//
// The fraction group is read as a plain integer count of milliseconds, so
// "00:00:01,5" is 1.005s rather than 1.5s. Parser.ScaleFraction switches
// to decimal-fraction semantics.
func ParseTimestamp(token string) (int64, error) {
	return parseTimestamp(token, false)
}

func parseTimestamp(token string, scaleFraction bool) (int64, error) {
	m := timestampRegex.FindStringSubmatch(token)
	if m == nil {
		return 0, &FormatError{Token: token}
	}

	var hours int64
	if m[1] != "" {
		h, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, &FormatError{Token: token}
		}
		hours = h
	}
	minutes, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, &FormatError{Token: token}
	}
	seconds, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return 0, &FormatError{Token: token}
	}

	var fracUs int64
	if scaleFraction {
		digits := m[4]
		if len(digits) > 6 {
			digits = digits[:6]
		}
		digits += strings.Repeat("0", 6-len(digits))
		fracUs, _ = strconv.ParseInt(digits, 10, 64)
	} else {
		ms, err := strconv.ParseInt(m[4], 10, 64)
		if err != nil || ms > math.MaxInt64/1000 {
			return 0, &FormatError{Token: token}
		}
		fracUs = ms * 1000
	}

	const (
		usPerSecond = int64(1_000_000)
		usPerMinute = 60 * usPerSecond
		usPerHour   = 60 * usPerMinute
	)
	if hours > math.MaxInt64/usPerHour ||
		minutes > math.MaxInt64/usPerMinute ||
		seconds > math.MaxInt64/usPerSecond {
		return 0, &FormatError{Token: token}
	}

	total := hours * usPerHour
	for _, part := range []int64{minutes * usPerMinute, seconds * usPerSecond, fracUs} {
		if total > math.MaxInt64-part {
			return 0, &FormatError{Token: token}
		}
		total += part
	}
	return total, nil
}
