package domain

import (
	"regexp"
	"strconv"
	"time"
)

// The upstream serializes dates as "/Date(1687392000000)/" (epoch millis).
// Only the digit run matters, the wrapper varies.
var digitRun = regexp.MustCompile(`\d+`)

// Sub-second layout so a non-whole-second token keeps its milliseconds;
// trailing zeros are trimmed, whole seconds still read "...:00Z".
const isoLayout = "2006-01-02T15:04:05.999999999Z07:00"

// NormalizeDate extracts the first run of decimal digits from raw, interprets
// it as milliseconds since the Unix epoch and returns an ISO-8601 UTC string
// with a trailing Z. Returns ok=false when no digits are present or the value
// does not fit the host time representation; callers map that to DateUnknown
// rather than failing the record.
func NormalizeDate(raw string) (string, bool) {
	digits := digitRun.FindString(raw)
	if digits == "" {
		return "", false
	}

	ms, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return "", false
	}

	t := time.UnixMilli(ms).UTC()
	return t.Format(isoLayout), true
}
