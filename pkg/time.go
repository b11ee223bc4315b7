package pkg

import (
	"strconv"
	"strings"
	"time"
)

// Layouts shared by the appliance protocol and the reading store. The
// appliance and the legacy schema both exchange wall-clock values as
// plain strings, so readings keep a separate date and clock component.
const (
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04:05"
	TimestampLayout = "2006-01-02 15:04:05"
)

// ReadingDate formats t as the reading store's calendar-date string.
func ReadingDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ReadingClock formats t as the reading store's time-of-day string.
func ReadingClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ParseTimestamp parses a strict "YYYY-MM-DD HH:mm:ss" value. Unlike a bare
// regexp check it also rejects impossible calendar dates (month 13, day 40).
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}

// timeUnit struct holds information for a single unit of time.
type timeUnit struct {
	// Name is the singular name of the unit (e.g., "day").
	Name string
	// ShortName is the compact representation (e.g., "d").
	ShortName string
	// Value is the duration of one unit in nanoseconds.
	Value time.Duration
}

// Pre-defined time units from largest to smallest for formatting logic.
var units = []timeUnit{
	{Name: "day", ShortName: "d", Value: 24 * time.Hour},
	{Name: "hour", ShortName: "h", Value: time.Hour},
	{Name: "minute", ShortName: "m", Value: time.Minute},
	{Name: "second", ShortName: "s", Value: time.Second},
	{Name: "millisecond", ShortName: "ms", Value: time.Millisecond},
	{Name: "microsecond", ShortName: "μs", Value: time.Microsecond},
	{Name: "nanosecond", ShortName: "ns", Value: time.Nanosecond},
}

// SmartDurationFormat is a high-performance, dependency-free duration formatter.
func SmartDurationFormat(d time.Duration) string {
	if d == 0 {
		return "0"
	}

	// Below one second: pick the largest sub-second unit.
	if d < time.Second {
		if d >= time.Millisecond {
			return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
		}
		if d >= time.Microsecond {
			return strconv.FormatInt(d.Microseconds(), 10) + "μs"
		}
		return strconv.FormatInt(d.Nanoseconds(), 10) + "ns"
	}

	// One second or more: format up to 2 of the largest units.
	var builder strings.Builder
	remaining := d
	parts := 0

	for _, unit := range units {
		if remaining < unit.Value {
			continue
		}

		count := remaining / unit.Value

		builder.WriteString(strconv.FormatInt(int64(count), 10))
		builder.WriteString(unit.ShortName)

		remaining %= unit.Value
		parts++

		if parts == 2 || remaining == 0 {
			break
		}
	}

	return builder.String()
}
