package calculation

import (
	"strconv"
	"strings"

	calculationerrors "go-payroll/internal/calculation/errors"
)

const (
	minutesPerDay      = 24 * 60
	nightWindowStart   = 22 * 60 // 22:00
	nightWindowEnd     = 30 * 60 // 06:00 next day
	standardDayMinutes = 480
)

// parseClock converts an "HH:MM" string into minutes since midnight.
func parseClock(date, value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, calculationerrors.InvalidClockTime(date, value)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, calculationerrors.InvalidClockTime(date, value)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, calculationerrors.InvalidClockTime(date, value)
	}
	return h*60 + m, nil
}

// grossShiftMinutes returns the raw span between start and end. An end at or
// before the start means the shift runs into the next day.
func grossShiftMinutes(start, end int) int {
	if end <= start {
		end += minutesPerDay
	}
	return end - start
}

// breakMinutes applies the statutory break deduction: 30 minutes per full
// 4 hours worked, and at least 60 minutes once the shift reaches 8 hours.
func breakMinutes(gross int) int {
	breaks := (gross / 240) * 30
	if gross >= standardDayMinutes && breaks < 60 {
		breaks = 60
	}
	return breaks
}

// NetWorkedMinutes derives the payable minutes of a start/end clock pair.
func NetWorkedMinutes(date, start, end string) (int, error) {
	s, err := parseClock(date, start)
	if err != nil {
		return 0, err
	}
	e, err := parseClock(date, end)
	if err != nil {
		return 0, err
	}
	gross := grossShiftMinutes(s, e)
	net := gross - breakMinutes(gross)
	if net < 0 {
		net = 0
	}
	return net, nil
}

// nightOverlapMinutes computes how much of the shift falls inside the
// [22:00, 06:00 next day) window. A shift crossing midnight is unrolled onto
// a 48-hour axis so the overlap covers both the pre-midnight and the
// post-midnight segment.
func nightOverlapMinutes(start, end int) int {
	if end <= start {
		end += minutesPerDay
	}
	lo := start
	if lo < nightWindowStart {
		lo = nightWindowStart
	}
	hi := end
	if hi > nightWindowEnd {
		hi = nightWindowEnd
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}
