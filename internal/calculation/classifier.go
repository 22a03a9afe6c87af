package calculation

import (
	"time"

	calculationerrors "go-payroll/internal/calculation/errors"
)

// Tally is the minute bookkeeping produced by one pass over a month of
// attendance records.
type Tally struct {
	ShortfallMinutes int
	OvertimeMinutes  int
	HolidayMinutes   int
	NightMinutes     int

	// AbsenceWeeks holds the distinct ISO weeks containing at least one
	// ABSENCE-status calendar weekday, keyed isoYear*100+isoWeek.
	AbsenceWeeks map[int]struct{}
}

// isCalendarWeekday reports whether the date is neither Saturday, Sunday,
// nor a designated public holiday.
func isCalendarWeekday(date time.Time, holidays map[string]bool) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !holidays[date.Format("2006-01-02")]
}

// Classify walks the month's day records and accumulates shortfall,
// overtime, holiday and night minutes. Any malformed record aborts the
// whole pass with an error naming the offending date.
func Classify(records []DayRecord, holidays map[string]bool, year int, month time.Month) (Tally, error) {
	tally := Tally{AbsenceWeeks: make(map[int]struct{})}
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		date := rec.Date.Format("2006-01-02")

		if rec.Date.Year() != year || rec.Date.Month() != month {
			return Tally{}, calculationerrors.DayOutsidePeriod(date)
		}
		if _, dup := seen[date]; dup {
			return Tally{}, calculationerrors.DuplicateDay(date)
		}
		seen[date] = struct{}{}

		if _, err := ParseWorkStatus(string(rec.Status)); err != nil {
			return Tally{}, err
		}

		hasStart := rec.StartTime != nil && *rec.StartTime != ""
		hasEnd := rec.EndTime != nil && *rec.EndTime != ""
		if hasStart != hasEnd {
			return Tally{}, calculationerrors.IncompleteClockPair(date)
		}

		weekday := isCalendarWeekday(rec.Date, holidays)

		switch rec.Status {
		case StatusAbsence, StatusUnpaidHoliday:
			if hasStart {
				return Tally{}, calculationerrors.InconsistentDay(date, string(rec.Status))
			}
			if weekday {
				// Any unworked weekday costs a flat standard 8-hour day,
				// regardless of the actual scheduled hours.
				tally.ShortfallMinutes += standardDayMinutes
				if rec.Status == StatusAbsence {
					isoYear, isoWeek := rec.Date.ISOWeek()
					tally.AbsenceWeeks[isoYear*100+isoWeek] = struct{}{}
				}
			}
			continue
		case StatusNormal, StatusPaidHoliday:
			// worked or paid-rest day, tallied below
		default:
			return Tally{}, calculationerrors.InvalidWorkStatus(string(rec.Status))
		}

		if !hasStart {
			continue
		}

		worked, err := NetWorkedMinutes(date, *rec.StartTime, *rec.EndTime)
		if err != nil {
			return Tally{}, err
		}
		if worked <= 0 {
			continue
		}

		if rec.OriginallyHoliday {
			tally.HolidayMinutes += worked
		} else if worked > standardDayMinutes {
			tally.OvertimeMinutes += worked - standardDayMinutes
		}

		start, err := parseClock(date, *rec.StartTime)
		if err != nil {
			return Tally{}, err
		}
		end, err := parseClock(date, *rec.EndTime)
		if err != nil {
			return Tally{}, err
		}
		tally.NightMinutes += nightOverlapMinutes(start, end)
	}

	return tally, nil
}
