package calculation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-payroll/internal/calculation"
)

func strPtr(v string) *string { return &v }

func workedDay(d time.Time, start, end string) calculation.DayRecord {
	return calculation.DayRecord{
		Date:      d,
		StartTime: strPtr(start),
		EndTime:   strPtr(end),
		Status:    calculation.StatusNormal,
	}
}

func TestNetWorkedMinutes(t *testing.T) {
	t.Run("success standard nine hour day", func(t *testing.T) {
		// 09:00-18:00 gross 540, two 30-minute breaks
		net, err := calculation.NetWorkedMinutes("2024-07-01", "09:00", "18:00")
		assert.NoError(t, err)
		assert.Equal(t, 480, net)
	})

	t.Run("success short shift keeps single break", func(t *testing.T) {
		// 09:00-14:00 gross 300, one break
		net, err := calculation.NetWorkedMinutes("2024-07-01", "09:00", "14:00")
		assert.NoError(t, err)
		assert.Equal(t, 270, net)
	})

	t.Run("success eight hour shift gets minimum hour break", func(t *testing.T) {
		net, err := calculation.NetWorkedMinutes("2024-07-01", "09:00", "17:00")
		assert.NoError(t, err)
		assert.Equal(t, 420, net)
	})

	t.Run("success overnight shift crosses midnight", func(t *testing.T) {
		net, err := calculation.NetWorkedMinutes("2024-07-01", "22:00", "06:00")
		assert.NoError(t, err)
		assert.Equal(t, 420, net)
	})

	t.Run("negative malformed clock", func(t *testing.T) {
		_, err := calculation.NetWorkedMinutes("2024-07-01", "9am", "18:00")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "2024-07-01")
	})
}

func TestClassify(t *testing.T) {
	year, month := 2024, time.July
	noHolidays := map[string]bool{}

	t.Run("success overtime beyond standard day", func(t *testing.T) {
		records := []calculation.DayRecord{
			workedDay(date(2024, time.July, 1), "09:00", "18:00"),
			workedDay(date(2024, time.July, 2), "09:00", "21:00"),
		}

		tally, err := calculation.Classify(records, noHolidays, year, month)

		assert.NoError(t, err)
		// 09:00-21:00 nets 630 minutes, 150 beyond the 480 standard.
		assert.Equal(t, 150, tally.OvertimeMinutes)
		assert.Equal(t, 0, tally.HolidayMinutes)
		assert.Equal(t, 0, tally.ShortfallMinutes)
	})

	t.Run("success holiday work lands in holiday bucket", func(t *testing.T) {
		saturday := workedDay(date(2024, time.July, 6), "09:00", "14:00")
		saturday.OriginallyHoliday = true

		tally, err := calculation.Classify([]calculation.DayRecord{saturday}, noHolidays, year, month)

		assert.NoError(t, err)
		assert.Equal(t, 270, tally.HolidayMinutes)
		assert.Equal(t, 0, tally.OvertimeMinutes)
	})

	t.Run("success absence on weekday accrues shortfall", func(t *testing.T) {
		records := []calculation.DayRecord{
			{Date: date(2024, time.July, 3), Status: calculation.StatusAbsence},
			{Date: date(2024, time.July, 10), Status: calculation.StatusUnpaidHoliday},
		}

		tally, err := calculation.Classify(records, noHolidays, year, month)

		assert.NoError(t, err)
		assert.Equal(t, 960, tally.ShortfallMinutes)
		// only the ABSENCE day triggers the weekly penalty
		assert.Len(t, tally.AbsenceWeeks, 1)
	})

	t.Run("success absence on public holiday costs nothing", func(t *testing.T) {
		holidays := map[string]bool{"2024-07-03": true}
		records := []calculation.DayRecord{
			{Date: date(2024, time.July, 3), Status: calculation.StatusAbsence},
		}

		tally, err := calculation.Classify(records, holidays, year, month)

		assert.NoError(t, err)
		assert.Equal(t, 0, tally.ShortfallMinutes)
		assert.Len(t, tally.AbsenceWeeks, 0)
	})

	t.Run("success two absences in one ISO week count one week", func(t *testing.T) {
		records := []calculation.DayRecord{
			{Date: date(2024, time.July, 2), Status: calculation.StatusAbsence},
			{Date: date(2024, time.July, 4), Status: calculation.StatusAbsence},
			{Date: date(2024, time.July, 9), Status: calculation.StatusAbsence},
		}

		tally, err := calculation.Classify(records, noHolidays, year, month)

		assert.NoError(t, err)
		assert.Equal(t, 1440, tally.ShortfallMinutes)
		assert.Len(t, tally.AbsenceWeeks, 2)
	})

	t.Run("success night window overlap", func(t *testing.T) {
		records := []calculation.DayRecord{
			workedDay(date(2024, time.July, 8), "21:00", "06:00"),
		}

		tally, err := calculation.Classify(records, noHolidays, year, month)

		assert.NoError(t, err)
		// 22:00 through 06:00 next day
		assert.Equal(t, 480, tally.NightMinutes)
	})

	t.Run("success evening shift partial night overlap", func(t *testing.T) {
		records := []calculation.DayRecord{
			workedDay(date(2024, time.July, 8), "14:00", "23:30"),
		}

		tally, err := calculation.Classify(records, noHolidays, year, month)

		assert.NoError(t, err)
		assert.Equal(t, 90, tally.NightMinutes)
	})

	t.Run("negative record outside month", func(t *testing.T) {
		records := []calculation.DayRecord{
			{Date: date(2024, time.August, 1), Status: calculation.StatusNormal},
		}

		_, err := calculation.Classify(records, noHolidays, year, month)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "2024-08-01")
	})

	t.Run("negative duplicate date", func(t *testing.T) {
		records := []calculation.DayRecord{
			{Date: date(2024, time.July, 1), Status: calculation.StatusNormal},
			{Date: date(2024, time.July, 1), Status: calculation.StatusNormal},
		}

		_, err := calculation.Classify(records, noHolidays, year, month)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "more than once")
	})

	t.Run("negative absence with clock times", func(t *testing.T) {
		rec := workedDay(date(2024, time.July, 1), "09:00", "18:00")
		rec.Status = calculation.StatusAbsence

		_, err := calculation.Classify([]calculation.DayRecord{rec}, noHolidays, year, month)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ABSENCE")
	})

	t.Run("negative start without end", func(t *testing.T) {
		rec := calculation.DayRecord{
			Date:      date(2024, time.July, 1),
			StartTime: strPtr("09:00"),
			Status:    calculation.StatusNormal,
		}

		_, err := calculation.Classify([]calculation.DayRecord{rec}, noHolidays, year, month)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "2024-07-01")
	})
}
