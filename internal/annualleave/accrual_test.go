package annualleave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-payroll/internal/annualleave"
	"go-payroll/internal/calculation"
)

func hired(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEntitlementFiscal(t *testing.T) {
	cases := []struct {
		name     string
		hireDate string
		year     int
		want     int
	}{
		{"four years of service adds one bonus day", "2020-01-01", 2024, 16},
		{"hire year generates nothing", "2024-03-15", 2024, 0},
		{"year before hire generates nothing", "2024-03-15", 2023, 0},
		{"year after hire accrues monthly", "2023-06-15", 2024, 6},
		{"mid month hire does not count a partial month", "2023-06-20", 2024, 6},
		{"under three years of service gets the base only", "2022-11-01", 2024, 15},
		{"two full years still base only", "2022-01-01", 2024, 15},
		{"three full years earns the first bonus day", "2021-01-01", 2024, 16},
		{"long service is capped at twenty five", "2000-01-01", 2024, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := annualleave.Entitlement(calculation.LeaveBasisFiscal, hired(tc.hireDate), tc.year)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEntitlementHireDate(t *testing.T) {
	cases := []struct {
		name     string
		hireDate string
		year     int
		want     int
	}{
		{"first service year accrues monthly", "2024-03-10", 2024, 9},
		{"first service year is capped at eleven", "2024-01-01", 2024, 11},
		{"second anniversary year gets the base", "2022-05-01", 2024, 15},
		{"fourth anniversary year adds one bonus day", "2020-05-01", 2024, 16},
		{"long service is capped at twenty five", "1995-05-01", 2024, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := annualleave.Entitlement(calculation.LeaveBasisHireDate, hired(tc.hireDate), tc.year)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEntitlementUnknownBasis(t *testing.T) {
	_, err := annualleave.Entitlement("LUNAR", hired("2020-01-01"), 2024)
	assert.Error(t, err)
}
