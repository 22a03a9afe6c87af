package annualleave

import (
	"time"

	annualleaveerrors "go-payroll/internal/annualleave/errors"
	"go-payroll/internal/calculation"
)

const maxEntitlementDays = 25

// completedMonths counts whole months of service between two dates. A month
// only counts once the same day-of-month has passed again.
func completedMonths(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	m := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		m--
	}
	if m < 0 {
		m = 0
	}
	return m
}

func capEntitlement(days int) int {
	if days > maxEntitlementDays {
		return maxEntitlementDays
	}
	if days < 0 {
		return 0
	}
	return days
}

// seniorityBonus is floor((yearsOfService-1)/2) extra days, granted only once
// service reaches three full years.
func seniorityBonus(yearsOfService int) int {
	if yearsOfService < 3 {
		return 0
	}
	return (yearsOfService - 1) / 2
}

// Entitlement computes the generated leave days for one employee and target
// year under the configured basis. It depends only on its arguments.
func Entitlement(basis string, hireDate time.Time, year int) (int, error) {
	switch basis {
	case calculation.LeaveBasisFiscal:
		return fiscalEntitlement(hireDate, year), nil
	case calculation.LeaveBasisHireDate:
		return hireDateEntitlement(hireDate, year), nil
	default:
		return 0, annualleaveerrors.InvalidLeaveBasis(basis)
	}
}

// fiscalEntitlement keys everything on Jan 1 of the target year.
//
// Hire year itself generates nothing. The year right after hire accrues one
// day per completed month of service up to Jan 1. Later years grant the base
// 15 days plus the seniority bonus.
func fiscalEntitlement(hireDate time.Time, year int) int {
	hireYear := hireDate.Year()
	switch {
	case year <= hireYear:
		return 0
	case year == hireYear+1:
		jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		return capEntitlement(completedMonths(hireDate, jan1))
	default:
		jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		yearsOfService := completedMonths(hireDate, jan1) / 12
		return capEntitlement(15 + seniorityBonus(yearsOfService))
	}
}

// hireDateEntitlement counts anniversaries instead of fiscal years. During
// the first service year entitlement accrues monthly, capped at 11 days.
func hireDateEntitlement(hireDate time.Time, year int) int {
	hireYear := hireDate.Year()
	switch {
	case year < hireYear:
		return 0
	case year == hireYear:
		nextJan1 := time.Date(year+1, 1, 1, 0, 0, 0, 0, time.UTC)
		months := completedMonths(hireDate, nextJan1)
		if months > 11 {
			months = 11
		}
		return capEntitlement(months)
	default:
		yearsOfService := year - hireYear
		return capEntitlement(15 + seniorityBonus(yearsOfService))
	}
}
