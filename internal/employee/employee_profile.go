package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"go-payroll/internal/calculation"
)

// PayProfile is the read model payroll finalization consumes: everything
// about one employee that the pay and deduction engines need.
type PayProfile struct {
	FullName       string
	HireDate       time.Time
	AnnualSalary   decimal.Decimal
	DependentCount int
	Contract       calculation.ContractTerms
}

func (s *service) PayProfileOf(ctx context.Context, employeeID string) (PayProfile, error) {
	e, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return PayProfile{}, err
	}
	return PayProfile{
		FullName:       e.FullName,
		HireDate:       e.HireDate,
		AnnualSalary:   e.AnnualSalary,
		DependentCount: e.DependentCount,
		Contract:       e.ContractTerms(),
	}, nil
}
