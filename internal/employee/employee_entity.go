package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-payroll/internal/calculation"
)

// Employee owns both identity and the fixed monthly contract components.
// Contract columns change only through the explicit contract update
// operation; a running calculation always sees one consistent snapshot.
type Employee struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FullName       string          `gorm:"type:varchar(100);not null"`
	Email          string          `gorm:"type:varchar(255);uniqueIndex:uq_employees_email"`
	HireDate       time.Time       `gorm:"type:date;not null"`
	AnnualSalary   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DependentCount int             `gorm:"type:int;not null;default:1"`
	Active         bool            `gorm:"not null;default:true"`

	BasicSalary      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FixedOvertimePay decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Bonus            decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	OtherAllowance   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	MealAllowance    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	VehicleAllowance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	RnDAllowance     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	ChildcareSubsidy decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContractTerms snapshots the contract columns in the shape the pay engine
// consumes.
func (e *Employee) ContractTerms() calculation.ContractTerms {
	return calculation.ContractTerms{
		BasicSalary:      e.BasicSalary,
		FixedOvertimePay: e.FixedOvertimePay,
		Bonus:            e.Bonus,
		OtherAllowance:   e.OtherAllowance,
		MealAllowance:    e.MealAllowance,
		VehicleAllowance: e.VehicleAllowance,
		RnDAllowance:     e.RnDAllowance,
		ChildcareSubsidy: e.ChildcareSubsidy,
	}
}
