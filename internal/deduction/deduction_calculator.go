package deduction

import (
	"github.com/shopspring/decimal"
)

// Statutory rates. Employment insurance deliberately uses the same
// simplified rate on both sides; the real employer schedule is more complex
// and is out of scope here.
var (
	pensionRate      = decimal.NewFromFloat(0.045)
	pensionMinBase   = decimal.NewFromInt(370_000)
	pensionMaxBase   = decimal.NewFromInt(5_900_000)
	healthRate       = decimal.NewFromFloat(0.03545)
	longTermCareRate = decimal.NewFromFloat(0.1295) // applied to the health premium
	employmentRate   = decimal.NewFromFloat(0.009)
	localTaxRate     = decimal.NewFromFloat(0.1)

	dependentAllowance = decimal.NewFromInt(150_000)
)

// incomeTaxBrackets is a simplified six-tier approximation keyed on gross
// monthly pay, not a certified withholding table.
var incomeTaxBrackets = []struct {
	upTo decimal.Decimal // exclusive; zero value means no upper bound
	rate decimal.Decimal
}{
	{decimal.NewFromInt(1_500_000), decimal.Zero},
	{decimal.NewFromInt(2_500_000), decimal.NewFromFloat(0.02)},
	{decimal.NewFromInt(4_000_000), decimal.NewFromFloat(0.05)},
	{decimal.NewFromInt(6_000_000), decimal.NewFromFloat(0.08)},
	{decimal.NewFromInt(10_000_000), decimal.NewFromFloat(0.12)},
	{decimal.Decimal{}, decimal.NewFromFloat(0.15)},
}

// Result itemizes both withholding sides of one gross monthly figure.
type Result struct {
	PensionEmployee      decimal.Decimal `json:"pension_employee"`
	HealthEmployee       decimal.Decimal `json:"health_employee"`
	LongTermCareEmployee decimal.Decimal `json:"long_term_care_employee"`
	EmploymentEmployee   decimal.Decimal `json:"employment_employee"`
	IncomeTax            decimal.Decimal `json:"income_tax"`
	LocalIncomeTax       decimal.Decimal `json:"local_income_tax"`
	EmployeeTotal        decimal.Decimal `json:"employee_total"`

	PensionEmployer      decimal.Decimal `json:"pension_employer"`
	HealthEmployer       decimal.Decimal `json:"health_employer"`
	LongTermCareEmployer decimal.Decimal `json:"long_term_care_employer"`
	EmploymentEmployer   decimal.Decimal `json:"employment_employer"`
	IndustrialAccident   decimal.Decimal `json:"industrial_accident"`
	EmployerTotal        decimal.Decimal `json:"employer_total"`

	NetPay decimal.Decimal `json:"net_pay"`
}

// floor10 truncates down to the nearest 10 currency units. Withholding is
// conservative: never round up.
func floor10(v decimal.Decimal) decimal.Decimal {
	return v.Div(decimal.NewFromInt(10)).Floor().Mul(decimal.NewFromInt(10))
}

func clampPensionBase(gross decimal.Decimal) decimal.Decimal {
	if gross.LessThan(pensionMinBase) {
		return pensionMinBase
	}
	if gross.GreaterThan(pensionMaxBase) {
		return pensionMaxBase
	}
	return gross
}

func incomeTax(gross decimal.Decimal, dependents int) decimal.Decimal {
	base := gross
	if dependents > 1 {
		allowance := dependentAllowance.Mul(decimal.NewFromInt(int64(dependents - 1)))
		base = base.Sub(allowance)
	}
	if base.IsNegative() {
		return decimal.Zero
	}

	for _, bracket := range incomeTaxBrackets {
		if bracket.upTo.IsZero() || base.LessThan(bracket.upTo) {
			return floor10(base.Mul(bracket.rate))
		}
	}
	return decimal.Zero
}

// Compute is a pure function from gross monthly pay, the workplace's
// industrial accident rate, and the dependent count to a full deduction
// breakdown. Negative gross is treated as zero.
func Compute(gross decimal.Decimal, industrialAccidentRate decimal.Decimal, dependents int) Result {
	if gross.IsNegative() {
		gross = decimal.Zero
	}

	pension := floor10(clampPensionBase(gross).Mul(pensionRate))
	health := floor10(gross.Mul(healthRate))
	care := floor10(health.Mul(longTermCareRate))
	employment := floor10(gross.Mul(employmentRate))
	accident := floor10(gross.Mul(industrialAccidentRate))

	tax := incomeTax(gross, dependents)
	localTax := floor10(tax.Mul(localTaxRate))

	employeeTotal := pension.Add(health).Add(care).Add(employment).Add(tax).Add(localTax)
	employerTotal := pension.Add(health).Add(care).Add(employment).Add(accident)

	return Result{
		PensionEmployee:      pension,
		HealthEmployee:       health,
		LongTermCareEmployee: care,
		EmploymentEmployee:   employment,
		IncomeTax:            tax,
		LocalIncomeTax:       localTax,
		EmployeeTotal:        employeeTotal,

		PensionEmployer:      pension,
		HealthEmployer:       health,
		LongTermCareEmployer: care,
		EmploymentEmployer:   employment,
		IndustrialAccident:   accident,
		EmployerTotal:        employerTotal,

		NetPay: gross.Sub(employeeTotal),
	}
}
