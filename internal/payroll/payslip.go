package payroll

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	payrollerrors "go-payroll/internal/payroll/errors"
)

// GeneratePayslip renders the stored period as a single-page PDF and stamps
// the row so downstream consumers can tell the slip exists.
func (s *service) GeneratePayslip(ctx context.Context, payrollID string) ([]byte, error) {
	p, err := s.repo.FindByID(ctx, payrollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPayrollNotFound
		}
		return nil, err
	}

	pdf, err := renderPayslipPDF(payslipLines(p))
	if err != nil {
		s.logger.Error("render payslip failed", zap.String("payroll_id", payrollID), zap.Error(err))
		return nil, err
	}

	if err := s.repo.MarkPayslipGenerated(ctx, payrollID, time.Now().UTC()); err != nil {
		return nil, err
	}

	s.logger.Info("payslip generated",
		zap.String("payroll_id", payrollID),
		zap.Int("year", p.Year),
		zap.Int("month", p.Month),
	)
	return pdf, nil
}

func payslipLines(p *MonthlyPayroll) []string {
	name := ""
	if p.Employee != nil {
		name = p.Employee.FullName
	}

	amount := func(v decimal.Decimal) string { return v.StringFixed(0) }

	return []string{
		fmt.Sprintf("Payslip %04d-%02d", p.Year, p.Month),
		fmt.Sprintf("Employee: %s", name),
		"",
		"Earnings",
		fmt.Sprintf("  Basic salary          %s", amount(p.FinalBasicSalary)),
		fmt.Sprintf("  Fixed overtime pay    %s", amount(p.FinalFixedOvertimePay)),
		fmt.Sprintf("  Bonus                 %s", amount(p.FinalBonus)),
		fmt.Sprintf("  Other allowance       %s", amount(p.FinalOtherAllowance)),
		fmt.Sprintf("  Meal allowance        %s", amount(p.FinalMealAllowance)),
		fmt.Sprintf("  Vehicle allowance     %s", amount(p.FinalVehicleAllowance)),
		fmt.Sprintf("  R&D allowance         %s", amount(p.FinalRnDAllowance)),
		fmt.Sprintf("  Childcare subsidy     %s", amount(p.FinalChildcareSubsidy)),
		fmt.Sprintf("  Premium pay           %s", amount(p.FinalPremiumPay)),
		fmt.Sprintf("  Total payable         %s", amount(p.TotalPayable)),
		"",
		"Deductions",
		fmt.Sprintf("  National pension      %s", amount(p.PensionEmployee)),
		fmt.Sprintf("  Health insurance      %s", amount(p.HealthEmployee)),
		fmt.Sprintf("  Long-term care        %s", amount(p.LongTermCareEmployee)),
		fmt.Sprintf("  Employment insurance  %s", amount(p.EmploymentEmployee)),
		fmt.Sprintf("  Income tax            %s", amount(p.IncomeTax)),
		fmt.Sprintf("  Local income tax      %s", amount(p.LocalIncomeTax)),
		fmt.Sprintf("  Total deductions      %s", amount(p.EmployeeTotal)),
		"",
		fmt.Sprintf("Net pay                 %s", amount(p.NetPay)),
	}
}

// renderPayslipPDF emits a minimal one-page PDF by hand: one Helvetica text
// block, fixed leading, explicit xref table. No library needed for a payslip
// this plain.
func renderPayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var text strings.Builder
	text.WriteString("BT\n/F1 11 Tf\n14 TL\n50 792 Td\n")
	for i, line := range lines {
		if i > 0 {
			text.WriteString("T*\n")
		}
		fmt.Fprintf(&text, "(%s) Tj\n", pdfEscape(line))
	}
	text.WriteString("ET")

	stream := text.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")

	offsets := make([]int, 0, len(objects))
	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xrefStart)

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
