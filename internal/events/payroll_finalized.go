package events

import "time"

const PayrollFinalizedTopic = "payroll.monthly.finalized.v1"

// PayrollFinalizedEvent is emitted after a monthly payroll upsert commits.
// Consumers render the payslip document from it.
type PayrollFinalizedEvent struct {
	EventType  string    `json:"event_type"`
	PayrollID  string    `json:"payroll_id"`
	EmployeeID string    `json:"employee_id"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	NetPay     string    `json:"net_pay"`
	OccurredAt time.Time `json:"occurred_at"`
}
