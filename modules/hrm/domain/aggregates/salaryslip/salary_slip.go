// Package salaryslip models the read-only payslip records.
package salaryslip

type Slip struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Month      string  `json:"month"`
	GrossPay   float64 `json:"grossPay"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `json:"netPay"`
	FileURL    string  `json:"fileUrl,omitempty"`
}

func (s Slip) EntityID() string { return s.ID }
