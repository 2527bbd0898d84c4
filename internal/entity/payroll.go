package entity

const (
	PayrollPending   = "pending"
	PayrollProcessed = "processed"
	PayrollPaid      = "paid"
)

type PayrollRecord struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employeeId"`
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	BasicSalary float64 `json:"basicSalary"`
	Bonus       float64 `json:"bonus"`
	Deductions  float64 `json:"deductions"`
	Tax         float64 `json:"tax"`
	NetSalary   float64 `json:"netSalary"`
	Status      string  `json:"status"`
	PaidOn      string  `json:"paidOn"`
}
