package entity

const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

const (
	LeaveTypeSick      = "sick"
	LeaveTypeCasual    = "casual"
	LeaveTypeAnnual    = "annual"
	LeaveTypeMaternity = "maternity"
	LeaveTypeOther     = "other"
)

type LeaveRequest struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	AppliedOn  string `json:"appliedOn"`
}
