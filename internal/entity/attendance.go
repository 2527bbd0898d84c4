package entity

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceHalfDay = "half-day"
)

// LateCheckInHour is the first check-in hour that counts as late.
const LateCheckInHour = 10

// HalfDayHours is the worked-hours threshold below which a checkout
// downgrades the record to half-day.
const HalfDayHours = 5.0

type AttendanceRecord struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employeeId"`
	Date        string  `json:"date"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	Status      string  `json:"status"`
	HoursWorked float64 `json:"hoursWorked"`
}
