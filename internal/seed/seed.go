package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hrms-dev/hrms_service/internal/entity"
	"github.com/hrms-dev/hrms_service/internal/store"
)

type seedUser struct {
	entity.User
	plaintext string
}

func defaultUsers() []seedUser {
	return []seedUser{
		{User: entity.User{ID: "admin-1", Name: "Sarah Johnson", Email: "admin@hrms.com", Role: entity.RoleAdmin, Department: "Management", Position: "HR Director", Phone: "+1 (555) 100-0001", Avatar: "👩‍💼", JoinDate: "2020-01-15", Salary: 95000, Status: entity.UserStatusActive}, plaintext: "admin123"},
		{User: entity.User{ID: "emp-1", Name: "James Wilson", Email: "james@hrms.com", Role: entity.RoleEmployee, Department: "Engineering", Position: "Senior Developer", Phone: "+1 (555) 200-0001", Avatar: "👨‍💻", JoinDate: "2021-03-10", Salary: 78000, Status: entity.UserStatusActive}, plaintext: "emp123"},
		{User: entity.User{ID: "emp-2", Name: "Emily Chen", Email: "emily@hrms.com", Role: entity.RoleEmployee, Department: "Design", Position: "UI/UX Designer", Phone: "+1 (555) 200-0002", Avatar: "👩‍🎨", JoinDate: "2021-06-22", Salary: 72000, Status: entity.UserStatusActive}, plaintext: "emp123"},
		{User: entity.User{ID: "emp-3", Name: "Michael Brown", Email: "michael@hrms.com", Role: entity.RoleEmployee, Department: "Marketing", Position: "Marketing Manager", Phone: "+1 (555) 200-0003", Avatar: "👨‍💼", JoinDate: "2020-09-01", Salary: 68000, Status: entity.UserStatusActive}, plaintext: "emp123"},
		{User: entity.User{ID: "emp-4", Name: "Sophia Martinez", Email: "sophia@hrms.com", Role: entity.RoleEmployee, Department: "Finance", Position: "Financial Analyst", Phone: "+1 (555) 200-0004", Avatar: "👩‍💻", JoinDate: "2022-01-12", Salary: 65000, Status: entity.UserStatusActive}, plaintext: "emp123"},
		{User: entity.User{ID: "emp-5", Name: "David Lee", Email: "david@hrms.com", Role: entity.RoleEmployee, Department: "Engineering", Position: "DevOps Engineer", Phone: "+1 (555) 200-0005", Avatar: "🧑‍💻", JoinDate: "2022-04-18", Salary: 82000, Status: entity.UserStatusActive}, plaintext: "emp123"},
		{User: entity.User{ID: "emp-6", Name: "Olivia Taylor", Email: "olivia@hrms.com", Role: entity.RoleEmployee, Department: "Human Resources", Position: "HR Specialist", Phone: "+1 (555) 200-0006", Avatar: "👩", JoinDate: "2021-11-05", Salary: 58000, Status: entity.UserStatusInactive}, plaintext: "emp123"},
	}
}

func defaultLeaves() []entity.LeaveRequest {
	return []entity.LeaveRequest{
		{ID: "lv-1", EmployeeID: "emp-1", Type: entity.LeaveTypeSick, StartDate: "2024-12-20", EndDate: "2024-12-22", Reason: "Flu and fever", Status: entity.LeaveApproved, AppliedOn: "2024-12-18"},
		{ID: "lv-2", EmployeeID: "emp-2", Type: entity.LeaveTypeAnnual, StartDate: "2025-01-05", EndDate: "2025-01-10", Reason: "Family vacation", Status: entity.LeavePending, AppliedOn: "2024-12-28"},
		{ID: "lv-3", EmployeeID: "emp-3", Type: entity.LeaveTypeCasual, StartDate: "2024-12-15", EndDate: "2024-12-15", Reason: "Personal work", Status: entity.LeaveApproved, AppliedOn: "2024-12-12"},
		{ID: "lv-4", EmployeeID: "emp-4", Type: entity.LeaveTypeSick, StartDate: "2025-01-02", EndDate: "2025-01-03", Reason: "Dental surgery", Status: entity.LeavePending, AppliedOn: "2024-12-30"},
		{ID: "lv-5", EmployeeID: "emp-5", Type: entity.LeaveTypeAnnual, StartDate: "2025-02-01", EndDate: "2025-02-07", Reason: "International travel", Status: entity.LeavePending, AppliedOn: "2025-01-10"},
		{ID: "lv-6", EmployeeID: "emp-1", Type: entity.LeaveTypeCasual, StartDate: "2025-01-15", EndDate: "2025-01-15", Reason: "Moving to new apartment", Status: entity.LeaveRejected, AppliedOn: "2025-01-10"},
	}
}

func defaultFiles() []entity.UploadedFile {
	return []entity.UploadedFile{
		{ID: "file-1", EmployeeID: "emp-1", Name: "resume_james.pdf", Type: "application/pdf", Size: "245 KB", Category: entity.FileCategoryResume, UploadedOn: "2021-03-10"},
		{ID: "file-2", EmployeeID: "emp-1", Name: "id_proof_james.jpg", Type: "image/jpeg", Size: "1.2 MB", Category: entity.FileCategoryIDProof, UploadedOn: "2021-03-10"},
		{ID: "file-3", EmployeeID: "emp-2", Name: "resume_emily.pdf", Type: "application/pdf", Size: "198 KB", Category: entity.FileCategoryResume, UploadedOn: "2021-06-22"},
		{ID: "file-4", EmployeeID: "emp-3", Name: "contract_michael.pdf", Type: "application/pdf", Size: "512 KB", Category: entity.FileCategoryContract, UploadedOn: "2020-09-01"},
		{ID: "file-5", EmployeeID: "emp-4", Name: "certificate_sophia.pdf", Type: "application/pdf", Size: "389 KB", Category: entity.FileCategoryCertificate, UploadedOn: "2022-01-12"},
	}
}

func defaultAnnouncements() []entity.Announcement {
	return []entity.Announcement{
		{ID: "ann-1", Title: "Holiday Notice", Message: "Office will remain closed on Dec 25th and Jan 1st for Christmas and New Year celebrations. Enjoy the holidays!", Date: "2024-12-20", Priority: entity.PriorityHigh},
		{ID: "ann-2", Title: "Annual Performance Review", Message: "Annual performance reviews will begin from January 15th. Please prepare your self-assessment forms.", Date: "2025-01-05", Priority: entity.PriorityMedium},
		{ID: "ann-3", Title: "New Health Insurance Plan", Message: "We have partnered with a new health insurance provider. Check your email for enrollment details.", Date: "2025-01-02", Priority: entity.PriorityMedium},
		{ID: "ann-4", Title: "Team Building Event", Message: "Join us for the quarterly team building event on Feb 10th at Central Park. Lunch will be provided.", Date: "2025-01-20", Priority: entity.PriorityLow},
	}
}

var months = []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}

// generateAttendance writes records for the recent fifteen calendar days,
// weekends skipped.
func generateAttendance(employees []string) []entity.AttendanceRecord {
	var records []entity.AttendanceRecord
	statuses := []string{
		entity.AttendancePresent, entity.AttendancePresent, entity.AttendancePresent,
		entity.AttendanceLate, entity.AttendancePresent, entity.AttendanceHalfDay,
	}

	today := time.Now()
	for d := 0; d < 15; d++ {
		date := today.AddDate(0, 0, -d)
		if date.Weekday() == time.Sunday || date.Weekday() == time.Saturday {
			continue
		}
		dateStr := date.Format("2006-01-02")

		for _, empID := range employees {
			status := statuses[rand.Intn(len(statuses))]
			if d == 0 && empID == "emp-6" {
				status = entity.AttendanceAbsent
			}

			checkInHour := 9
			if status == entity.AttendanceLate {
				checkInHour = 10
			}
			checkInMin := rand.Intn(30)

			hours := 8 + rand.Float64()
			switch status {
			case entity.AttendanceHalfDay:
				hours = 4
			case entity.AttendanceAbsent:
				hours = 0
			}

			rec := entity.AttendanceRecord{
				ID:          fmt.Sprintf("att-%s-%s", empID, dateStr),
				EmployeeID:  empID,
				Date:        dateStr,
				Status:      status,
				HoursWorked: float64(int(hours*10)) / 10,
			}
			if status != entity.AttendanceAbsent {
				rec.CheckIn = fmt.Sprintf("%02d:%02d", checkInHour, checkInMin)
				rec.CheckOut = fmt.Sprintf("%02d:%02d", checkInHour+int(hours), rand.Intn(59))
			}

			records = append(records, rec)
		}
	}

	return records
}

// generatePayroll creates three months of payroll per employee: the
// current month pending, the previous two paid.
func generatePayroll(users []seedUser) []entity.PayrollRecord {
	var records []entity.PayrollRecord
	now := time.Now()

	for _, u := range users {
		if u.Role != entity.RoleEmployee {
			continue
		}

		for m := 0; m < 3; m++ {
			monthIndex := (int(now.Month()) - 1 - m + 12) % 12
			year := now.Year()
			if int(now.Month())-1-m < 0 {
				year--
			}

			basic := u.Salary / 12
			bonus := float64(rand.Intn(500))
			deductions := float64(int(basic * 0.05))
			tax := float64(int(basic * 0.15))

			rec := entity.PayrollRecord{
				ID:          fmt.Sprintf("pay-%s-%d-%d", u.ID, year, monthIndex),
				EmployeeID:  u.ID,
				Month:       months[monthIndex],
				Year:        year,
				BasicSalary: float64(int(basic + 0.5)),
				Bonus:       bonus,
				Deductions:  deductions,
				Tax:         tax,
				NetSalary:   float64(int(basic + bonus - deductions - tax + 0.5)),
				Status:      entity.PayrollPaid,
			}
			if m == 0 {
				rec.Status = entity.PayrollPending
			} else {
				rec.PaidOn = fmt.Sprintf("%d-%02d-28", year, monthIndex+1)
			}

			records = append(records, rec)
		}
	}

	return records
}

// Seed populates an empty store with the default dataset. A store that
// already holds users is left untouched.
func Seed(ctx context.Context, st *store.Store, logger *slog.Logger) error {
	existing, err := st.Users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("Store already seeded", slog.Int("users", len(existing)))
		return nil
	}

	users := defaultUsers()

	var employeeIDs []string
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.plaintext), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		hashStr := string(hash)
		u.User.Password = &hashStr
		if err := st.Users.Put(ctx, u.ID, u.User); err != nil {
			return err
		}

		if u.Role == entity.RoleEmployee {
			employeeIDs = append(employeeIDs, u.ID)
		}
	}

	for _, rec := range generateAttendance(employeeIDs) {
		if err := st.Attendance.Put(ctx, rec.ID, rec); err != nil {
			return err
		}
	}

	for _, lr := range defaultLeaves() {
		if err := st.Leaves.Put(ctx, lr.ID, lr); err != nil {
			return err
		}
	}

	for _, pr := range generatePayroll(users) {
		if err := st.Payroll.Put(ctx, pr.ID, pr); err != nil {
			return err
		}
	}

	for _, f := range defaultFiles() {
		if err := st.Files.Put(ctx, f.ID, f); err != nil {
			return err
		}
	}

	for _, a := range defaultAnnouncements() {
		if err := st.Announcements.Put(ctx, a.ID, a); err != nil {
			return err
		}
	}

	logger.Info("Store seeded with default dataset", slog.Int("users", len(users)))
	return nil
}
