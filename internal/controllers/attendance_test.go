package controllers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms-dev/hrms_service/internal/entity"
	"github.com/hrms-dev/hrms_service/internal/store"
)

func TestAttendanceController_CreateAttendanceStatusDerivation(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    string
		status     string
		wantStatus string
	}{
		{
			name:       "before ten is present",
			checkIn:    "09:59",
			wantStatus: entity.AttendancePresent,
		},
		{
			name:       "ten sharp is late",
			checkIn:    "10:00",
			wantStatus: entity.AttendanceLate,
		},
		{
			name:       "after ten is late",
			checkIn:    "11:30",
			wantStatus: entity.AttendanceLate,
		},
		{
			name:       "no check-in is absent",
			checkIn:    "",
			wantStatus: entity.AttendanceAbsent,
		},
		{
			name:       "caller status wins",
			checkIn:    "11:30",
			status:     entity.AttendancePresent,
			wantStatus: entity.AttendancePresent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := CreateTestDependencies()
			SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)

			controller := NewAttendanceController(deps)

			created, err := controller.CreateAttendance(context.Background(), entity.AttendanceRecord{
				EmployeeID: "emp-1",
				CheckIn:    tt.checkIn,
				Status:     tt.status,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, created.Status)
			assert.Equal(t, store.Today(), created.Date)
		})
	}
}

func TestAttendanceController_CreateAttendanceUnknownEmployee(t *testing.T) {
	deps := CreateTestDependencies()
	controller := NewAttendanceController(deps)

	_, err := controller.CreateAttendance(context.Background(), entity.AttendanceRecord{
		EmployeeID: "ghost",
		CheckIn:    "09:00",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAttendanceController_CheckOut(t *testing.T) {
	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		wantHours float64
		wantHalf  bool
	}{
		{
			name:      "full day",
			checkIn:   "09:00",
			checkOut:  "17:30",
			wantHours: 8.5,
		},
		{
			name:      "short day downgrades to half-day",
			checkIn:   "09:00",
			checkOut:  "13:00",
			wantHours: 4,
			wantHalf:  true,
		},
		{
			name:      "delta rounds to a tenth",
			checkIn:   "09:00",
			checkOut:  "17:20",
			wantHours: 8.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := CreateTestDependencies()
			SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)

			controller := NewAttendanceController(deps)

			created, err := controller.CreateAttendance(context.Background(), entity.AttendanceRecord{
				EmployeeID: "emp-1",
				CheckIn:    tt.checkIn,
			})
			require.NoError(t, err)

			closed, err := controller.CheckOut(context.Background(), created.ID, tt.checkOut)
			require.NoError(t, err)

			assert.Equal(t, tt.checkOut, closed.CheckOut)
			assert.InDelta(t, tt.wantHours, closed.HoursWorked, 0.001)
			if tt.wantHalf {
				assert.Equal(t, entity.AttendanceHalfDay, closed.Status)
			} else {
				assert.Equal(t, entity.AttendancePresent, closed.Status)
			}
		})
	}
}

func TestAttendanceController_CheckOutTwiceRejected(t *testing.T) {
	deps := CreateTestDependencies()
	SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)

	controller := NewAttendanceController(deps)

	created, err := controller.CreateAttendance(context.Background(), entity.AttendanceRecord{
		EmployeeID: "emp-1",
		CheckIn:    "09:00",
	})
	require.NoError(t, err)

	_, err = controller.CheckOut(context.Background(), created.ID, "17:00")
	require.NoError(t, err)

	_, err = controller.CheckOut(context.Background(), created.ID, "18:00")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// The first checkout survives untouched.
	stored, err := deps.Store.Attendance.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "17:00", stored.CheckOut)
}

func TestAttendanceController_CheckOutEdgeCases(t *testing.T) {
	deps := CreateTestDependencies()
	SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)

	controller := NewAttendanceController(deps)

	t.Run("not found", func(t *testing.T) {
		_, err := controller.CheckOut(context.Background(), "missing", "17:00")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("no check-in", func(t *testing.T) {
		created, err := controller.CreateAttendance(context.Background(), entity.AttendanceRecord{EmployeeID: "emp-1"})
		require.NoError(t, err)

		_, err = controller.CheckOut(context.Background(), created.ID, "17:00")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("checkout before check-in", func(t *testing.T) {
		created, err := controller.CreateAttendance(context.Background(), entity.AttendanceRecord{
			EmployeeID: "emp-1",
			CheckIn:    "09:00",
		})
		require.NoError(t, err)

		_, err = controller.CheckOut(context.Background(), created.ID, "08:00")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("invalid clock", func(t *testing.T) {
		created, err := controller.CreateAttendance(context.Background(), entity.AttendanceRecord{
			EmployeeID: "emp-1",
			CheckIn:    "09:00",
		})
		require.NoError(t, err)

		_, err = controller.CheckOut(context.Background(), created.ID, "25:99")
		assert.ErrorIs(t, err, ErrValidation)
	})
}
