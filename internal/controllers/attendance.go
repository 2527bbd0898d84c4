package controllers

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/hrms-dev/hrms_service/internal/entity"
	"github.com/hrms-dev/hrms_service/internal/store"
)

type AttendanceController struct {
	deps *Dependens
}

func NewAttendanceController(deps *Dependens) *AttendanceController {
	return &AttendanceController{
		deps: deps,
	}
}

func (c *AttendanceController) GetAttendance(ctx context.Context) ([]entity.AttendanceRecord, error) {
	records, err := c.deps.Store.Attendance.List(ctx)
	if err != nil {
		c.deps.Logger.Error("Error listing attendance", slog.String("error", err.Error()))
		return nil, err
	}

	return records, nil
}

// CreateAttendance records a check-in. When the caller does not supply a
// status it is derived from the check-in clock: before 10:00 is present,
// 10:00 or later is late; no check-in at all means absent.
func (c *AttendanceController) CreateAttendance(ctx context.Context, rec entity.AttendanceRecord) (*entity.AttendanceRecord, error) {
	if err := c.deps.checkEmployee(ctx, rec.EmployeeID); err != nil {
		c.deps.Logger.Warn("Attendance validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	if rec.Date == "" {
		rec.Date = store.Today()
	}

	if rec.Status == "" {
		if rec.CheckIn == "" {
			rec.Status = entity.AttendanceAbsent
		} else {
			hour, _, err := parseClock(rec.CheckIn)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid checkIn time %q", ErrValidation, rec.CheckIn)
			}

			if hour >= entity.LateCheckInHour {
				rec.Status = entity.AttendanceLate
			} else {
				rec.Status = entity.AttendancePresent
			}
		}
	}

	rec.ID = store.NewID()

	if err := c.deps.Store.Attendance.Put(ctx, rec.ID, rec); err != nil {
		c.deps.Logger.Error("Error storing attendance", slog.String("error", err.Error()))
		return nil, err
	}

	return &rec, nil
}

// CheckOut closes an attendance record: hours worked are the check-in to
// check-out delta rounded to a tenth, and a short day is downgraded to
// half-day whatever the check-in status was. A record can only be checked
// out once.
func (c *AttendanceController) CheckOut(ctx context.Context, id, checkOut string) (*entity.AttendanceRecord, error) {
	rec, err := c.deps.Store.Attendance.Get(ctx, id)
	if err != nil {
		c.deps.Logger.Warn("Attendance record not found", slog.String("id", id))
		return nil, err
	}

	if rec.CheckOut != "" {
		c.deps.Logger.Warn("Attendance already checked out", slog.String("id", id))
		return nil, fmt.Errorf("%w: record already checked out", ErrInvalidTransition)
	}

	if rec.CheckIn == "" {
		return nil, fmt.Errorf("%w: record has no check-in", ErrInvalidTransition)
	}

	inHour, inMin, err := parseClock(rec.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid checkIn time %q", ErrValidation, rec.CheckIn)
	}

	outHour, outMin, err := parseClock(checkOut)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid checkOut time %q", ErrValidation, checkOut)
	}

	minutes := (outHour*60 + outMin) - (inHour*60 + inMin)
	if minutes < 0 {
		return nil, fmt.Errorf("%w: checkOut before checkIn", ErrValidation)
	}

	rec.CheckOut = checkOut
	rec.HoursWorked = math.Round(float64(minutes)/60*10) / 10
	if rec.HoursWorked < entity.HalfDayHours {
		rec.Status = entity.AttendanceHalfDay
	}

	if err := c.deps.Store.Attendance.Put(ctx, id, rec); err != nil {
		c.deps.Logger.Error("Error updating attendance", slog.String("error", err.Error()))
		return nil, err
	}

	return &rec, nil
}

func parseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, err
	}

	return t.Hour(), t.Minute(), nil
}
