package store

import (
	"context"
	"errors"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

// ErrNotFound is returned when no record exists under the requested
// identifier.
var ErrNotFound = errors.New("record not found")

// Collection is a single identifier-keyed record set. List returns records
// in insertion order; Put inserts a new record at the end or replaces an
// existing one in place.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Put(ctx context.Context, id string, rec T) error
	Delete(ctx context.Context, id string) error
}

// Store aggregates the six collections of the record store. All backends
// expose the same behavior; callers never see which one is wired in.
type Store struct {
	Users         Collection[entity.User]
	Attendance    Collection[entity.AttendanceRecord]
	Leaves        Collection[entity.LeaveRequest]
	Payroll       Collection[entity.PayrollRecord]
	Files         Collection[entity.UploadedFile]
	Announcements Collection[entity.Announcement]
}

// Collection key space shared by the redis and postgres backends. The
// names are the persisted keys of the original client-side store.
const (
	KeyUsers         = "hr_users"
	KeyAttendance    = "hr_attendance"
	KeyLeaves        = "hr_leaves"
	KeyPayroll       = "hr_payroll"
	KeyFiles         = "hr_files"
	KeyAnnouncements = "hr_announcements"
)
