package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hrms-dev/hrms_service/internal/config"
	"github.com/hrms-dev/hrms_service/internal/store"
)

type Controllers struct {
	AuthController         *AuthController
	UserController         *UserController
	AttendanceController   *AttendanceController
	LeaveController        *LeaveController
	PayrollController      *PayrollController
	FileController         *FileController
	AnnouncementController *AnnouncementController
}

func NewControllers(deps *Dependens) *Controllers {
	return &Controllers{
		AuthController:         NewAuthController(deps),
		UserController:         NewUserController(deps),
		AttendanceController:   NewAttendanceController(deps),
		LeaveController:        NewLeaveController(deps),
		PayrollController:      NewPayrollController(deps),
		FileController:         NewFileController(deps),
		AnnouncementController: NewAnnouncementController(deps),
	}
}

// checkEmployee is the foreign-key check every dependent collection runs
// at creation time: the referenced user must exist.
func (d *Dependens) checkEmployee(ctx context.Context, employeeID string) error {
	if employeeID == "" {
		return fmt.Errorf("%w: employeeId is required", ErrValidation)
	}

	if _, err := d.Store.Users.Get(ctx, employeeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: unknown employee %q", ErrValidation, employeeID)
		}
		return err
	}

	return nil
}

type Dependens struct {
	Store *store.Store

	// Redis is only used for the logout denylist and may be nil, in which
	// case tokens stay valid until they expire.
	Redis interface {
		Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
		Get(ctx context.Context, key string) *redis.StringCmd
		Del(ctx context.Context, keys ...string) *redis.IntCmd
	}
	Logger *slog.Logger
	Config *config.Config
}
