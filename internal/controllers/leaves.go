package controllers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrms-dev/hrms_service/internal/entity"
	"github.com/hrms-dev/hrms_service/internal/store"
)

type LeaveController struct {
	deps *Dependens
}

func NewLeaveController(deps *Dependens) *LeaveController {
	return &LeaveController{
		deps: deps,
	}
}

func (c *LeaveController) GetLeaves(ctx context.Context) ([]entity.LeaveRequest, error) {
	leaves, err := c.deps.Store.Leaves.List(ctx)
	if err != nil {
		c.deps.Logger.Error("Error listing leaves", slog.String("error", err.Error()))
		return nil, err
	}

	return leaves, nil
}

// CreateLeave defaults status to pending and appliedOn to today;
// caller-supplied values win over the defaults.
func (c *LeaveController) CreateLeave(ctx context.Context, lr entity.LeaveRequest) (*entity.LeaveRequest, error) {
	if lr.StartDate == "" || lr.EndDate == "" || lr.Reason == "" {
		c.deps.Logger.Warn("Required fields: startDate, endDate, reason")
		return nil, fmt.Errorf("%w: startDate, endDate and reason are required", ErrValidation)
	}

	if err := c.deps.checkEmployee(ctx, lr.EmployeeID); err != nil {
		c.deps.Logger.Warn("Leave validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	if lr.Status == "" {
		lr.Status = entity.LeavePending
	}
	if lr.AppliedOn == "" {
		lr.AppliedOn = store.Today()
	}

	lr.ID = store.NewID()

	if err := c.deps.Store.Leaves.Put(ctx, lr.ID, lr); err != nil {
		c.deps.Logger.Error("Error storing leave", slog.String("error", err.Error()))
		return nil, err
	}

	return &lr, nil
}

// UpdateLeaveStatus moves a pending request to approved or rejected. Both
// are terminal: re-patching a decided request fails with
// ErrInvalidTransition rather than silently overwriting the decision.
func (c *LeaveController) UpdateLeaveStatus(ctx context.Context, id, status string) (*entity.LeaveRequest, error) {
	if status != entity.LeaveApproved && status != entity.LeaveRejected {
		return nil, fmt.Errorf("%w: status must be approved or rejected", ErrValidation)
	}

	lr, err := c.deps.Store.Leaves.Get(ctx, id)
	if err != nil {
		c.deps.Logger.Warn("Leave request not found", slog.String("id", id))
		return nil, err
	}

	if lr.Status != entity.LeavePending {
		c.deps.Logger.Warn("Leave request already decided",
			slog.String("id", id), slog.String("status", lr.Status))
		return nil, fmt.Errorf("%w: leave request is already %s", ErrInvalidTransition, lr.Status)
	}

	lr.Status = status

	if err := c.deps.Store.Leaves.Put(ctx, id, lr); err != nil {
		c.deps.Logger.Error("Error updating leave", slog.String("error", err.Error()))
		return nil, err
	}

	return &lr, nil
}
