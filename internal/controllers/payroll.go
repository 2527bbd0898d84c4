package controllers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrms-dev/hrms_service/internal/entity"
	"github.com/hrms-dev/hrms_service/internal/store"
)

type PayrollController struct {
	deps *Dependens
}

func NewPayrollController(deps *Dependens) *PayrollController {
	return &PayrollController{
		deps: deps,
	}
}

func (c *PayrollController) GetPayroll(ctx context.Context) ([]entity.PayrollRecord, error) {
	records, err := c.deps.Store.Payroll.List(ctx)
	if err != nil {
		c.deps.Logger.Error("Error listing payroll", slog.String("error", err.Error()))
		return nil, err
	}

	return records, nil
}

// CreatePayroll computes netSalary from the pay components at creation
// time; status changes never recompute it.
func (c *PayrollController) CreatePayroll(ctx context.Context, pr entity.PayrollRecord) (*entity.PayrollRecord, error) {
	if pr.Month == "" || pr.Year == 0 {
		c.deps.Logger.Warn("Required fields: month, year")
		return nil, fmt.Errorf("%w: month and year are required", ErrValidation)
	}

	if err := c.deps.checkEmployee(ctx, pr.EmployeeID); err != nil {
		c.deps.Logger.Warn("Payroll validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	pr.NetSalary = pr.BasicSalary + pr.Bonus - pr.Deductions - pr.Tax

	if pr.Status == "" {
		pr.Status = entity.PayrollPending
	}

	pr.ID = store.NewID()

	if err := c.deps.Store.Payroll.Put(ctx, pr.ID, pr); err != nil {
		c.deps.Logger.Error("Error storing payroll", slog.String("error", err.Error()))
		return nil, err
	}

	return &pr, nil
}

// UpdatePayrollStatus advances the lifecycle one step: pending to
// processed, processed to paid. Skipping a step or leaving paid fails with
// ErrInvalidTransition. Entering paid stamps paidOn with today's date.
func (c *PayrollController) UpdatePayrollStatus(ctx context.Context, id, status string) (*entity.PayrollRecord, error) {
	pr, err := c.deps.Store.Payroll.Get(ctx, id)
	if err != nil {
		c.deps.Logger.Warn("Payroll record not found", slog.String("id", id))
		return nil, err
	}

	allowed := pr.Status == entity.PayrollPending && status == entity.PayrollProcessed ||
		pr.Status == entity.PayrollProcessed && status == entity.PayrollPaid
	if !allowed {
		c.deps.Logger.Warn("Illegal payroll transition",
			slog.String("id", id), slog.String("from", pr.Status), slog.String("to", status))
		return nil, fmt.Errorf("%w: cannot move payroll from %s to %s", ErrInvalidTransition, pr.Status, status)
	}

	pr.Status = status
	if status == entity.PayrollPaid {
		pr.PaidOn = store.Today()
	}

	if err := c.deps.Store.Payroll.Put(ctx, id, pr); err != nil {
		c.deps.Logger.Error("Error updating payroll", slog.String("error", err.Error()))
		return nil, err
	}

	return &pr, nil
}
