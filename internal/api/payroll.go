package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

type createPayrollRequest struct {
	EmployeeID  string  `json:"employeeId" validate:"required"`
	Month       string  `json:"month" validate:"required"`
	Year        int     `json:"year" validate:"required"`
	BasicSalary float64 `json:"basicSalary"`
	Bonus       float64 `json:"bonus"`
	Deductions  float64 `json:"deductions"`
	Tax         float64 `json:"tax"`
}

func (s *Server) GetPayroll(w http.ResponseWriter, r *http.Request) {
	records, err := s.Controllers.PayrollController.GetPayroll(r.Context())
	if err != nil {
		s.handleControllerError(w, err, "Payroll record not found")
		return
	}

	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) CreatePayroll(w http.ResponseWriter, r *http.Request) {
	var req createPayrollRequest
	if err := s.readJSON(r, &req); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, s.validationMessage(err))
		return
	}

	pr, err := s.Controllers.PayrollController.CreatePayroll(r.Context(), entity.PayrollRecord{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: req.BasicSalary,
		Bonus:       req.Bonus,
		Deductions:  req.Deductions,
		Tax:         req.Tax,
	})
	if err != nil {
		s.handleControllerError(w, err, "Payroll record not found")
		return
	}

	s.writeJSON(w, http.StatusCreated, pr)
}

func (s *Server) UpdatePayrollStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := s.readJSON(r, &req); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, s.validationMessage(err))
		return
	}

	pr, err := s.Controllers.PayrollController.UpdatePayrollStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		s.handleControllerError(w, err, "Payroll record not found")
		return
	}

	s.writeJSON(w, http.StatusOK, pr)
}
