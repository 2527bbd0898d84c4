package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

type createLeaveRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Type       string `json:"type"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
	Status     string `json:"status"`
	AppliedOn  string `json:"appliedOn"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) GetLeaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := s.Controllers.LeaveController.GetLeaves(r.Context())
	if err != nil {
		s.handleControllerError(w, err, "Leave request not found")
		return
	}

	s.writeJSON(w, http.StatusOK, leaves)
}

func (s *Server) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req createLeaveRequest
	if err := s.readJSON(r, &req); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, s.validationMessage(err))
		return
	}

	lr, err := s.Controllers.LeaveController.CreateLeave(r.Context(), entity.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     req.Status,
		AppliedOn:  req.AppliedOn,
	})
	if err != nil {
		s.handleControllerError(w, err, "Leave request not found")
		return
	}

	s.writeJSON(w, http.StatusCreated, lr)
}

func (s *Server) UpdateLeaveStatus(w http.ResponseWriter, r *http.Request) {
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

	lr, err := s.Controllers.LeaveController.UpdateLeaveStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		s.handleControllerError(w, err, "Leave request not found")
		return
	}

	s.writeJSON(w, http.StatusOK, lr)
}
