package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

type createAttendanceRequest struct {
	EmployeeID  string  `json:"employeeId" validate:"required"`
	Date        string  `json:"date"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	Status      string  `json:"status"`
	HoursWorked float64 `json:"hoursWorked"`
}

type checkOutRequest struct {
	CheckOut string `json:"checkOut" validate:"required"`
}

func (s *Server) GetAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := s.Controllers.AttendanceController.GetAttendance(r.Context())
	if err != nil {
		s.handleControllerError(w, err, "Attendance record not found")
		return
	}

	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req createAttendanceRequest
	if err := s.readJSON(r, &req); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, s.validationMessage(err))
		return
	}

	rec, err := s.Controllers.AttendanceController.CreateAttendance(r.Context(), entity.AttendanceRecord{
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Status:      req.Status,
		HoursWorked: req.HoursWorked,
	})
	if err != nil {
		s.handleControllerError(w, err, "Attendance record not found")
		return
	}

	s.writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) CheckOutAttendance(w http.ResponseWriter, r *http.Request) {
	var req checkOutRequest
	if err := s.readJSON(r, &req); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, s.validationMessage(err))
		return
	}

	rec, err := s.Controllers.AttendanceController.CheckOut(r.Context(), chi.URLParam(r, "id"), req.CheckOut)
	if err != nil {
		s.handleControllerError(w, err, "Attendance record not found")
		return
	}

	s.writeJSON(w, http.StatusOK, rec)
}
