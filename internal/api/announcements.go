package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

type createAnnouncementRequest struct {
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
}

func (s *Server) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	anns, err := s.Controllers.AnnouncementController.GetAnnouncements(r.Context())
	if err != nil {
		s.handleControllerError(w, err, "Announcement not found")
		return
	}

	s.writeJSON(w, http.StatusOK, anns)
}

func (s *Server) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req createAnnouncementRequest
	if err := s.readJSON(r, &req); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, s.validationMessage(err))
		return
	}

	a, err := s.Controllers.AnnouncementController.CreateAnnouncement(r.Context(), entity.Announcement{
		Title:    req.Title,
		Message:  req.Message,
		Date:     req.Date,
		Priority: req.Priority,
	})
	if err != nil {
		s.handleControllerError(w, err, "Announcement not found")
		return
	}

	s.writeJSON(w, http.StatusCreated, a)
}

func (s *Server) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := s.Controllers.AnnouncementController.DeleteAnnouncement(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleControllerError(w, err, "Announcement not found")
		return
	}

	s.writeJSON(w, http.StatusNoContent, nil)
}
