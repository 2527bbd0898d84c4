package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

type createFileRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Type       string `json:"type"`
	Size       string `json:"size"`
	Category   string `json:"category"`
	UploadedOn string `json:"uploadedOn"`
	DataURL    string `json:"dataUrl"`
}

func (s *Server) GetFiles(w http.ResponseWriter, r *http.Request) {
	files, err := s.Controllers.FileController.GetFiles(r.Context())
	if err != nil {
		s.handleControllerError(w, err, "File not found")
		return
	}

	s.writeJSON(w, http.StatusOK, files)
}

func (s *Server) CreateFile(w http.ResponseWriter, r *http.Request) {
	var req createFileRequest
	if err := s.readJSON(r, &req); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, s.validationMessage(err))
		return
	}

	f, err := s.Controllers.FileController.CreateFile(r.Context(), entity.UploadedFile{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Type:       req.Type,
		Size:       req.Size,
		Category:   req.Category,
		UploadedOn: req.UploadedOn,
		DataURL:    req.DataURL,
	})
	if err != nil {
		s.handleControllerError(w, err, "File not found")
		return
	}

	s.writeJSON(w, http.StatusCreated, f)
}

// DeleteFile is allowed to the owning employee or any admin.
func (s *Server) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	claims := ClaimsFromContext(r.Context())
	if claims != nil && claims.Role != entity.RoleAdmin {
		f, err := s.Controllers.FileController.GetFile(r.Context(), id)
		if err != nil {
			s.handleControllerError(w, err, "File not found")
			return
		}

		if f.EmployeeID != claims.UserID {
			s.errorJSON(w, http.StatusForbidden, "Insufficient permissions")
			return
		}
	}

	if err := s.Controllers.FileController.DeleteFile(r.Context(), id); err != nil {
		s.handleControllerError(w, err, "File not found")
		return
	}

	s.writeJSON(w, http.StatusNoContent, nil)
}
