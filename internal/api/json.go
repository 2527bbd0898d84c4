package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hrms-dev/hrms_service/internal/controllers"
	"github.com/hrms-dev/hrms_service/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.deps.Logger.Error("Error encoding response", slog.String("error", err.Error()))
	}
}

func (s *Server) errorJSON(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// validationMessage picks the first validator error and translates it;
// anything else passes through as-is.
func (s *Server) validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Translate(s.translator)
	}

	return err.Error()
}

// handleControllerError maps the error taxonomy to the fixed status codes
// of the API contract. notFoundMsg keeps the per-collection wording.
func (s *Server) handleControllerError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, controllers.ErrValidation):
		s.errorJSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, controllers.ErrEmailExists):
		s.errorJSON(w, http.StatusConflict, "User with this email already exists")
	case errors.Is(err, controllers.ErrInvalidTransition):
		s.errorJSON(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrNotFound):
		s.errorJSON(w, http.StatusNotFound, notFoundMsg)
	default:
		s.errorJSON(w, http.StatusInternalServerError, "Something went wrong!")
	}
}
