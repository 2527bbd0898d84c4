package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

type createUserRequest struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Phone      string  `json:"phone"`
	Avatar     string  `json:"avatar"`
	JoinDate   string  `json:"joinDate"`
	Salary     float64 `json:"salary"`
	Status     string  `json:"status"`
}

func (s *Server) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.Controllers.UserController.GetUsers(r.Context())
	if err != nil {
		s.handleControllerError(w, err, "User not found")
		return
	}

	s.writeJSON(w, http.StatusOK, users)
}

func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := s.readJSON(r, &req); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, s.validationMessage(err))
		return
	}

	user, err := s.Controllers.UserController.CreateUser(r.Context(), entity.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   &req.Password,
		Role:       req.Role,
		Department: req.Department,
		Position:   req.Position,
		Phone:      req.Phone,
		Avatar:     req.Avatar,
		JoinDate:   req.JoinDate,
		Salary:     req.Salary,
		Status:     req.Status,
	})
	if err != nil {
		s.handleControllerError(w, err, "User not found")
		return
	}

	s.writeJSON(w, http.StatusCreated, user)
}

func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var patch entity.UserPatch
	if err := s.readJSON(r, &patch); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.Controllers.UserController.UpdateUser(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		s.handleControllerError(w, err, "User not found")
		return
	}

	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.Controllers.UserController.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleControllerError(w, err, "User not found")
		return
	}

	s.writeJSON(w, http.StatusNoContent, nil)
}
