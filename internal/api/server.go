package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/hrms-dev/hrms_service/internal/controllers"
	"github.com/hrms-dev/hrms_service/internal/entity"
)

type Server struct {
	deps        *controllers.Dependens
	Controllers *controllers.Controllers

	validate   *validator.Validate
	translator ut.Translator
}

func NewServer(deps *controllers.Dependens) (*Server, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Server{
		deps:        deps,
		Controllers: controllers.NewControllers(deps),
		validate:    validate,
		translator:  trans,
	}, nil
}

// RegisterRoutes mounts the API contract on the router. Paths, methods
// and status codes are stable; clients depend on them verbatim.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.AuthLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.auth)

			r.Post("/auth/logout", s.AuthLogout)

			r.Get("/users", s.GetUsers)
			r.With(s.requireAdmin).Post("/users", s.CreateUser)
			r.With(s.requireAdmin).Put("/users/{id}", s.UpdateUser)
			r.With(s.requireAdmin).Delete("/users/{id}", s.DeleteUser)

			r.Get("/attendance", s.GetAttendance)
			r.Post("/attendance", s.CreateAttendance)
			r.Patch("/attendance/{id}/checkout", s.CheckOutAttendance)

			r.Get("/leaves", s.GetLeaves)
			r.Post("/leaves", s.CreateLeave)
			r.With(s.requireAdmin).Patch("/leaves/{id}/status", s.UpdateLeaveStatus)

			r.Get("/payroll", s.GetPayroll)
			r.With(s.requireAdmin).Post("/payroll", s.CreatePayroll)
			r.With(s.requireAdmin).Patch("/payroll/{id}/status", s.UpdatePayrollStatus)

			r.Get("/files", s.GetFiles)
			r.Post("/files", s.CreateFile)
			r.Delete("/files/{id}", s.DeleteFile)

			r.Get("/announcements", s.GetAnnouncements)
			r.With(s.requireAdmin).Post("/announcements", s.CreateAnnouncement)
			r.With(s.requireAdmin).Delete("/announcements/{id}", s.DeleteAnnouncement)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		s.errorJSON(w, http.StatusNotFound, "Route not found")
	})
}

// AuthLogin authenticates a user and returns the stripped user record
// plus a session token.
func (s *Server) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req entity.LoginRequest
	if err := s.readJSON(r, &req); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, s.validationMessage(err))
		return
	}

	user, token, err := s.Controllers.AuthController.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	s.writeJSON(w, http.StatusOK, entity.LoginResponse{
		User:  user,
		Token: token,
	})
}

// AuthLogout denylists the presented token when Redis is configured;
// otherwise the client simply discards it.
func (s *Server) AuthLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.Controllers.AuthController.Logout(r.Context(), r.Header.Get("Authorization")); err != nil {
		s.deps.Logger.Error("Error logging out", slog.String("error", err.Error()))
		s.errorJSON(w, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
