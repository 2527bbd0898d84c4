package controllers

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/hrms-dev/hrms_service/internal/entity"
	"github.com/hrms-dev/hrms_service/internal/store"
)

type UserController struct {
	deps *Dependens
}

func NewUserController(deps *Dependens) *UserController {
	return &UserController{
		deps: deps,
	}
}

func (c *UserController) GetUsers(ctx context.Context) ([]entity.User, error) {
	users, err := c.deps.Store.Users.List(ctx)
	if err != nil {
		c.deps.Logger.Error("Error listing users", slog.String("error", err.Error()))
		return nil, err
	}

	for i := range users {
		users[i].Password = nil
	}

	return users, nil
}

// CreateUser expects a plaintext password on the incoming record and
// stores the bcrypt hash. Email uniqueness is enforced here only; updates
// do not re-check it.
func (c *UserController) CreateUser(ctx context.Context, user entity.User) (*entity.User, error) {
	if user.Name == "" || user.Email == "" || user.Password == nil || *user.Password == "" {
		c.deps.Logger.Warn("Required fields: name, email, password")
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	users, err := c.deps.Store.Users.List(ctx)
	if err != nil {
		c.deps.Logger.Error("Error listing users", slog.String("error", err.Error()))
		return nil, err
	}

	for i := range users {
		if users[i].Email == user.Email {
			c.deps.Logger.Warn("User already exists", slog.String("email", user.Email))
			return nil, ErrEmailExists
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(*user.Password), bcrypt.DefaultCost)
	if err != nil {
		c.deps.Logger.Error("Error hashing password", slog.String("error", err.Error()))
		return nil, err
	}

	hash := string(passwordHash)
	user.Password = &hash
	user.ID = store.NewID()

	if user.Role == "" {
		user.Role = entity.RoleEmployee
	}
	if user.Status == "" {
		user.Status = entity.UserStatusActive
	}

	if err := c.deps.Store.Users.Put(ctx, user.ID, user); err != nil {
		c.deps.Logger.Error("Error storing user", slog.String("error", err.Error()))
		return nil, err
	}

	user.Password = nil

	return &user, nil
}

// UpdateUser merges non-nil patch fields over the stored record. A patch
// password is re-hashed, never stored in plaintext.
func (c *UserController) UpdateUser(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	user, err := c.deps.Store.Users.Get(ctx, id)
	if err != nil {
		c.deps.Logger.Warn("User not found", slog.String("id", id))
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil && *patch.Password != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			c.deps.Logger.Error("Error hashing password", slog.String("error", err.Error()))
			return nil, err
		}

		hash := string(passwordHash)
		user.Password = &hash
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Department != nil {
		user.Department = *patch.Department
	}
	if patch.Position != nil {
		user.Position = *patch.Position
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.JoinDate != nil {
		user.JoinDate = *patch.JoinDate
	}
	if patch.Salary != nil {
		user.Salary = *patch.Salary
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}

	if err := c.deps.Store.Users.Put(ctx, id, user); err != nil {
		c.deps.Logger.Error("Error updating user", slog.String("error", err.Error()))
		return nil, err
	}

	user.Password = nil

	return &user, nil
}

// DeleteUser removes the user only. Dependent attendance, leave, payroll
// and file records keep their employeeId and are left orphaned.
func (c *UserController) DeleteUser(ctx context.Context, id string) error {
	if err := c.deps.Store.Users.Delete(ctx, id); err != nil {
		c.deps.Logger.Warn("User not found", slog.String("id", id))
		return err
	}

	return nil
}
