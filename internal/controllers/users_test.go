package controllers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrms-dev/hrms_service/internal/entity"
	"github.com/hrms-dev/hrms_service/internal/store"
)

func TestUserController_CreateUser(t *testing.T) {
	tests := []struct {
		name        string
		user        entity.User
		expectError error
	}{
		{
			name: "valid user with defaults",
			user: entity.User{Name: "Jane Doe", Email: "jane@hrms.com", Password: StringPtr("secret123")},
		},
		{
			name:        "missing name",
			user:        entity.User{Email: "jane@hrms.com", Password: StringPtr("secret123")},
			expectError: ErrValidation,
		},
		{
			name:        "missing email",
			user:        entity.User{Name: "Jane Doe", Password: StringPtr("secret123")},
			expectError: ErrValidation,
		},
		{
			name:        "missing password",
			user:        entity.User{Name: "Jane Doe", Email: "jane@hrms.com"},
			expectError: ErrValidation,
		},
		{
			name:        "empty password",
			user:        entity.User{Name: "Jane Doe", Email: "jane@hrms.com", Password: StringPtr("")},
			expectError: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := CreateTestDependencies()
			controller := NewUserController(deps)

			created, err := controller.CreateUser(context.Background(), tt.user)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, created)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, created)
			assert.True(t, strings.HasPrefix(created.ID, "id-"))
			assert.Equal(t, entity.RoleEmployee, created.Role)
			assert.Equal(t, entity.UserStatusActive, created.Status)
			assert.Nil(t, created.Password)

			// The stored record keeps the hash, not the plaintext.
			stored, err := deps.Store.Users.Get(context.Background(), created.ID)
			require.NoError(t, err)
			require.NotNil(t, stored.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.Password), []byte("secret123")))
		})
	}
}

func TestUserController_CreateUserDuplicateEmail(t *testing.T) {
	deps := CreateTestDependencies()
	SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)

	controller := NewUserController(deps)

	_, err := controller.CreateUser(context.Background(), entity.User{
		Name:     "Another James",
		Email:    "james@hrms.com",
		Password: StringPtr("secret123"),
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserController_GetUsersStripsPasswords(t *testing.T) {
	deps := CreateTestDependencies()
	SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)
	SeedTestUser(t, deps, "emp-2", "emily@hrms.com", "emp123", entity.RoleEmployee)

	controller := NewUserController(deps)

	users, err := controller.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	for _, u := range users {
		assert.Nil(t, u.Password)
	}
}

func TestUserController_UpdateUser(t *testing.T) {
	deps := CreateTestDependencies()
	seeded := SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)

	controller := NewUserController(deps)

	updated, err := controller.UpdateUser(context.Background(), "emp-1", entity.UserPatch{
		Department: StringPtr("Platform"),
		Salary:     Float64Ptr(90000),
	})
	require.NoError(t, err)

	assert.Equal(t, "Platform", updated.Department)
	assert.Equal(t, float64(90000), updated.Salary)
	assert.Nil(t, updated.Password)

	// Unpatched fields survive, including the password hash.
	stored, err := deps.Store.Users.Get(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, seeded.Name, stored.Name)
	assert.Equal(t, seeded.Email, stored.Email)
	require.NotNil(t, stored.Password)
	assert.Equal(t, *seeded.Password, *stored.Password)
}

func TestUserController_UpdateUserRehashesPassword(t *testing.T) {
	deps := CreateTestDependencies()
	seeded := SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)

	controller := NewUserController(deps)

	_, err := controller.UpdateUser(context.Background(), "emp-1", entity.UserPatch{
		Password: StringPtr("new-password"),
	})
	require.NoError(t, err)

	stored, err := deps.Store.Users.Get(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, stored.Password)
	assert.NotEqual(t, *seeded.Password, *stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.Password), []byte("new-password")))
}

func TestUserController_UpdateUserNotFound(t *testing.T) {
	deps := CreateTestDependencies()
	controller := NewUserController(deps)

	_, err := controller.UpdateUser(context.Background(), "missing", entity.UserPatch{Name: StringPtr("X")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserController_DeleteUser(t *testing.T) {
	deps := CreateTestDependencies()
	SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)

	controller := NewUserController(deps)

	require.NoError(t, controller.DeleteUser(context.Background(), "emp-1"))
	assert.ErrorIs(t, controller.DeleteUser(context.Background(), "emp-1"), store.ErrNotFound)
}

func TestUserController_DeleteUserLeavesDependents(t *testing.T) {
	deps := CreateTestDependencies()
	SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)

	lr := entity.LeaveRequest{ID: "lv-1", EmployeeID: "emp-1", Type: entity.LeaveTypeSick,
		StartDate: "2025-03-01", EndDate: "2025-03-02", Reason: "flu", Status: entity.LeavePending, AppliedOn: "2025-02-28"}
	require.NoError(t, deps.Store.Leaves.Put(context.Background(), lr.ID, lr))

	controller := NewUserController(deps)
	require.NoError(t, controller.DeleteUser(context.Background(), "emp-1"))

	// Dependent records keep their employeeId; deletion never cascades.
	kept, err := deps.Store.Leaves.Get(context.Background(), "lv-1")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", kept.EmployeeID)
}
