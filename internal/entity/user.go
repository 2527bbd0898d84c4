package entity

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

type User struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   *string `json:"password,omitempty"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Phone      string  `json:"phone"`
	Avatar     string  `json:"avatar"`
	JoinDate   string  `json:"joinDate"`
	Salary     float64 `json:"salary"`
	Status     string  `json:"status"`
}

// UserPatch carries a partial update. Nil fields are left untouched,
// a non-nil Password is re-hashed before storage.
type UserPatch struct {
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	Password   *string  `json:"password"`
	Role       *string  `json:"role"`
	Department *string  `json:"department"`
	Position   *string  `json:"position"`
	Phone      *string  `json:"phone"`
	Avatar     *string  `json:"avatar"`
	JoinDate   *string  `json:"joinDate"`
	Salary     *float64 `json:"salary"`
	Status     *string  `json:"status"`
}
