package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user is inactive")
	ErrUserNotFound       = errors.New("user not found")
)

// UserRole representa o papel do usuário no sistema
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleBarber    UserRole = "barber"
	RoleAttendant UserRole = "attendant"
)

// User representa um usuário autenticável do sistema
type User struct {
	ID           uuid.UUID `json:"id"`
	TenantID     uuid.UUID `json:"tenant_id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"` // Nunca serializado
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
