package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTenantIDRequired = errors.New("tenant_id is required")
	ErrNameRequired     = errors.New("name is required")
	ErrClientNotFound   = errors.New("client not found")
)

// Client representa um cliente da barbearia
type Client struct {
	ID        uuid.UUID  `json:"id"`
	TenantID  uuid.UUID  `json:"tenant_id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	IsVIP     bool       `json:"is_vip"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewClient cria um novo cliente validado
func NewClient(tenantID uuid.UUID, name, phone, email string, birthDate *time.Time, notes string) (*Client, error) {
	if tenantID == uuid.Nil {
		return nil, ErrTenantIDRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}

	now := time.Now()
	return &Client{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      name,
		Phone:     phone,
		Email:     email,
		BirthDate: birthDate,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
