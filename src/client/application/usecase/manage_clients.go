package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/client/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/client/domain/port"

	"github.com/google/uuid"
)

// SaveClientRequest cria ou atualiza um cliente
type SaveClientRequest struct {
	Name      string     `json:"name" binding:"required"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	IsVIP     *bool      `json:"is_vip,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// ManageClientsUseCase concentra o CRUD e a busca de clientes
type ManageClientsUseCase struct {
	clientRepo port.ClientRepository
}

// NewManageClientsUseCase cria uma nova instância do caso de uso
func NewManageClientsUseCase(clientRepo port.ClientRepository) *ManageClientsUseCase {
	return &ManageClientsUseCase{
		clientRepo: clientRepo,
	}
}

// Create cria um novo cliente
func (uc *ManageClientsUseCase) Create(ctx context.Context, tenantID uuid.UUID, req *SaveClientRequest) (*entity.Client, error) {
	client, err := entity.NewClient(tenantID, req.Name, req.Phone, req.Email, req.BirthDate, req.Notes)
	if err != nil {
		return nil, err
	}
	if req.IsVIP != nil {
		client.IsVIP = *req.IsVIP
	}

	if err := uc.clientRepo.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("error creating client: %w", err)
	}

	return client, nil
}

// Update atualiza um cliente existente
func (uc *ManageClientsUseCase) Update(ctx context.Context, tenantID, clientID uuid.UUID, req *SaveClientRequest) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByID(ctx, tenantID, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, entity.ErrNameRequired
	}

	client.Name = req.Name
	client.Phone = req.Phone
	client.Email = req.Email
	client.BirthDate = req.BirthDate
	client.Notes = req.Notes
	if req.IsVIP != nil {
		client.IsVIP = *req.IsVIP
	}

	if err := uc.clientRepo.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("error updating client: %w", err)
	}

	return client, nil
}

// List retorna todos os clientes do tenant
func (uc *ManageClientsUseCase) List(ctx context.Context, tenantID uuid.UUID) ([]*entity.Client, error) {
	return uc.clientRepo.ListByTenant(ctx, tenantID)
}

// Search busca clientes por nome ou telefone. Termo com menos de 2
// caracteres retorna vazio; resultado limitado a 10, como na tela do PDV.
func (uc *ManageClientsUseCase) Search(ctx context.Context, tenantID uuid.UUID, term string) ([]*entity.Client, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < 2 {
		return []*entity.Client{}, nil
	}
	return uc.clientRepo.Search(ctx, tenantID, term, 10)
}
