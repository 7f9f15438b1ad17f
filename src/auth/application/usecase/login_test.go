package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/auth/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}

func newFakeRepo(t *testing.T, password string, active bool) (*fakeUserRepo, *entity.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:           uuid.New(),
		TenantID:     uuid.New(),
		Email:        "dono@barbearia.com",
		FullName:     "Dono da Barbearia",
		Role:         entity.RoleAdmin,
		PasswordHash: string(hash),
		IsActive:     active,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	return &fakeUserRepo{users: map[string]*entity.User{user.Email: user}}, user
}

func TestLogin(t *testing.T) {
	const secret = "test-secret"

	t.Run("credenciais corretas emitem token com claims", func(t *testing.T) {
		repo, user := newFakeRepo(t, "senha123", true)
		uc := NewLoginUseCase(repo, secret)

		resp, err := uc.Execute(context.Background(), &LoginRequest{
			Email:    user.Email,
			Password: "senha123",
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), resp.UserID)
		assert.Equal(t, user.TenantID.String(), resp.TenantID)
		assert.Equal(t, "admin", resp.Role)

		// Token assinado com o secret e carregando sub/tenant_id/role
		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, user.ID.String(), claims["sub"])
		assert.Equal(t, user.TenantID.String(), claims["tenant_id"])
		assert.Equal(t, "admin", claims["role"])
	})

	t.Run("senha errada retorna credenciais inválidas", func(t *testing.T) {
		repo, user := newFakeRepo(t, "senha123", true)
		uc := NewLoginUseCase(repo, secret)

		_, err := uc.Execute(context.Background(), &LoginRequest{
			Email:    user.Email,
			Password: "errada",
		})
		assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	})

	t.Run("email desconhecido retorna o mesmo erro genérico", func(t *testing.T) {
		repo, _ := newFakeRepo(t, "senha123", true)
		uc := NewLoginUseCase(repo, secret)

		_, err := uc.Execute(context.Background(), &LoginRequest{
			Email:    "ninguem@barbearia.com",
			Password: "senha123",
		})
		assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	})

	t.Run("usuário inativo não autentica", func(t *testing.T) {
		repo, user := newFakeRepo(t, "senha123", false)
		uc := NewLoginUseCase(repo, secret)

		_, err := uc.Execute(context.Background(), &LoginRequest{
			Email:    user.Email,
			Password: "senha123",
		})
		assert.ErrorIs(t, err, entity.ErrUserInactive)
	})
}
