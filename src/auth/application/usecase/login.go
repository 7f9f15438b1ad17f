package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/auth/domain/entity"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/auth/domain/port"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// LoginRequest credenciais de acesso
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse token emitido e dados básicos do usuário
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	TenantID  string    `json:"tenant_id"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
}

// LoginUseCase autentica o usuário e emite um JWT com claims de tenant e papel
type LoginUseCase struct {
	userRepo  port.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewLoginUseCase cria uma nova instância do caso de uso
func NewLoginUseCase(userRepo port.UserRepository, jwtSecret string) *LoginUseCase {
	return &LoginUseCase{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  24 * time.Hour,
	}
}

// Execute valida as credenciais e retorna o token.
// Erros de credencial são sempre genéricos: não revelar se o email existe.
func (uc *LoginUseCase) Execute(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, entity.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(uc.tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       user.ID.String(),
		"tenant_id": user.TenantID.String(),
		"role":      string(user.Role),
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().Unix(),
	})

	signed, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, err
	}

	log.Printf("Login: usuário=%s, tenant=%s", user.ID, user.TenantID)

	return &LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		UserID:    user.ID.String(),
		TenantID:  user.TenantID.String(),
		FullName:  user.FullName,
		Role:      string(user.Role),
	}, nil
}
