package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Smart-Agenda-Pro/SmartAgenda/src/auth/application/usecase"
	"github.com/Smart-Agenda-Pro/SmartAgenda/src/auth/domain/entity"

	"github.com/gin-gonic/gin"
)

// AuthController maneja as requisições HTTP de autenticação
type AuthController struct {
	loginUC *usecase.LoginUseCase
}

// NewAuthController cria uma nova instância do controlador
func NewAuthController(loginUC *usecase.LoginUseCase) *AuthController {
	return &AuthController{
		loginUC: loginUC,
	}
}

// RegisterRoutes registra as rotas públicas de autenticação
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", c.Login)
	}

	log.Println("Rotas Auth disponíveis:")
	log.Println("  POST   /api/v1/auth/login")
}

// Login autentica o usuário e retorna o token JWT
func (c *AuthController) Login(ctx *gin.Context) {
	var req usecase.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := c.loginUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidCredentials):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou senha inválidos"})
		case errors.Is(err, entity.ErrUserInactive):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Usuário inativo"})
		default:
			log.Printf("Erro no login: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing login"})
		}
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
