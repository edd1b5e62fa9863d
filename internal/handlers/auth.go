package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/demanda-dev/demanda/internal/auth"
	"github.com/demanda-dev/demanda/internal/models"
	"github.com/demanda-dev/demanda/internal/types"
	"github.com/demanda-dev/demanda/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user with a bcrypt hash of the password. No session
// is established here; the caller logs in separately.
func (h *Handler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Preencha tudo"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User

	err := h.db.Where("email = ?", req.Email).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "E-mail já cadastrado"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.logger.Error().Err(err).Msg("failed to check existing user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		h.logger.Error().Err(err).Msg("failed to hash password")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	}

	if err := h.db.Create(&user).Error; err != nil {
		h.logger.Error().Err(err).Msg("failed to create user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Usuário criado"})
}

// Login verifies the credentials and sets the session cookie. User lookup
// and password failures share one generic error so the response never
// reveals which field was wrong.
func (h *Handler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User

	err := h.db.Where("email = ?", req.Email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
			return
		}
		h.logger.Error().Err(err).Msg("failed to fetch user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
		return
	}

	token, err := h.codec.Sign(user.ID)

	if err != nil {
		h.logger.Error().Err(err).Msg("failed to sign session token")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	http.SetCookie(ctx.Writer, auth.SessionCookie(token, h.cfg.IsProduction()))

	ctx.JSON(http.StatusOK, gin.H{"message": "Login realizado"})
}

// Logout clears the session cookie. It succeeds whether or not a session
// existed.
func (h *Handler) Logout(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, auth.ExpiredSessionCookie(h.cfg.IsProduction()))

	ctx.JSON(http.StatusOK, gin.H{"message": "Logout realizado"})
}

// Me returns the acting user's profile.
func (h *Handler) Me(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return
	}

	var user models.User

	if err := h.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
			return
		}
		h.logger.Error().Err(err).Msg("failed to fetch user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}
