package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/account"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type AuthHandler struct {
	repo     domain.Repository
	secret   string
	tokenTTL time.Duration
	interval int
}

func NewAuthHandler(
	repo domain.Repository,
	secret string,
	tokenTTL time.Duration,
	interval int,
) *AuthHandler {
	return &AuthHandler{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
		interval: interval,
	}
}

// --------- Requests ---------

type StaffLoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	PIN   string `json:"pin" binding:"required,pin"`
}

type ClientLoginRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Phone string `json:"phone" binding:"required,phone"`
}

// --------- Handlers ---------

func (h *AuthHandler) StaffLogin(c *gin.Context) {
	var req StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	p, err := h.repo.FindProfessionalByEmail(c.Request.Context(), email)
	if err != nil {
		if domain.IsNotFound(err) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou PIN incorretos.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PINHash), []byte(req.PIN)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou PIN incorretos.")
		return
	}

	acc := account.FromProfessional(p, h.interval)
	token, err := middleware.IssueToken(acc, h.secret, h.tokenTTL)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"role":  acc.Role(),
		"professional": gin.H{
			"id":                p.ID,
			"name":              p.Name,
			"email":             p.Email,
			"phone":             p.Phone,
			"avatar_url":        p.AvatarURL,
			"schedule_is_valid": acc.Schedule != nil,
		},
	})
}

// ClientLogin identifies the client by phone; the first login creates it.
func (h *AuthHandler) ClientLogin(c *gin.Context) {
	var req ClientLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	client, err := h.repo.GetOrCreateClient(
		c.Request.Context(),
		strings.TrimSpace(req.Name),
		validators.NormalizePhone(req.Phone),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	acc := account.FromClient(client)
	token, err := middleware.IssueToken(acc, h.secret, h.tokenTTL)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"role":  acc.Role(),
		"client": gin.H{
			"id":    client.ID,
			"name":  client.Name,
			"phone": client.Phone,
		},
	})
}
