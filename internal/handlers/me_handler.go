package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/account"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucProfessional "github.com/BruksfildServices01/salon-scheduler/internal/usecase/professional"
)

type MeHandler struct {
	repo   domain.Repository
	avatar *ucProfessional.UpdateAvatar // nil quando não há bucket configurado
}

func NewMeHandler(repo domain.Repository, avatar *ucProfessional.UpdateAvatar) *MeHandler {
	return &MeHandler{repo: repo, avatar: avatar}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	acc, ok := middleware.CurrentAccount(c)
	if !ok {
		httperr.Unauthorized(c, "account_not_in_context", "Faça login para continuar.")
		return
	}

	out := gin.H{
		"id":    account.Subject(acc),
		"role":  acc.Role(),
		"name":  acc.DisplayName(),
		"phone": acc.ContactPhone(),
	}

	if staff, ok := acc.(account.StaffAccount); ok {
		p, err := h.repo.GetProfessional(c.Request.Context(), staff.ProfessionalID)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		out["professional"] = toPublicProfessional(p)
		out["email"] = p.Email
	}

	c.JSON(http.StatusOK, out)
}

// UpdateAvatar takes a multipart "avatar" file or a raw image body.
func (h *MeHandler) UpdateAvatar(c *gin.Context) {
	if h.avatar == nil {
		httperr.Unavailable(c, "media_disabled", "Upload de imagens não está configurado.")
		return
	}

	staff := middleware.CurrentStaff(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxAvatarBytes+1<<20)

	body := c.Request.Body
	if fh, err := c.FormFile("avatar"); err == nil {
		f, err := fh.Open()
		if err != nil {
			httperr.BadRequest(c, "invalid_upload", "Arquivo inválido.")
			return
		}
		defer f.Close()
		body = f
	}

	p, err := h.avatar.Execute(c.Request.Context(), staff.ProfessionalID, body)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": p.AvatarURL})
}
