package professional

import (
	"context"
	"io"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AvatarUploader interface {
	Upload(ctx context.Context, professionalID string, data []byte) (string, error)
}

type UpdateAvatar struct {
	repo     domain.Repository
	uploader AvatarUploader
	audit    *audit.Dispatcher
}

func NewUpdateAvatar(
	repo domain.Repository,
	uploader AvatarUploader,
	audit *audit.Dispatcher,
) *UpdateAvatar {
	return &UpdateAvatar{
		repo:     repo,
		uploader: uploader,
		audit:    audit,
	}
}

func (uc *UpdateAvatar) Execute(
	ctx context.Context,
	professionalID string,
	image io.Reader,
) (*models.Professional, error) {

	p, err := uc.repo.GetProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	data, err := media.ProcessAvatar(image)
	if err != nil {
		return nil, err
	}

	url, err := uc.uploader.Upload(ctx, p.ID, data)
	if err != nil {
		return nil, err
	}

	p.AvatarURL = url
	if err := uc.repo.UpdateProfessional(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: p.ID,
		Actor:          "staff:" + p.ID,
		Action:         audit.ActionAvatarUpdated,
		Entity:         "professional",
		EntityID:       p.ID,
		Metadata:       map[string]string{"url": url},
	})

	return p, nil
}
