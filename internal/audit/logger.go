package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Writer persists one audit event.
type Writer interface {
	Write(ctx context.Context, ev Event) error
}

type Filter struct {
	ProfessionalID string // obrigatório
	Action         string
	Entity         string
	Limit          int
	Offset         int
}

// Store is a Writer that can also page through a professional's trail, newest first.
type Store interface {
	Writer
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ctx context.Context, ev Event) error {
	row := ev.toModel()
	return l.db.WithContext(ctx).Create(&row).Error
}

func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	// --------------------------------------------------
	// Query base (sempre protegido por profissional)
	// --------------------------------------------------
	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("professional_id = ?", f.ProfessionalID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (ev Event) toModel() models.AuditLog {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return models.AuditLog{
		ProfessionalID: ev.ProfessionalID,
		Actor:          ev.Actor,
		Action:         ev.Action,
		Entity:         ev.Entity,
		EntityID:       ev.EntityID,
		Metadata:       metaJSON,
	}
}

var (
	_ Store = (*Logger)(nil)
	_ Store = (*MemoryStore)(nil)
)
