package audit

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// MemoryStore keeps audit rows in process, oldest first.
type MemoryStore struct {
	mu   sync.Mutex
	seq  uint
	rows []models.AuditLog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Write(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	row := ev.toModel()
	row.ID = m.seq
	row.CreatedAt = time.Now()
	m.rows = append(m.rows, row)
	return nil
}

func (m *MemoryStore) List(_ context.Context, f Filter) ([]models.AuditLog, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := make([]models.AuditLog, 0)
	for i := len(m.rows) - 1; i >= 0; i-- {
		row := m.rows[i]
		if row.ProfessionalID != f.ProfessionalID {
			continue
		}
		if f.Action != "" && row.Action != f.Action {
			continue
		}
		if f.Entity != "" && row.Entity != f.Entity {
			continue
		}
		matched = append(matched, row)
	}

	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}
