package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// MemoryRepository keeps everything in process. It backs STORAGE_DRIVER=memory
// and the tests. A single RWMutex serializes writers, which makes the
// check-then-insert in CreateAppointment atomic.
type MemoryRepository struct {
	mu sync.RWMutex

	professionals map[string]models.Professional
	services      map[string]models.Service
	clients       map[string]models.Client // by phone
	appointments  map[string]models.Appointment
	active        map[domain.SlotKey]string // slot -> appointment id
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		professionals: make(map[string]models.Professional),
		services:      make(map[string]models.Service),
		clients:       make(map[string]models.Client),
		appointments:  make(map[string]models.Appointment),
		active:        make(map[domain.SlotKey]string),
	}
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (r *MemoryRepository) PutProfessional(p models.Professional) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.professionals[p.ID] = p
}

func (r *MemoryRepository) PutService(s models.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[s.ID] = s
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *MemoryRepository) GetProfessional(
	_ context.Context,
	id string,
) (*models.Professional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.professionals[id]
	if !ok || !p.Active {
		return nil, domain.ErrProfessionalNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) FindProfessionalByEmail(
	_ context.Context,
	email string,
) (*models.Professional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.professionals {
		if p.Active && strings.EqualFold(p.Email, email) {
			return &p, nil
		}
	}
	return nil, domain.ErrProfessionalNotFound
}

func (r *MemoryRepository) ListProfessionals(
	_ context.Context,
) ([]models.Professional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Professional, 0, len(r.professionals))
	for _, p := range r.professionals {
		if p.Active {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *MemoryRepository) UpdateProfessional(
	_ context.Context,
	p *models.Professional,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.professionals[p.ID]
	if !ok {
		return domain.ErrProfessionalNotFound
	}
	cur.Name = p.Name
	cur.Phone = p.Phone
	cur.AvatarURL = p.AvatarURL
	cur.WorkStart = p.WorkStart
	cur.WorkEnd = p.WorkEnd
	cur.BreakStart = p.BreakStart
	cur.BreakEnd = p.BreakEnd
	cur.UpdatedAt = time.Now()
	r.professionals[p.ID] = cur
	return nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *MemoryRepository) ListServices(
	_ context.Context,
	activeOnly bool,
) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		if activeOnly && !s.Active {
			continue
		}
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *MemoryRepository) GetServices(
	_ context.Context,
	ids []string,
) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		if s, ok := r.services[id]; ok && s.Active {
			found = append(found, s)
		}
	}
	return orderServices(found, ids)
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *MemoryRepository) GetOrCreateClient(
	_ context.Context,
	name string,
	phone string,
) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[phone]; ok {
		return &c, nil
	}

	now := time.Now()
	c := models.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.clients[phone] = c
	return &c, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *MemoryRepository) CreateAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.KeyOf(ap)
	if _, taken := r.active[key]; taken && domain.IsActive(domain.Status(ap.Status)) {
		return fmt.Errorf("%w: %s already booked", domain.ErrSlotConflict, ap.StartTime)
	}

	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	now := time.Now()
	ap.CreatedAt = now
	ap.UpdatedAt = now

	r.appointments[ap.ID] = cloneAppointment(*ap)
	if domain.IsActive(domain.Status(ap.Status)) {
		r.active[key] = ap.ID
	}
	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *MemoryRepository) GetAppointment(
	_ context.Context,
	id string,
) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	out := cloneAppointment(ap)
	return &out, nil
}

func (r *MemoryRepository) UpdateAppointmentStatus(
	_ context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.appointments[ap.ID]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	if domain.Status(cur.Status) != from {
		return fmt.Errorf("%w: status changed concurrently", domain.ErrInvalidTransition)
	}

	cur.Status = ap.Status
	cur.CancelledAt = ap.CancelledAt
	cur.CompletedAt = ap.CompletedAt
	cur.UpdatedAt = time.Now()
	r.appointments[ap.ID] = cur

	key := domain.KeyOf(&cur)
	if !domain.IsActive(domain.Status(cur.Status)) && r.active[key] == cur.ID {
		delete(r.active, key)
	}
	return nil
}

// --------------------------------------------------
// Roster
// --------------------------------------------------

func (r *MemoryRepository) ListAppointmentsForDay(
	_ context.Context,
	professionalID string,
	date string,
) ([]models.Appointment, error) {
	return r.filter(
		func(ap *models.Appointment) bool {
			return ap.ProfessionalID == professionalID && ap.Date == date
		},
		func(a, b *models.Appointment) bool { return a.StartTime < b.StartTime },
	), nil
}

func (r *MemoryRepository) ListAppointmentsForClient(
	_ context.Context,
	clientID string,
) ([]models.Appointment, error) {
	return r.filter(
		func(ap *models.Appointment) bool { return ap.ClientID == clientID },
		func(a, b *models.Appointment) bool {
			if a.Date != b.Date {
				return a.Date > b.Date
			}
			return a.StartTime > b.StartTime
		},
	), nil
}

func (r *MemoryRepository) filter(
	keep func(*models.Appointment) bool,
	less func(a, b *models.Appointment) bool,
) []models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if keep(&ap) {
			out = append(out, cloneAppointment(ap))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}

func cloneAppointment(ap models.Appointment) models.Appointment {
	ap.Services = append([]models.Service(nil), ap.Services...)
	return ap
}

var _ domain.Repository = (*MemoryRepository)(nil)
