// Package account models the signed-in user as a closed sum type: a client
// or a staff member. Only staff carry a PIN and a working schedule.
package account

import (
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
)

type Account interface {
	Role() Role
	DisplayName() string
	ContactPhone() string

	sealed()
}

type ClientAccount struct {
	ID    string
	Name  string
	Phone string
}

func (ClientAccount) Role() Role { return RoleClient }
func (a ClientAccount) DisplayName() string { return a.Name }
func (a ClientAccount) ContactPhone() string { return a.Phone }
func (ClientAccount) sealed() {}

type StaffAccount struct {
	ProfessionalID string
	Name           string
	Phone          string
	PINHash        string
	Schedule       *domain.Schedule
}

func (StaffAccount) Role() Role { return RoleStaff }
func (a StaffAccount) DisplayName() string { return a.Name }
func (a StaffAccount) ContactPhone() string { return a.Phone }
func (StaffAccount) sealed() {}

func FromClient(c *models.Client) ClientAccount {
	return ClientAccount{ID: c.ID, Name: c.Name, Phone: c.Phone}
}

// FromProfessional attaches the schedule when it is valid; a malformed one
// still yields an account so staff can sign in and fix it.
func FromProfessional(p *models.Professional, interval int) StaffAccount {
	acc := StaffAccount{
		ProfessionalID: p.ID,
		Name:           p.Name,
		Phone:          p.Phone,
		PINHash:        p.PINHash,
	}
	if s, err := domain.ScheduleFromProfessional(p, interval); err == nil {
		acc.Schedule = &s
	}
	return acc
}

// Subject is the stable identifier used as the token subject.
func Subject(a Account) string {
	switch v := a.(type) {
	case ClientAccount:
		return v.ID
	case StaffAccount:
		return v.ProfessionalID
	}
	return ""
}
