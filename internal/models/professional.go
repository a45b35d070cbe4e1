package models

import "time"

// Professional é o barbeiro/cabeleireiro; o expediente fica na própria linha.
type Professional struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	PINHash string `gorm:"size:255;not null" json:"-"`

	AvatarURL     string `gorm:"size:255" json:"avatar_url"`
	Address       string `gorm:"size:255" json:"address"`
	OperatingDays string `gorm:"size:100" json:"operating_days"`
	Specialties   string `gorm:"size:255" json:"specialties"`

	WorkStart  string `gorm:"size:5;not null" json:"work_start"`
	WorkEnd    string `gorm:"size:5;not null" json:"work_end"`
	BreakStart string `gorm:"size:5;not null" json:"break_start"`
	BreakEnd   string `gorm:"size:5;not null" json:"break_end"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
