package types

import (
	"time"

	"github.com/google/uuid"
)

// Locale is global, not project-scoped. At most one row carries IsDefault,
// enforced by LocaleService (demote-then-promote on every default change).
type Locale struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code       string    `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	NativeName string    `gorm:"column:native_name;not null" json:"native_name"`
	IsDefault  bool      `gorm:"column:is_default;not null;default:false" json:"is_default"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Locale) TableName() string {
	return "locale"
}
