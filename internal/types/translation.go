package types

import (
	"time"

	"github.com/google/uuid"
)

// Translation is one key/value row. Unique on (key, locale, namespace_id);
// the row store never holds two values for the same key in one locale+namespace.
type Translation struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Key         string     `gorm:"column:key;not null;uniqueIndex:idx_translation_key_locale_ns,priority:1" json:"key"`
	Value       string     `gorm:"column:value;not null" json:"value"`
	Locale      string     `gorm:"column:locale;not null;index;uniqueIndex:idx_translation_key_locale_ns,priority:2" json:"locale"`
	Description string     `gorm:"column:description" json:"description"`
	NamespaceID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_translation_key_locale_ns,priority:3" json:"namespace_id"`
	Namespace   *Namespace `gorm:"constraint:OnDelete:CASCADE;foreignKey:NamespaceID;references:ID" json:"namespace,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Translation) TableName() string {
	return "translation"
}
