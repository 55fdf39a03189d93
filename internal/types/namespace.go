package types

import (
	"time"

	"github.com/google/uuid"
)

type Namespace struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null;uniqueIndex:idx_namespace_name_project,priority:1" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_namespace_name_project,priority:2" json:"project_id"`
	Project     *Project  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"project,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Namespace) TableName() string {
	return "namespace"
}
