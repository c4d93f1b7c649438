package models

import (
	"github.com/google/uuid"
)

// Exhibitor is a display unit assignable to shifts, independent of
// volunteer capacity. Deleting one that is still assigned is rejected.
type Exhibitor struct {
	BaseModel
	TeamID      uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"size:255" validate:"max=255"`
	Active      bool      `json:"active" gorm:"not null;default:true"`

	// Relationships
	Team   Team    `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Shifts []Shift `json:"shifts,omitempty" gorm:"many2many:shift_exhibitors"`
}

// TableName returns the table name for Exhibitor
func (Exhibitor) TableName() string {
	return "exhibitors"
}
