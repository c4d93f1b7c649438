package models

import (
	"github.com/google/uuid"
)

// Place is a physical location where shifts happen. Capacity bounds the
// simultaneous volunteers of a shift; when unset a shift never becomes full.
type Place struct {
	BaseModel
	TeamID         uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_places_team_name" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_places_team_name" validate:"required,min=1,max=100"`
	Address        string    `json:"address" gorm:"size:255" validate:"max=255"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	Capacity       *int      `json:"capacity,omitempty" validate:"omitempty,min=1"`
	ExhibitorCount *int      `json:"exhibitor_count,omitempty" validate:"omitempty,min=0"`
	Active         bool      `json:"active" gorm:"not null;default:true"`

	// Relationships
	Team   Team    `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Shifts []Shift `json:"shifts,omitempty" gorm:"foreignKey:PlaceID"`
}

// TableName returns the table name for Place
func (Place) TableName() string {
	return "places"
}
