package models

import (
	"github.com/google/uuid"
)

// User is a volunteer, administrator or grouped child account. Email and
// password are nullable because child accounts of a grupo user never log in.
// AlwaysWithID/NeverWithID are advisory pairing hints for the assigning
// administrator; assignment never enforces them.
type User struct {
	BaseModel
	TeamID         uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Email          *string    `json:"email,omitempty" gorm:"size:255;uniqueIndex" validate:"omitempty,email"`
	PasswordHash   *string    `json:"-" gorm:"size:255"`
	Role           Role       `json:"role" gorm:"type:varchar(20);not null;default:'voluntario'" validate:"required"`
	HasCar         *bool      `json:"has_car,omitempty"`
	MonthlyTarget  *int       `json:"monthly_target,omitempty" validate:"omitempty,min=0"`
	AlwaysWithID   *uuid.UUID `json:"always_with_id,omitempty" gorm:"type:uuid"`
	NeverWithID    *uuid.UUID `json:"never_with_id,omitempty" gorm:"type:uuid"`

	// Relationships
	Team       Team   `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	AlwaysWith *User  `json:"always_with,omitempty" gorm:"foreignKey:AlwaysWithID"`
	NeverWith  *User  `json:"never_with,omitempty" gorm:"foreignKey:NeverWithID"`
	Shifts     []Shift `json:"shifts,omitempty" gorm:"many2many:shift_volunteers"`

	NotificationConfig *NotificationConfig `json:"notification_config,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
