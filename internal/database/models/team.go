package models

// Team is the tenant boundary: every place, shift, exhibitor and user
// belongs to exactly one team.
type Team struct {
	BaseModel
	Name   string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Active bool   `json:"active" gorm:"not null;default:true"`

	// Relationships
	Places     []Place     `json:"places,omitempty" gorm:"foreignKey:TeamID"`
	Users      []User      `json:"users,omitempty" gorm:"foreignKey:TeamID"`
	Exhibitors []Exhibitor `json:"exhibitors,omitempty" gorm:"foreignKey:TeamID"`
	Shifts     []Shift     `json:"shifts,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
