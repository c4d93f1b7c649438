package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift is a bookable time slot at a place for a team. The (date, time
// range, place) tuple is unique; state is derived from the assigned
// volunteer count and the place capacity.
type Shift struct {
	BaseModel
	TeamID    uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	PlaceID   uuid.UUID  `json:"place_id" gorm:"type:uuid;not null;uniqueIndex:idx_shifts_slot" validate:"required"`
	Date      time.Time  `json:"date" gorm:"type:date;not null;uniqueIndex:idx_shifts_slot" validate:"required"`
	TimeRange TimeRange  `json:"time_range" gorm:"not null;uniqueIndex:idx_shifts_slot"`
	State     ShiftState `json:"state" gorm:"type:varchar(20);not null;default:'free'"`

	// Relationships
	Team       Team        `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Place      Place       `json:"place,omitempty" gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
	Volunteers []User      `json:"volunteers,omitempty" gorm:"many2many:shift_volunteers;constraint:OnDelete:CASCADE"`
	Exhibitors []Exhibitor `json:"exhibitors,omitempty" gorm:"many2many:shift_exhibitors"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// StartInstant combines the calendar date with the range start. Dates are
// local, no time zone conversion happens.
func (s *Shift) StartInstant() time.Time {
	start := s.TimeRange.StartMinutes()
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), start/60, start%60, 0, 0, s.Date.Location())
}

// DateOnly truncates a timestamp to its calendar date, keeping the location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StateFor derives the shift state from a volunteer count and an optional
// place capacity. With capacity unset a shift oscillates between free and
// occupied only.
func StateFor(volunteerCount int, capacity *int) ShiftState {
	if volunteerCount == 0 {
		return ShiftStateFree
	}
	if capacity != nil && volunteerCount >= *capacity {
		return ShiftStateFull
	}
	return ShiftStateOccupied
}
