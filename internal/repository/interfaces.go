package repository

import (
	"time"

	"turnos-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// PlaceRepositoryInterface defines the interface for place repository operations
type PlaceRepositoryInterface interface {
	Create(place *models.Place) error
	GetByID(teamID, id uuid.UUID) (*models.Place, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Place, int64, error)
	Update(place *models.Place) error
	Delete(teamID, id uuid.UUID) error
}

// ExhibitorRepositoryInterface defines the interface for exhibitor repository operations
type ExhibitorRepositoryInterface interface {
	Create(exhibitor *models.Exhibitor) error
	GetByID(teamID, id uuid.UUID) (*models.Exhibitor, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Exhibitor, int64, error)
	Update(exhibitor *models.Exhibitor) error
	Delete(teamID, id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(teamID, id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetWithPairingHints(teamID, id uuid.UUID) (*models.User, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(teamID, id uuid.UUID) error
}

// ShiftRepositoryInterface defines the interface for the shift slot store
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(teamID, id uuid.UUID) (*models.Shift, error)
	GetWithAssignments(teamID, id uuid.UUID) (*models.Shift, error)
	List(teamID uuid.UUID, placeID *uuid.UUID, from, to *time.Time, limit, offset int) ([]models.Shift, int64, error)
	SlotExists(teamID, placeID uuid.UUID, date time.Time, timeRange models.TimeRange) (bool, error)
	AssignVolunteer(teamID, shiftID, userID uuid.UUID) (*models.Shift, error)
	UnassignVolunteer(teamID, shiftID, userID uuid.UUID) (*models.Shift, error)
	AssignExhibitor(teamID, shiftID, exhibitorID uuid.UUID) error
	UnassignExhibitor(teamID, shiftID, exhibitorID uuid.UUID) error
	Delete(teamID, id uuid.UUID) error
	ListStartingBetween(from, to time.Time) ([]models.Shift, error)
}

// NotificationConfigRepositoryInterface defines per-user reminder toggle storage
type NotificationConfigRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.NotificationConfig, error)
	Upsert(config *models.NotificationConfig) error
}

// SentNotificationRepositoryInterface is the dedup ledger
type SentNotificationRepositoryInterface interface {
	RecordAttempt(entry *models.SentNotification) error
	HasBeenSent(shiftID, userID uuid.UUID, kind models.OffsetKind) (bool, error)
	GetByShiftID(shiftID uuid.UUID) ([]models.SentNotification, error)
}
