package testutils

import (
	"fmt"
	"time"

	"turnos-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique name so suites can create several teams freely
		Name:   "Equipo " + id.String()[:8],
		Active: true,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// PlaceFactory provides methods to create test Place data
type PlaceFactory struct{}

// NewPlaceFactory creates a new PlaceFactory
func NewPlaceFactory() *PlaceFactory {
	return &PlaceFactory{}
}

// Create creates a test Place with default values
func (f *PlaceFactory) Create(teamID uuid.UUID) *models.Place {
	id := uuid.New()
	return &models.Place{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:  teamID,
		Name:    "Plaza " + id.String()[:8],
		Address: "Calle Mayor 1",
		Active:  true,
	}
}

// WithCapacity sets the volunteer capacity for the place
func (f *PlaceFactory) WithCapacity(teamID uuid.UUID, capacity int) *models.Place {
	place := f.Create(teamID)
	place.Capacity = &capacity
	return place
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create(teamID uuid.UUID) *models.User {
	id := uuid.New()
	email := fmt.Sprintf("user-%s@test.com", id.String()[:8])
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: teamID,
		Name:   "Voluntario " + id.String()[:8],
		Email:  &email,
		Role:   models.RoleVoluntario,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(teamID uuid.UUID, role models.Role) *models.User {
	user := f.Create(teamID)
	user.Role = role
	return user
}

// WithoutEmail clears the email, like a grupo child account
func (f *UserFactory) WithoutEmail(teamID uuid.UUID) *models.User {
	user := f.Create(teamID)
	user.Email = nil
	return user
}

// ExhibitorFactory provides methods to create test Exhibitor data
type ExhibitorFactory struct{}

// NewExhibitorFactory creates a new ExhibitorFactory
func NewExhibitorFactory() *ExhibitorFactory {
	return &ExhibitorFactory{}
}

// Create creates a test Exhibitor with default values
func (f *ExhibitorFactory) Create(teamID uuid.UUID) *models.Exhibitor {
	id := uuid.New()
	return &models.Exhibitor{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: teamID,
		Name:   "Expositor " + id.String()[:8],
		Active: true,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team      *TeamFactory
	Place     *PlaceFactory
	User      *UserFactory
	Exhibitor *ExhibitorFactory
	Shift     *ShiftFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:      NewTeamFactory(),
		Place:     NewPlaceFactory(),
		User:      NewUserFactory(),
		Exhibitor: NewExhibitorFactory(),
		Shift:     NewShiftFactory(),
	}
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test Shift on the given slot
func (f *ShiftFactory) Create(teamID, placeID uuid.UUID, date time.Time, timeRange string) *models.Shift {
	tr, err := models.ParseTimeRange(timeRange)
	if err != nil {
		panic(fmt.Sprintf("invalid time range in factory: %v", err))
	}
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:    teamID,
		PlaceID:   placeID,
		Date:      models.DateOnly(date),
		TimeRange: tr,
		State:     models.ShiftStateFree,
	}
}
