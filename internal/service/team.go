package service

import (
	"errors"

	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams. Team management is a
// super-administrator concern; handlers enforce the role.
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{repo: repo, validator: validator}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Active *bool  `json:"active,omitempty"`
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	team := &models.Team{Name: req.Name, Active: true}
	if req.Active != nil {
		team.Active = *req.Active
	}
	if err := s.repo.Create(team); err != nil {
		return nil, err
	}
	return team, nil
}

// GetByID retrieves a team
func (s *TeamService) GetByID(id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

// List retrieves all teams with pagination
func (s *TeamService) List(page, pageSize int) ([]models.Team, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	return s.repo.GetAll(pageSize, (page-1)*pageSize)
}

// Delete deletes a team
func (s *TeamService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
