package service

import (
	"errors"

	"turnos-backend/internal/auth"
	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExhibitorService handles business logic for exhibitors
type ExhibitorService struct {
	repo      repository.ExhibitorRepositoryInterface
	validator *validator.Validate
}

// NewExhibitorService creates a new exhibitor service
func NewExhibitorService(repo repository.ExhibitorRepositoryInterface, validator *validator.Validate) *ExhibitorService {
	return &ExhibitorService{repo: repo, validator: validator}
}

// CreateExhibitorRequest represents the request to create an exhibitor
type CreateExhibitorRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"max=255"`
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
}

// Create creates a new exhibitor in the caller's effective team
func (s *ExhibitorService) Create(p auth.Principal, req *CreateExhibitorRequest) (*models.Exhibitor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	exhibitor := &models.Exhibitor{
		TeamID:      EffectiveTeam(p, req.TeamID),
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if err := s.repo.Create(exhibitor); err != nil {
		return nil, err
	}
	return exhibitor, nil
}

// GetByID retrieves an exhibitor in the caller's effective team
func (s *ExhibitorService) GetByID(p auth.Principal, id uuid.UUID, requestedTeam *uuid.UUID) (*models.Exhibitor, error) {
	exhibitor, err := s.repo.GetByID(EffectiveTeam(p, requestedTeam), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExhibitorNotFound
		}
		return nil, err
	}
	return exhibitor, nil
}

// List retrieves the exhibitors of the caller's effective team
func (s *ExhibitorService) List(p auth.Principal, requestedTeam *uuid.UUID, page, pageSize int) ([]models.Exhibitor, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	return s.repo.GetByTeamID(EffectiveTeam(p, requestedTeam), pageSize, (page-1)*pageSize)
}

// Delete removes an exhibitor; rejected while shifts still reference it
func (s *ExhibitorService) Delete(p auth.Principal, id uuid.UUID, requestedTeam *uuid.UUID) error {
	if _, err := s.GetByID(p, id, requestedTeam); err != nil {
		return err
	}
	return s.repo.Delete(EffectiveTeam(p, requestedTeam), id)
}
