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

// PlaceService handles business logic for places
type PlaceService struct {
	repo      repository.PlaceRepositoryInterface
	validator *validator.Validate
}

// NewPlaceService creates a new place service
func NewPlaceService(repo repository.PlaceRepositoryInterface, validator *validator.Validate) *PlaceService {
	return &PlaceService{repo: repo, validator: validator}
}

// CreatePlaceRequest represents the request to create a place
type CreatePlaceRequest struct {
	Name           string     `json:"name" validate:"required,min=1,max=100"`
	Address        string     `json:"address" validate:"max=255"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	Capacity       *int       `json:"capacity,omitempty" validate:"omitempty,min=1"`
	ExhibitorCount *int       `json:"exhibitor_count,omitempty" validate:"omitempty,min=0"`
	TeamID         *uuid.UUID `json:"team_id,omitempty"`
}

// UpdatePlaceRequest represents a partial place update
type UpdatePlaceRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address        *string  `json:"address,omitempty" validate:"omitempty,max=255"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Capacity       *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	ExhibitorCount *int     `json:"exhibitor_count,omitempty" validate:"omitempty,min=0"`
	Active         *bool    `json:"active,omitempty"`
}

// Create creates a new place in the caller's effective team
func (s *PlaceService) Create(p auth.Principal, req *CreatePlaceRequest) (*models.Place, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	place := &models.Place{
		TeamID:         EffectiveTeam(p, req.TeamID),
		Name:           req.Name,
		Address:        req.Address,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Capacity:       req.Capacity,
		ExhibitorCount: req.ExhibitorCount,
		Active:         true,
	}
	if err := s.repo.Create(place); err != nil {
		return nil, err
	}
	return place, nil
}

// GetByID retrieves a place in the caller's effective team
func (s *PlaceService) GetByID(p auth.Principal, id uuid.UUID, requestedTeam *uuid.UUID) (*models.Place, error) {
	place, err := s.repo.GetByID(EffectiveTeam(p, requestedTeam), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlaceNotFound
		}
		return nil, err
	}
	return place, nil
}

// List retrieves the places of the caller's effective team
func (s *PlaceService) List(p auth.Principal, requestedTeam *uuid.UUID, page, pageSize int) ([]models.Place, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	return s.repo.GetByTeamID(EffectiveTeam(p, requestedTeam), pageSize, (page-1)*pageSize)
}

// Update applies a partial update to a place
func (s *PlaceService) Update(p auth.Principal, id uuid.UUID, req *UpdatePlaceRequest, requestedTeam *uuid.UUID) (*models.Place, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	place, err := s.GetByID(p, id, requestedTeam)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		place.Name = *req.Name
	}
	if req.Address != nil {
		place.Address = *req.Address
	}
	if req.Latitude != nil {
		place.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		place.Longitude = req.Longitude
	}
	if req.Capacity != nil {
		place.Capacity = req.Capacity
	}
	if req.ExhibitorCount != nil {
		place.ExhibitorCount = req.ExhibitorCount
	}
	if req.Active != nil {
		place.Active = *req.Active
	}
	if err := s.repo.Update(place); err != nil {
		return nil, err
	}
	return place, nil
}

// Delete removes a place from the caller's effective team
func (s *PlaceService) Delete(p auth.Principal, id uuid.UUID, requestedTeam *uuid.UUID) error {
	if _, err := s.GetByID(p, id, requestedTeam); err != nil {
		return err
	}
	return s.repo.Delete(EffectiveTeam(p, requestedTeam), id)
}
