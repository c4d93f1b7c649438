package repository

import (
	"errors"

	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceRepository handles database operations for places.
// All reads are scoped to the caller's effective team.
type PlaceRepository struct {
	db *gorm.DB
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// Create creates a new place
func (r *PlaceRepository) Create(place *models.Place) error {
	if err := r.db.Create(place).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrPlaceNameExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a place by ID within a team
func (r *PlaceRepository) GetByID(teamID, id uuid.UUID) (*models.Place, error) {
	var place models.Place
	err := r.db.First(&place, "team_id = ? AND id = ?", teamID, id).Error
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// GetByTeamID retrieves all places for a team with pagination
func (r *PlaceRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Place, int64, error) {
	var places []models.Place
	var total int64

	if err := r.db.Model(&models.Place{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("team_id = ?", teamID).Limit(limit).Offset(offset).Order("name").Find(&places).Error
	if err != nil {
		return nil, 0, err
	}

	return places, total, nil
}

// Update updates a place
func (r *PlaceRepository) Update(place *models.Place) error {
	return r.db.Save(place).Error
}

// Delete deletes a place within a team
func (r *PlaceRepository) Delete(teamID, id uuid.UUID) error {
	return r.db.Delete(&models.Place{}, "team_id = ? AND id = ?", teamID, id).Error
}
