package repository

import (
	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExhibitorRepository handles database operations for exhibitors
type ExhibitorRepository struct {
	db *gorm.DB
}

// NewExhibitorRepository creates a new exhibitor repository
func NewExhibitorRepository(db *gorm.DB) *ExhibitorRepository {
	return &ExhibitorRepository{db: db}
}

// Create creates a new exhibitor
func (r *ExhibitorRepository) Create(exhibitor *models.Exhibitor) error {
	return r.db.Create(exhibitor).Error
}

// GetByID retrieves an exhibitor by ID within a team
func (r *ExhibitorRepository) GetByID(teamID, id uuid.UUID) (*models.Exhibitor, error) {
	var exhibitor models.Exhibitor
	err := r.db.First(&exhibitor, "team_id = ? AND id = ?", teamID, id).Error
	if err != nil {
		return nil, err
	}
	return &exhibitor, nil
}

// GetByTeamID retrieves all exhibitors for a team with pagination
func (r *ExhibitorRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Exhibitor, int64, error) {
	var exhibitors []models.Exhibitor
	var total int64

	if err := r.db.Model(&models.Exhibitor{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("team_id = ?", teamID).Limit(limit).Offset(offset).Order("name").Find(&exhibitors).Error
	if err != nil {
		return nil, 0, err
	}

	return exhibitors, total, nil
}

// Update updates an exhibitor
func (r *ExhibitorRepository) Update(exhibitor *models.Exhibitor) error {
	return r.db.Save(exhibitor).Error
}

// Delete removes an exhibitor. Deletion is rejected while any shift
// assignment row references it (restrict, not cascade).
func (r *ExhibitorRepository) Delete(teamID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("shift_exhibitors").Where("exhibitor_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrExhibitorInUse
		}
		return tx.Delete(&models.Exhibitor{}, "team_id = ? AND id = ?", teamID, id).Error
	})
}

// AssignmentCount returns the number of shifts the exhibitor is assigned to
func (r *ExhibitorRepository) AssignmentCount(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Table("shift_exhibitors").Where("exhibitor_id = ?", id).Count(&count).Error
	return count, err
}
