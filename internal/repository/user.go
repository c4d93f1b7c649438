package repository

import (
	"errors"

	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrUserEmailExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a user by ID within a team
func (r *UserRepository) GetByID(teamID, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "team_id = ? AND id = ?", teamID, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email across teams (login lookup)
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByTeamID retrieves all users for a team with pagination
func (r *UserRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("team_id = ?", teamID).Limit(limit).Offset(offset).Order("name").Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetWithPairingHints loads a user with the advisory always-with/never-with peers
func (r *UserRepository) GetWithPairingHints(teamID, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("AlwaysWith").Preload("NeverWith").
		First(&user, "team_id = ? AND id = ?", teamID, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user together with their assignment rows, notification
// config and ledger entries, then recomputes the state of every shift the
// user was assigned to. State is derived from the remaining seat count, so
// a full shift frees a seat when an occupant is deleted.
func (r *UserRepository) Delete(teamID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "team_id = ? AND id = ?", teamID, id).Error; err != nil {
			return err
		}

		var shiftIDs []uuid.UUID
		if err := tx.Table("shift_volunteers").
			Where("user_id = ?", id).
			Pluck("shift_id", &shiftIDs).Error; err != nil {
			return err
		}
		if err := tx.Table("shift_volunteers").Where("user_id = ?", id).Delete(nil).Error; err != nil {
			return err
		}

		for _, shiftID := range shiftIDs {
			var shift models.Shift
			if err := lockForUpdate(tx).First(&shift, "id = ?", shiftID).Error; err != nil {
				return err
			}
			var place models.Place
			if err := tx.First(&place, "id = ?", shift.PlaceID).Error; err != nil {
				return err
			}
			var count int64
			if err := tx.Table("shift_volunteers").Where("shift_id = ?", shiftID).Count(&count).Error; err != nil {
				return err
			}
			state := models.StateFor(int(count), place.Capacity)
			if state != shift.State {
				if err := tx.Model(&shift).Update("state", state).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.NotificationConfig{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.SentNotification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
