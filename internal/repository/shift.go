package repository

import (
	"errors"
	"time"

	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftRepository owns shift records, their assignments and the
// capacity-derived state. Assignment mutations run inside a transaction
// holding a row lock on the shift so two concurrent assignments cannot both
// pass the capacity check.
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// lockForUpdate applies a row lock where the dialect supports it. SQLite
// serializes writers at the database level, so the clause is postgres-only.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// Create inserts a shift; the (date, time range, place) slot must be free
func (r *ShiftRepository) Create(shift *models.Shift) error {
	shift.Date = models.DateOnly(shift.Date)
	if shift.State == "" {
		shift.State = models.ShiftStateFree
	}
	if err := r.db.Create(shift).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrShiftSlotExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a shift by ID within a team
func (r *ShiftRepository) GetByID(teamID, id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "team_id = ? AND id = ?", teamID, id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetWithAssignments retrieves a shift with its place, volunteers and exhibitors
func (r *ShiftRepository) GetWithAssignments(teamID, id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Preload("Place").Preload("Volunteers").Preload("Exhibitors").
		First(&shift, "team_id = ? AND id = ?", teamID, id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// List retrieves shifts for a team, optionally narrowed to a place and a
// date range, ordered for calendar rendering.
func (r *ShiftRepository) List(teamID uuid.UUID, placeID *uuid.UUID, from, to *time.Time, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	query := r.db.Model(&models.Shift{}).Where("team_id = ?", teamID)
	if placeID != nil {
		query = query.Where("place_id = ?", *placeID)
	}
	if from != nil {
		query = query.Where("date >= ?", models.DateOnly(*from))
	}
	if to != nil {
		query = query.Where("date <= ?", models.DateOnly(*to))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Place").Preload("Volunteers").Preload("Exhibitors").
		Limit(limit).Offset(offset).Order("date, time_range").Find(&shifts).Error
	if err != nil {
		return nil, 0, err
	}

	return shifts, total, nil
}

// SlotExists reports whether a shift occupies the exact slot already
func (r *ShiftRepository) SlotExists(teamID, placeID uuid.UUID, date time.Time, timeRange models.TimeRange) (bool, error) {
	var count int64
	err := r.db.Model(&models.Shift{}).
		Where("team_id = ? AND place_id = ? AND date = ? AND time_range = ?",
			teamID, placeID, models.DateOnly(date), timeRange).
		Count(&count).Error
	return count > 0, err
}

// AssignVolunteer adds a user to the shift and recomputes the state.
// Adding an already-assigned user is an idempotent no-op. An assignment
// past the place capacity is rejected with a conflict.
func (r *ShiftRepository) AssignVolunteer(teamID, shiftID, userID uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&shift, "team_id = ? AND id = ?", teamID, shiftID).Error; err != nil {
			return err
		}

		var assigned int64
		if err := tx.Table("shift_volunteers").
			Where("shift_id = ? AND user_id = ?", shiftID, userID).
			Count(&assigned).Error; err != nil {
			return err
		}
		if assigned > 0 {
			return nil // already assigned
		}

		var place models.Place
		if err := tx.First(&place, "id = ?", shift.PlaceID).Error; err != nil {
			return err
		}

		count, err := r.volunteerCount(tx, shiftID)
		if err != nil {
			return err
		}
		if place.Capacity != nil && int(count) >= *place.Capacity {
			return apperrors.ErrShiftFull
		}

		var user models.User
		if err := tx.First(&user, "team_id = ? AND id = ?", teamID, userID).Error; err != nil {
			return err
		}
		if err := tx.Model(&shift).Association("Volunteers").Append(&user); err != nil {
			return err
		}

		return r.updateState(tx, &shift, int(count)+1, place.Capacity)
	})
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// UnassignVolunteer removes a user from the shift and recomputes the state.
// Removing an absent user is a no-op.
func (r *ShiftRepository) UnassignVolunteer(teamID, shiftID, userID uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&shift, "team_id = ? AND id = ?", teamID, shiftID).Error; err != nil {
			return err
		}

		res := tx.Table("shift_volunteers").
			Where("shift_id = ? AND user_id = ?", shiftID, userID).
			Delete(nil)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // was not assigned
		}

		var place models.Place
		if err := tx.First(&place, "id = ?", shift.PlaceID).Error; err != nil {
			return err
		}

		count, err := r.volunteerCount(tx, shiftID)
		if err != nil {
			return err
		}
		return r.updateState(tx, &shift, int(count), place.Capacity)
	})
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// AssignExhibitor adds an exhibitor to the shift; no capacity semantics
func (r *ShiftRepository) AssignExhibitor(teamID, shiftID, exhibitorID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var shift models.Shift
		if err := tx.First(&shift, "team_id = ? AND id = ?", teamID, shiftID).Error; err != nil {
			return err
		}
		var exhibitor models.Exhibitor
		if err := tx.First(&exhibitor, "team_id = ? AND id = ?", teamID, exhibitorID).Error; err != nil {
			return err
		}
		return tx.Model(&shift).Association("Exhibitors").Append(&exhibitor)
	})
}

// UnassignExhibitor removes an exhibitor assignment; no-op when absent
func (r *ShiftRepository) UnassignExhibitor(teamID, shiftID, exhibitorID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var shift models.Shift
		if err := tx.First(&shift, "team_id = ? AND id = ?", teamID, shiftID).Error; err != nil {
			return err
		}
		return tx.Table("shift_exhibitors").
			Where("shift_id = ? AND exhibitor_id = ?", shiftID, exhibitorID).
			Delete(nil).Error
	})
}

// Delete removes a shift with its assignment rows and ledger entries
func (r *ShiftRepository) Delete(teamID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var shift models.Shift
		if err := tx.First(&shift, "team_id = ? AND id = ?", teamID, id).Error; err != nil {
			return err
		}
		if err := tx.Table("shift_volunteers").Where("shift_id = ?", id).Delete(nil).Error; err != nil {
			return err
		}
		if err := tx.Table("shift_exhibitors").Where("shift_id = ?", id).Delete(nil).Error; err != nil {
			return err
		}
		if err := tx.Where("shift_id = ?", id).Delete(&models.SentNotification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&shift).Error
	})
}

// ListStartingBetween returns shifts of every team whose calendar date falls
// inside [from, to], with volunteers and their notification configs loaded.
// Used only by the scheduler-driven reminder run.
func (r *ShiftRepository) ListStartingBetween(from, to time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Preload("Place").
		Preload("Volunteers").
		Preload("Volunteers.NotificationConfig").
		Where("date >= ? AND date <= ?", models.DateOnly(from), models.DateOnly(to)).
		Order("date, time_range").
		Find(&shifts).Error
	return shifts, err
}

func (r *ShiftRepository) volunteerCount(tx *gorm.DB, shiftID uuid.UUID) (int64, error) {
	var count int64
	err := tx.Table("shift_volunteers").Where("shift_id = ?", shiftID).Count(&count).Error
	return count, err
}

func (r *ShiftRepository) updateState(tx *gorm.DB, shift *models.Shift, volunteerCount int, capacity *int) error {
	state := models.StateFor(volunteerCount, capacity)
	if state == shift.State {
		return nil
	}
	shift.State = state
	return tx.Model(shift).Update("state", state).Error
}
