package repository

import (
	"errors"
	"fmt"

	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationConfigRepository stores per-user reminder toggles
type NotificationConfigRepository struct {
	db *gorm.DB
}

// NewNotificationConfigRepository creates a new notification config repository
func NewNotificationConfigRepository(db *gorm.DB) *NotificationConfigRepository {
	return &NotificationConfigRepository{db: db}
}

// GetByUserID retrieves the config for a user
func (r *NotificationConfigRepository) GetByUserID(userID uuid.UUID) (*models.NotificationConfig, error) {
	var config models.NotificationConfig
	err := r.db.First(&config, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Upsert creates or replaces the config for a user
func (r *NotificationConfigRepository) Upsert(config *models.NotificationConfig) error {
	var existing models.NotificationConfig
	err := r.db.First(&existing, "user_id = ?", config.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(config).Error
		}
		return err
	}
	config.ID = existing.ID
	config.CreatedAt = existing.CreatedAt
	return r.db.Save(config).Error
}

// SentNotificationRepository is the dedup ledger. The unique index on
// (shift, user, offset kind) is the authoritative guard: a lost insert race
// surfaces as a DuplicateError, never as a second row.
type SentNotificationRepository struct {
	db *gorm.DB
}

// NewSentNotificationRepository creates a new ledger repository
func NewSentNotificationRepository(db *gorm.DB) *SentNotificationRepository {
	return &SentNotificationRepository{db: db}
}

// RecordAttempt inserts exactly one ledger row per key. Rows are immutable;
// a duplicate key is reported, not overwritten.
func (r *SentNotificationRepository) RecordAttempt(entry *models.SentNotification) error {
	if err := r.db.Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewDuplicateError(ledgerKey(entry.ShiftID, entry.UserID, entry.OffsetKind))
		}
		return err
	}
	return nil
}

// HasBeenSent reports whether a ledger row exists for the key. Used as a
// pre-check only; RecordAttempt remains the source of truth under races.
func (r *SentNotificationRepository) HasBeenSent(shiftID, userID uuid.UUID, kind models.OffsetKind) (bool, error) {
	var count int64
	err := r.db.Model(&models.SentNotification{}).
		Where("shift_id = ? AND user_id = ? AND offset_kind = ?", shiftID, userID, kind).
		Count(&count).Error
	return count > 0, err
}

// GetByShiftID lists all ledger rows of a shift
func (r *SentNotificationRepository) GetByShiftID(shiftID uuid.UUID) ([]models.SentNotification, error) {
	var entries []models.SentNotification
	err := r.db.Where("shift_id = ?", shiftID).Order("sent_at").Find(&entries).Error
	return entries, err
}

func ledgerKey(shiftID, userID uuid.UUID, kind models.OffsetKind) string {
	return fmt.Sprintf("shift=%s user=%s offset=%s", shiftID, userID, kind)
}
