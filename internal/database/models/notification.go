package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationConfig holds the per-user reminder toggles. A user without a
// row gets the defaults: all three offsets enabled. Columns carry no SQL
// default so a stored false survives the insert; rows are always written
// with every toggle explicit.
type NotificationConfig struct {
	BaseModel
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	OneWeek bool      `json:"one_week" gorm:"not null"`
	OneDay  bool      `json:"one_day" gorm:"not null"`
	OneHour bool      `json:"one_hour" gorm:"not null"`
	Active  bool      `json:"active" gorm:"not null"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for NotificationConfig
func (NotificationConfig) TableName() string {
	return "notification_configs"
}

// Allows reports whether the config enables the given offset kind
func (c *NotificationConfig) Allows(kind OffsetKind) bool {
	if c == nil {
		return true // missing config = defaults, everything on
	}
	if !c.Active {
		return false
	}
	switch kind {
	case OffsetOneWeek:
		return c.OneWeek
	case OffsetOneDay:
		return c.OneDay
	case OffsetOneHour:
		return c.OneHour
	}
	return false
}

// SentNotification is the dedup ledger: one immutable row per
// (shift, user, offset kind) attempt. The unique index is the sole
// concurrency guard against double sends.
type SentNotification struct {
	BaseModel
	ShiftID    uuid.UUID  `json:"shift_id" gorm:"type:uuid;not null;uniqueIndex:idx_sent_shift_user_offset" validate:"required"`
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_sent_shift_user_offset" validate:"required"`
	OffsetKind OffsetKind `json:"offset_kind" gorm:"type:varchar(20);not null;uniqueIndex:idx_sent_shift_user_offset" validate:"required"`
	SentAt     time.Time  `json:"sent_at" gorm:"not null"`
	Success    bool       `json:"success" gorm:"not null"`
	Error      string     `json:"error,omitempty" gorm:"type:text"`

	Shift Shift `json:"shift,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SentNotification
func (SentNotification) TableName() string {
	return "sent_notifications"
}
