package service

import (
	"context"
	"errors"
	"time"

	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/logger"
	"turnos-backend/internal/mailer"
	"turnos-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// offsetLeads maps each reminder kind to its fixed lead time
var offsetLeads = map[models.OffsetKind]time.Duration{
	models.OffsetOneWeek: 7 * 24 * time.Hour,
	models.OffsetOneDay:  24 * time.Hour,
	models.OffsetOneHour: time.Hour,
}

// NotificationService is the reminder eligibility engine. It owns no timer:
// an external scheduler invokes Run with the current instant, which keeps
// every window decision testable with a controlled clock.
type NotificationService struct {
	shiftRepo   repository.ShiftRepositoryInterface
	ledger      repository.SentNotificationRepositoryInterface
	configRepo  repository.NotificationConfigRepositoryInterface
	mailer      mailer.Mailer
	tolerance   time.Duration
	sendTimeout time.Duration
	log         *logger.Logger
}

// NewNotificationService creates the engine with an explicit tolerance
// window and per-send timeout.
func NewNotificationService(
	shiftRepo repository.ShiftRepositoryInterface,
	ledger repository.SentNotificationRepositoryInterface,
	configRepo repository.NotificationConfigRepositoryInterface,
	mailer mailer.Mailer,
	tolerance time.Duration,
	sendTimeout time.Duration,
) *NotificationService {
	return &NotificationService{
		shiftRepo:   shiftRepo,
		ledger:      ledger,
		configRepo:  configRepo,
		mailer:      mailer,
		tolerance:   tolerance,
		sendTimeout: sendTimeout,
		log:         logger.New().WithField("component", "notifier"),
	}
}

// RunSummary reports what a single scheduler tick did
type RunSummary struct {
	Sent       int `json:"sent"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
	Duplicates int `json:"duplicates"`
}

// Run processes every due (shift, volunteer, offset) unit once. Units are
// isolated: a failing send is recorded in the ledger and processing
// continues. The ledger's unique key, not the window check, is what makes
// overlapping ticks safe.
func (s *NotificationService) Run(ctx context.Context, now time.Time) (*RunSummary, error) {
	// The one-week offset is the longest lead, so nothing past now+7d can
	// be due yet; one extra day covers date truncation.
	shifts, err := s.shiftRepo.ListStartingBetween(now, now.Add(8*24*time.Hour))
	if err != nil {
		return nil, err
	}

	summary := &RunSummary{}
	for i := range shifts {
		shift := &shifts[i]
		start := shift.StartInstant()
		if !start.After(now) {
			continue // past shifts are never notified
		}
		for _, kind := range models.AllOffsetKinds() {
			if !s.due(now, start, kind) {
				continue
			}
			for j := range shift.Volunteers {
				s.processUnit(ctx, now, shift, &shift.Volunteers[j], kind, summary)
			}
		}
	}
	return summary, nil
}

// due applies the bounded trigger window: at or after the offset instant,
// strictly before the shift start, and within the tolerance of the offset
// instant so a long-missed tick does not fire stale reminders.
func (s *NotificationService) due(now, start time.Time, kind models.OffsetKind) bool {
	trigger := start.Add(-offsetLeads[kind])
	if now.Before(trigger) {
		return false
	}
	if !now.Before(start) {
		return false
	}
	return now.Before(trigger.Add(s.tolerance))
}

func (s *NotificationService) processUnit(ctx context.Context, now time.Time, shift *models.Shift, user *models.User, kind models.OffsetKind, summary *RunSummary) {
	log := s.log.WithFields(map[string]interface{}{
		"shift":  shift.ID,
		"user":   user.ID,
		"offset": kind,
	})

	if !user.NotificationConfig.Allows(kind) {
		summary.Skipped++
		return
	}
	if user.Email == nil || *user.Email == "" {
		log.Debug("volunteer has no email, skipping")
		summary.Skipped++
		return
	}

	// Cheap pre-check; the insert below is the authoritative guard.
	sent, err := s.ledger.HasBeenSent(shift.ID, user.ID, kind)
	if err != nil {
		log.WithField("error", err).Error("ledger lookup failed")
		summary.Failed++
		return
	}
	if sent {
		summary.Skipped++
		return
	}

	sendErr := s.dispatch(ctx, *user.Email, shift, kind)

	entry := &models.SentNotification{
		ShiftID:    shift.ID,
		UserID:     user.ID,
		OffsetKind: kind,
		SentAt:     now,
		Success:    sendErr == nil,
	}
	if sendErr != nil {
		entry.Error = sendErr.Error()
	}

	if err := s.ledger.RecordAttempt(entry); err != nil {
		if apperrors.IsDuplicate(err) {
			// A concurrent tick won the race; the send is already handled.
			log.Debug("duplicate ledger entry, already handled")
			summary.Duplicates++
			return
		}
		log.WithField("error", err).Error("failed to record notification attempt")
		summary.Failed++
		return
	}

	if sendErr != nil {
		log.WithField("error", sendErr).Warn("reminder dispatch failed")
		summary.Failed++
		return
	}
	summary.Sent++
}

func (s *NotificationService) dispatch(ctx context.Context, to string, shift *models.Shift, kind models.OffsetKind) error {
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	details := mailer.ShiftDetails{
		PlaceName: shift.Place.Name,
		Address:   shift.Place.Address,
		Date:      shift.Date,
		TimeRange: shift.TimeRange.String(),
	}
	if err := s.mailer.Send(sendCtx, to, details, kind); err != nil {
		return apperrors.NewDispatchError(err.Error())
	}
	return nil
}

// GetConfig returns the user's notification config, falling back to the
// all-enabled defaults when none was stored yet.
func (s *NotificationService) GetConfig(userID uuid.UUID) (*models.NotificationConfig, error) {
	config, err := s.configRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.NotificationConfig{
				UserID:  userID,
				OneWeek: true,
				OneDay:  true,
				OneHour: true,
				Active:  true,
			}, nil
		}
		return nil, err
	}
	return config, nil
}

// UpdateConfigRequest carries the per-offset reminder toggles
type UpdateConfigRequest struct {
	OneWeek bool `json:"one_week"`
	OneDay  bool `json:"one_day"`
	OneHour bool `json:"one_hour"`
	Active  bool `json:"active"`
}

// UpdateConfig stores the user's reminder toggles
func (s *NotificationService) UpdateConfig(userID uuid.UUID, req *UpdateConfigRequest) (*models.NotificationConfig, error) {
	config := &models.NotificationConfig{
		UserID:  userID,
		OneWeek: req.OneWeek,
		OneDay:  req.OneDay,
		OneHour: req.OneHour,
		Active:  req.Active,
	}
	if err := s.configRepo.Upsert(config); err != nil {
		return nil, err
	}
	return config, nil
}
