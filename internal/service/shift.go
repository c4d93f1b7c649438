package service

import (
	"errors"
	"fmt"
	"time"

	"turnos-backend/internal/auth"
	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftService handles business logic for shift slots
type ShiftService struct {
	repo      repository.ShiftRepositoryInterface
	placeRepo repository.PlaceRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(repo repository.ShiftRepositoryInterface, placeRepo repository.PlaceRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		repo:      repo,
		placeRepo: placeRepo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateShiftRequest represents the request to create a shift
type CreateShiftRequest struct {
	PlaceID   uuid.UUID  `json:"place_id" validate:"required"`
	Date      time.Time  `json:"date" validate:"required"`
	TimeRange string     `json:"time_range" validate:"required"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"` // superAdmin cross-team target
}

// ListShiftsRequest narrows a shift listing for calendar callers
type ListShiftsRequest struct {
	PlaceID  *uuid.UUID `form:"place_id"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	TeamID   *uuid.UUID `form:"team_id"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size"`
}

// GeneratePattern describes a batch generation request: weekly covers the
// seven days from the start date, monthly covers the explicit date range.
type GeneratePattern struct {
	Mode            string     `json:"mode" validate:"required,oneof=weekly monthly"`
	PlaceID         uuid.UUID  `json:"place_id" validate:"required"`
	StartDate       time.Time  `json:"start_date" validate:"required"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	StartTime       string     `json:"start_time" validate:"required"`
	EndTime         string     `json:"end_time" validate:"required"`
	IntervalMinutes int        `json:"interval_minutes" validate:"required,min=15,max=720"`
	TeamID          *uuid.UUID `json:"team_id,omitempty"`
}

// GenerateResult reports how many slots were created and how many already existed
type GenerateResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Create creates a shift on a free slot
func (s *ShiftService) Create(p auth.Principal, req *CreateShiftRequest) (*models.Shift, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	timeRange, err := models.ParseTimeRange(req.TimeRange)
	if err != nil {
		return nil, err
	}

	teamID := EffectiveTeam(p, req.TeamID)
	if _, err := s.placeRepo.GetByID(teamID, req.PlaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("failed to verify place: %w", err)
	}

	shift := &models.Shift{
		TeamID:    teamID,
		PlaceID:   req.PlaceID,
		Date:      models.DateOnly(req.Date),
		TimeRange: timeRange,
		State:     models.ShiftStateFree,
	}
	if err := s.repo.Create(shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// GetByID retrieves a shift with its assignments
func (s *ShiftService) GetByID(p auth.Principal, id uuid.UUID, requestedTeam *uuid.UUID) (*models.Shift, error) {
	shift, err := s.repo.GetWithAssignments(EffectiveTeam(p, requestedTeam), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, err
	}
	return shift, nil
}

// List retrieves shifts for the caller's effective team
func (s *ShiftService) List(p auth.Principal, req *ListShiftsRequest) ([]models.Shift, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	teamID := EffectiveTeam(p, req.TeamID)
	return s.repo.List(teamID, req.PlaceID, req.From, req.To, pageSize, (page-1)*pageSize)
}

// Delete removes a shift, cascading its assignment and ledger rows
func (s *ShiftService) Delete(p auth.Principal, id uuid.UUID, requestedTeam *uuid.UUID) error {
	err := s.repo.Delete(EffectiveTeam(p, requestedTeam), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrShiftNotFound
	}
	return err
}

// AssignUser adds a volunteer to a shift, idempotently
func (s *ShiftService) AssignUser(p auth.Principal, shiftID, userID uuid.UUID, requestedTeam *uuid.UUID) (*models.Shift, error) {
	teamID := EffectiveTeam(p, requestedTeam)
	if _, err := s.userRepo.GetByID(teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	shift, err := s.repo.AssignVolunteer(teamID, shiftID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, err
	}
	return shift, nil
}

// UnassignUser removes a volunteer from a shift; no-op when absent
func (s *ShiftService) UnassignUser(p auth.Principal, shiftID, userID uuid.UUID, requestedTeam *uuid.UUID) (*models.Shift, error) {
	shift, err := s.repo.UnassignVolunteer(EffectiveTeam(p, requestedTeam), shiftID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, err
	}
	return shift, nil
}

// AssignExhibitor adds an exhibitor to a shift
func (s *ShiftService) AssignExhibitor(p auth.Principal, shiftID, exhibitorID uuid.UUID, requestedTeam *uuid.UUID) error {
	err := s.repo.AssignExhibitor(EffectiveTeam(p, requestedTeam), shiftID, exhibitorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrShiftNotFound
	}
	return err
}

// UnassignExhibitor removes an exhibitor from a shift
func (s *ShiftService) UnassignExhibitor(p auth.Principal, shiftID, exhibitorID uuid.UUID, requestedTeam *uuid.UUID) error {
	err := s.repo.UnassignExhibitor(EffectiveTeam(p, requestedTeam), shiftID, exhibitorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrShiftNotFound
	}
	return err
}

// Generate produces one shift per time slot per day of the pattern range.
// Slots already occupied by an identical (date, time range, place) shift are
// counted as skipped, never duplicated.
func (s *ShiftService) Generate(p auth.Principal, pattern *GeneratePattern) (*GenerateResult, error) {
	if err := s.validator.Struct(pattern); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	days, err := patternDays(pattern)
	if err != nil {
		return nil, err
	}
	slots, err := patternSlots(pattern)
	if err != nil {
		return nil, err
	}

	teamID := EffectiveTeam(p, pattern.TeamID)
	if _, err := s.placeRepo.GetByID(teamID, pattern.PlaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("failed to verify place: %w", err)
	}

	result := &GenerateResult{}
	for _, day := range days {
		for _, slot := range slots {
			shift := &models.Shift{
				TeamID:    teamID,
				PlaceID:   pattern.PlaceID,
				Date:      day,
				TimeRange: slot,
				State:     models.ShiftStateFree,
			}
			err := s.repo.Create(shift)
			switch {
			case err == nil:
				result.Created++
			case errors.Is(err, apperrors.ErrShiftSlotExists):
				result.Skipped++
			default:
				return nil, err
			}
		}
	}
	return result, nil
}

func patternDays(pattern *GeneratePattern) ([]time.Time, error) {
	start := models.DateOnly(pattern.StartDate)
	switch pattern.Mode {
	case "weekly":
		days := make([]time.Time, 0, 7)
		for i := 0; i < 7; i++ {
			days = append(days, start.AddDate(0, 0, i))
		}
		return days, nil
	case "monthly":
		if pattern.EndDate == nil {
			return nil, apperrors.NewValidationError("end_date", "required for monthly generation")
		}
		end := models.DateOnly(*pattern.EndDate)
		if end.Before(start) {
			return nil, apperrors.NewValidationError("end_date", "must not be before start_date")
		}
		if end.Sub(start) > 31*24*time.Hour {
			return nil, apperrors.NewValidationError("end_date", "range may not exceed 31 days")
		}
		var days []time.Time
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
		return days, nil
	}
	return nil, apperrors.ErrInvalidGeneratePattern
}

func patternSlots(pattern *GeneratePattern) ([]models.TimeRange, error) {
	dayStart, err := models.ParseTimeRange(pattern.StartTime + "-" + pattern.EndTime)
	if err != nil {
		return nil, err
	}
	if dayStart.EndMinutes() <= dayStart.StartMinutes() {
		return nil, apperrors.NewValidationError("end_time", "must be after start_time")
	}

	var slots []models.TimeRange
	for from := dayStart.StartMinutes(); from+pattern.IntervalMinutes <= dayStart.EndMinutes(); from += pattern.IntervalMinutes {
		to := from + pattern.IntervalMinutes
		slot, err := models.ParseTimeRange(fmt.Sprintf("%02d:%02d-%02d:%02d", from/60, from%60, to/60, to%60))
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	if len(slots) == 0 {
		return nil, apperrors.ErrInvalidGeneratePattern
	}
	return slots, nil
}
