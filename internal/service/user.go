package service

import (
	"errors"

	"turnos-backend/internal/auth"
	"turnos-backend/internal/database/models"
	apperrors "turnos-backend/internal/errors"
	"turnos-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, validator: validator}
}

// CreateUserRequest represents the request to create a user. Email and
// password may both be absent for grouped child accounts.
type CreateUserRequest struct {
	Name          string      `json:"name" validate:"required,min=1,max=100"`
	Email         *string     `json:"email,omitempty" validate:"omitempty,email"`
	Password      *string     `json:"password,omitempty" validate:"omitempty,min=8"`
	Role          models.Role `json:"role" validate:"required"`
	HasCar        *bool       `json:"has_car,omitempty"`
	MonthlyTarget *int        `json:"monthly_target,omitempty" validate:"omitempty,min=0"`
	AlwaysWithID  *uuid.UUID  `json:"always_with_id,omitempty"`
	NeverWithID   *uuid.UUID  `json:"never_with_id,omitempty"`
	TeamID        *uuid.UUID  `json:"team_id,omitempty"`
}

// Create creates a new user in the caller's effective team
func (s *UserService) Create(p auth.Principal, req *CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	teamID := EffectiveTeam(p, req.TeamID)
	// Pairing hints must stay inside the team; they remain advisory after that.
	for _, peer := range []*uuid.UUID{req.AlwaysWithID, req.NeverWithID} {
		if peer == nil {
			continue
		}
		if _, err := s.repo.GetByID(teamID, *peer); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, err
		}
	}

	user := &models.User{
		TeamID:        teamID,
		Name:          req.Name,
		Email:         req.Email,
		Role:          req.Role,
		HasCar:        req.HasCar,
		MonthlyTarget: req.MonthlyTarget,
		AlwaysWithID:  req.AlwaysWithID,
		NeverWithID:   req.NeverWithID,
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		user.PasswordHash = &hashed
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user with the advisory pairing hints loaded
func (s *UserService) GetByID(p auth.Principal, id uuid.UUID, requestedTeam *uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetWithPairingHints(EffectiveTeam(p, requestedTeam), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// List retrieves the users of the caller's effective team
func (s *UserService) List(p auth.Principal, requestedTeam *uuid.UUID, page, pageSize int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	return s.repo.GetByTeamID(EffectiveTeam(p, requestedTeam), pageSize, (page-1)*pageSize)
}

// Delete removes a user from the caller's effective team
func (s *UserService) Delete(p auth.Principal, id uuid.UUID, requestedTeam *uuid.UUID) error {
	if _, err := s.GetByID(p, id, requestedTeam); err != nil {
		return err
	}
	return s.repo.Delete(EffectiveTeam(p, requestedTeam), id)
}
