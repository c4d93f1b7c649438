package auth

import (
	"turnos-backend/internal/database/models"

	"github.com/google/uuid"
)

// Principal is the authenticated caller attached to every request: enough
// identity to drive the tenant scope filter and nothing more.
type Principal struct {
	UserID uuid.UUID   `json:"user_id"`
	Role   models.Role `json:"role"`
	TeamID uuid.UUID   `json:"team_id"`
}

// IsSuperAdmin reports whether the principal may target other teams
func (p Principal) IsSuperAdmin() bool {
	return p.Role == models.RoleSuperAdmin
}
