package service

import (
	"turnos-backend/internal/auth"

	"github.com/google/uuid"
)

// EffectiveTeam is the tenant scope filter: a super-administrator explicitly
// targeting another team gets it, every other caller is pinned to their own
// team. Every shift/place/exhibitor/user query must pass through this before
// touching the store; cross-team leakage is the failure mode guarded against.
func EffectiveTeam(p auth.Principal, requested *uuid.UUID) uuid.UUID {
	if p.IsSuperAdmin() && requested != nil && *requested != uuid.Nil {
		return *requested
	}
	return p.TeamID
}
