package models

// Role defines the access level of a user
type Role string

const (
	RoleVoluntario Role = "voluntario"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
	RoleGrupo      Role = "grupo"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleVoluntario, RoleAdmin, RoleSuperAdmin, RoleGrupo:
		return true
	}
	return false
}

// ShiftState is derived from the assigned-volunteer count and the place capacity
type ShiftState string

const (
	ShiftStateFree     ShiftState = "free"
	ShiftStateOccupied ShiftState = "occupied"
	ShiftStateFull     ShiftState = "full"
)

// IsValid checks if the ShiftState is valid
func (s ShiftState) IsValid() bool {
	switch s {
	case ShiftStateFree, ShiftStateOccupied, ShiftStateFull:
		return true
	}
	return false
}

// OffsetKind identifies one of the fixed reminder lead times before a shift starts
type OffsetKind string

const (
	OffsetOneWeek OffsetKind = "one_week"
	OffsetOneDay  OffsetKind = "one_day"
	OffsetOneHour OffsetKind = "one_hour"
)

// IsValid checks if the OffsetKind is valid
func (o OffsetKind) IsValid() bool {
	switch o {
	case OffsetOneWeek, OffsetOneDay, OffsetOneHour:
		return true
	}
	return false
}

// AllOffsetKinds lists the reminder offsets in decreasing lead-time order
func AllOffsetKinds() []OffsetKind {
	return []OffsetKind{OffsetOneWeek, OffsetOneDay, OffsetOneHour}
}
