package authz

import "strconv"

// Role is the integer discriminator persisted in the session blob. The
// numbering is part of the external contract and must not change.
type Role int

const (
	RoleAdmin    Role = 1
	RoleUser     Role = 2
	RoleTeamLead Role = 3
	RoleHR       Role = 4
	RoleManager  Role = 5
)

func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleManager
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	case RoleTeamLead:
		return "team_lead"
	case RoleHR:
		return "hr"
	case RoleManager:
		return "manager"
	default:
		return "role_" + strconv.Itoa(int(r))
	}
}

// ParseRole resolves the names accepted in capability override files.
func ParseRole(name string) (Role, bool) {
	switch name {
	case "admin":
		return RoleAdmin, true
	case "user":
		return RoleUser, true
	case "team_lead":
		return RoleTeamLead, true
	case "hr":
		return RoleHR, true
	case "manager":
		return RoleManager, true
	}
	if n, err := strconv.Atoi(name); err == nil && Role(n).Valid() {
		return Role(n), true
	}
	return 0, false
}
