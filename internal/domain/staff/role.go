package staff

import "errors"

var ErrInvalidRole = errors.New("invalid staff role")

// Role of a back-office user as carried in the staff token.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleSales  Role = "sales"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleSales, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) level() int {
	switch r {
	case RoleViewer:
		return 1
	case RoleSales:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && min.IsValid() && r.level() >= min.level()
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
