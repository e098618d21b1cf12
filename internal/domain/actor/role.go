package actor

import "autoflow/internal/pkg/errs"

var ErrInvalidRole = errs.NewKind(errs.ErrValidation, "invalid role")

type Role string

const (
	RoleClient     Role = "CLIENT"
	RoleSalesStaff Role = "SALES_STAFF"
	RoleAdmin      Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleSalesStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsStaff() bool {
	return r == RoleSalesStaff || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
