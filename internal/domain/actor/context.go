package actor

import (
	"autoflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// Context identifies who is calling. Every usecase receives it explicitly.
type Context struct {
	id   uuid.UUID
	role Role
}

var ErrAnonymous = errs.NewKind(errs.ErrForbidden, "actor identity required")

func New(id uuid.UUID, role Role) (Context, error) {
	if id == uuid.Nil {
		return Context{}, ErrAnonymous
	}
	if !role.IsValid() {
		return Context{}, ErrInvalidRole
	}
	return Context{id: id, role: role}, nil
}

func (c Context) ID() uuid.UUID { return c.id }
func (c Context) Role() Role    { return c.role }
func (c Context) IsStaff() bool { return c.role.IsStaff() }
func (c Context) IsClient() bool {
	return c.role == RoleClient
}

// Owns reports whether the actor is the given client.
func (c Context) Owns(clientID uuid.UUID) bool {
	return c.role == RoleClient && c.id == clientID
}
