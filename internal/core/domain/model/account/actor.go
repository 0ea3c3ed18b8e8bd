// Package account contains the Actor value object: the authenticated requester
// on whose behalf an operation runs. Authentication itself happens in an
// excluded middleware; the core trusts the supplied identity and role but
// performs all authorization decisions itself, so they stay testable
// independent of the transport.
package account

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Role is the access level of a requester.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleUser is a regular customer: may check out and read their own orders.
	RoleUser

	// RoleAdmin may additionally list all orders, read statistics, and drive
	// delivery and status transitions.
	RoleAdmin
)

// ParseRole converts a role string supplied by the auth middleware.
func ParseRole(s string) (Role, error) {
	switch s {
	case "user":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Validate checks that the role is one of the known access levels.
func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the pre-authenticated requester of an operation.
type Actor struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewActor creates a validated actor from the identity the auth middleware supplied.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, isConstructed: true}, nil
}

// Validate ensures the Actor was created via NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the requester's user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the requester's access level.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the requester is an administrator.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// RequireAdmin returns a NotAuthorizedError unless the requester is an
// administrator. Used by operations restricted to back-office staff.
func (a Actor) RequireAdmin(operation string) error {
	if !a.IsAdmin() {
		return errs.NewNotAuthorizedError(operation)
	}
	return nil
}

// CanAccessOrder returns a NotAuthorizedError unless the requester owns the
// order or is an administrator.
func (a Actor) CanAccessOrder(ownerID kernel.UUID) error {
	if a.IsAdmin() || a.id.IsEqual(ownerID) {
		return nil
	}
	return errs.NewNotAuthorizedErrorWithCause("access order",
		errors.New("requester is not the order owner"))
}
