package actor

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor factory function.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Role represents the authorization role of an authenticated caller.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer can place orders and manage their own orders.
	RoleCustomer

	// RoleManager can read all orders and drive order fulfilment.
	RoleManager

	// RoleAdmin has manager rights plus catalog management.
	RoleAdmin
)

// getValidRoleStrings returns only valid Role values to support validation
// and parsing.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "customer",
		RoleManager:  "manager",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role from its wire representation
// ("customer", "manager", "admin").
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the three defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role. It implements fmt.Stringer and
// is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// IsStaff reports whether the role is manager or admin.
func (r Role) IsStaff() bool {
	return r == RoleManager || r == RoleAdmin
}

// Actor is the authenticated identity invoking a lifecycle operation. It
// carries the user's identifier and role; how those were authenticated is
// outside the domain's concern.
//
// Actor is an immutable value object; use NewActor to construct it.
type Actor struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   Role

	guard guard.ConstructorGuard
}

// NewActor creates an Actor with validation.
func NewActor(userID kernel.UUID, role Role) (Actor, error) {
	a := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setUserID(userID),
		a.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	return a, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// UserID returns the actor's user identifier.
func (a Actor) UserID() kernel.UUID {
	return a.userID
}

// Role returns the actor's authorization role.
func (a Actor) Role() Role {
	return a.role
}

// IsStaff reports whether the actor holds the manager or admin role.
func (a Actor) IsStaff() bool {
	return a.role.IsStaff()
}

func (a *Actor) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	a.userID = userID
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
