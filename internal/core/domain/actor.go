package domain

import (
	"fmt"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
)

// Role is the identity provider's role claim for an actor.
type Role string

const (
	RoleRequester     Role = "REQUESTER"
	RoleApprover      Role = "APPROVER"
	RoleAdministrator Role = "ADMINISTRATOR"
)

// Capability names a role-gated action.
type Capability string

const (
	CapDecideExpressions  Capability = "decide_expressions"
	CapViewAllExpressions Capability = "view_all_expressions"
	CapManageOrders       Capability = "manage_orders"
	CapRecordReceptions   Capability = "record_receptions"
	CapStartProgress      Capability = "start_progress"
	CapConfirmReceptions  Capability = "confirm_receptions"
	CapViewOrders         Capability = "view_orders"
	CapCreateExpressions  Capability = "create_expressions"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleRequester: {
		CapCreateExpressions: true,
		CapViewOrders:        true,
	},
	RoleApprover: {
		CapCreateExpressions:  true,
		CapDecideExpressions:  true,
		CapViewAllExpressions: true,
		CapViewOrders:         true,
	},
	RoleAdministrator: {
		CapCreateExpressions:  true,
		CapDecideExpressions:  true,
		CapViewAllExpressions: true,
		CapManageOrders:       true,
		CapRecordReceptions:   true,
		CapStartProgress:      true,
		CapConfirmReceptions:  true,
		CapViewOrders:         true,
	},
}

// ParseRole validates a role claim.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleCapabilities[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Actor is the caller of every core operation, as supplied by the identity provider.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// Can reports whether the actor's role grants the capability.
func (a Actor) Can(c Capability) bool {
	return roleCapabilities[a.Role][c]
}

// RequireCapability fails with ErrInsufficientRole when the actor lacks c.
func RequireCapability(a Actor, c Capability) error {
	if !a.Can(c) {
		return fmt.Errorf("%w: role %s cannot %s", apperrors.ErrInsufficientRole, a.Role, c)
	}
	return nil
}

// RequireOwner fails with ErrNotOwner when the actor did not create the entity.
func RequireOwner(a Actor, ownerID string) error {
	if a.ID == "" || a.ID != ownerID {
		return fmt.Errorf("%w: actor %s", apperrors.ErrNotOwner, a.ID)
	}
	return nil
}
