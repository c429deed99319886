package domain

import "time"

// Audit actions recorded for authentication and role-management operations.
const (
	ActionRegister    = "register"
	ActionLogin       = "login"
	ActionDeleteUser  = "delete_user"
	ActionCreateRole  = "create_role"
	ActionAddRoles    = "add_roles"
	ActionRemoveRoles = "remove_roles"
)

// Audit outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// AuthEvent is an append-only audit record of a security-relevant operation.
// Actor is the username that performed the operation ("" for anonymous
// endpoints such as register and login, where Subject identifies the
// account acted on).
type AuthEvent struct {
	Actor     string
	Action    string
	Subject   string
	Outcome   string
	Detail    string
	Timestamp time.Time
}
