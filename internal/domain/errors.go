package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyProcessed = errors.New("order already processed")
	ErrConflict         = errors.New("concurrent modification detected, please retry")
	ErrAgentInactive    = errors.New("agent is not active")
)

// ValidationError is a user-correctable bad-input error, surfaced
// verbatim to the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError names both the current and the attempted
// status so a stale UI can refetch and recover.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %q to %q", e.From, e.To)
}

// InsufficientBalanceError is a business-rule violation, not a system
// fault. It carries the shortfall for the user-facing message.
type InsufficientBalanceError struct {
	Requested float64
	Available float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: requested %.2f, available %.2f (short %.2f)",
		e.Requested, e.Available, e.Shortfall())
}

func (e *InsufficientBalanceError) Shortfall() float64 {
	return e.Requested - e.Available
}

// DependencyError wraps a collaborator failure (account provisioning,
// notification). Provisioning failures abort the operation; notification
// failures are logged and swallowed by the caller.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency %s failed: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
