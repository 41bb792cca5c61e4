package order

import (
	"fmt"
	"strings"

	"tms/internal/pkg/errs"
)

// Status is the lifecycle state of a transport order. The stored value is the
// lower-case name.
//
// State transitions (linear, forward only):
//
//	pending ──> collecting ──> collected ──> delivering ──> delivered
type Status string

const (
	// Pending is the initial status. Only pending orders can be deleted.
	Pending Status = "pending"

	// Collecting means the driver is on the way to the origin.
	Collecting Status = "collecting"

	// Collected means the cargo has been picked up.
	Collected Status = "collected"

	// Delivering means the cargo is on the way to the destination.
	Delivering Status = "delivering"

	// Delivered is terminal.
	Delivered Status = "delivered"
)

// Statuses lists every status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Collecting, Collected, Delivering, Delivered}
}

// InProgressStatuses is the set reported as "in progress" on the dashboard:
// every status after pending and before delivered.
func InProgressStatuses() []Status {
	return []Status{Collecting, Collected, Delivering}
}

// ParseStatus accepts the stored lower-case name.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate checks that s is one of the five statuses.
func (s Status) Validate() error {
	switch s {
	case Pending, Collecting, Collected, Delivering, Delivered:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
}

// Successor returns the next status and true, or false for Delivered.
// An unknown status has no successor either.
func (s Status) Successor() (Status, bool) {
	switch s {
	case Pending:
		return Collecting, true
	case Collecting:
		return Collected, true
	case Collected:
		return Delivering, true
	case Delivering:
		return Delivered, true
	case Delivered:
		return "", false
	}
	return "", false
}

// IsInProgress reports membership in InProgressStatuses.
func (s Status) IsInProgress() bool {
	switch s {
	case Collecting, Collected, Delivering:
		return true
	case Pending, Delivered:
		return false
	}
	return false
}

// IsFinal reports whether s has no successor.
func (s Status) IsFinal() bool {
	_, ok := s.Successor()
	return !ok
}

// Label returns the Portuguese caption shown to operators and printed on
// exported sheets.
func (s Status) Label() string {
	switch s {
	case Pending:
		return "Pendente"
	case Collecting:
		return "Em Coleta"
	case Collected:
		return "Coletado"
	case Delivering:
		return "Em Entrega"
	case Delivered:
		return "Entregue"
	}
	return string(s)
}

func (s Status) String() string {
	return string(s)
}
