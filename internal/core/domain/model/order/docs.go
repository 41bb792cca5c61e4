// Package order holds the transport order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root carrying route, cargo and schedule
//   - Status: the linear state machine pending → collecting → collected →
//     delivering → delivered
//   - Number: the OC-NNNNN identifier handed out at creation
//
// Key business rules:
//   - every order starts pending, whatever the caller sends
//   - the status only moves forward one step at a time, through Advance
//   - regular updates never change the status
//   - only pending orders may be deleted
//   - the referenced driver must exist, active or not; that check needs the
//     registry and is done by the use cases
package order
