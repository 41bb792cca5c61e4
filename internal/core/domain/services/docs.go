// Package services provides domain services that coordinate work which does
// not belong to a single aggregate.
//
// The package includes:
//   - OrderNumberGenerator: hands out the OC-NNNNN identifier of a new order
package services
