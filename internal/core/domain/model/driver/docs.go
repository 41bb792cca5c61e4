// Package driver holds the Driver aggregate: the identity record of a person
// who carries transport orders, with a Brazilian national id (CPF) and a
// driver's license (CNH number and category).
//
// Key business rules:
//   - name, cpf, cnh number and cnh category are required
//   - the cnh category is one of A, B, C, D, E
//   - phone is optional and may be cleared on update
//   - drivers are never deleted, only toggled inactive
//   - cpf and cnh number are unique across active and inactive drivers;
//     that rule needs the registry and is checked by the use cases
//
// Strings are trimmed before validation and blank optional strings are
// stored as null.
package driver
