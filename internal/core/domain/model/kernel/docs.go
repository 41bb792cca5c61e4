// Package kernel provides core domain primitives shared by the driver and
// transport order aggregates.
//
// The package includes:
//   - UUID: identifier value object with validation and comparison
//   - Nullable: three-state patch field (absent, null, value) used by partial updates
//
// Primitives are immutable and safe for concurrent use.
package kernel
