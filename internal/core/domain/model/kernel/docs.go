// Package kernel contains shared value objects used across the storefront
// domain model: entity identifiers (UUID) and monetary amounts (Money).
//
// Kernel types are immutable value objects. Their zero values are invalid and
// must be created through the provided constructor functions, which enforce
// the invariants the rest of the domain relies on (valid identifiers,
// non-negative amounts).
package kernel
