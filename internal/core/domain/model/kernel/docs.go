// Package kernel contains shared value objects used across the fulfillment
// domain model.
//
// The package provides:
//   - UUID: validated wrapper around github.com/google/uuid used as the
//     identity of every aggregate and as the actor reference on audit entries
//
// Kernel types are value objects: immutable, comparable, and safe for
// concurrent use. They must be created through their constructor functions;
// zero values fail validation.
package kernel
