// Package types defines the UserRepository interface, the User entity,
// configuration, and standard error types for the roster module.
//
// See docs/ARCHITECTURE.md § Main Interface.
package types
