// internal/types/types.go
package types

// EntityID identifies a hostile, projectile or pickup for the lifetime of a session.
// Zero is never assigned.
type EntityID uint64
