package maybe

import "time"

type ValueProvider[T any] interface {
	// Value returns the present value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithPresence defines an interface for sources that either hold a value or hold nothing
type WithPresence[T any] interface {
	ValueProvider[T]
	// IsPresent returns true if the source holds a value
	IsPresent() bool
	// IsAbsent returns true if the source holds nothing
	IsAbsent() bool
}

// compile time check that Maybe[T] implements WithPresence[T]
var _ WithPresence[any] = Maybe[any]{}

//type WithIdentity[T any] interface {
//	WithPresence[T]
//	Id() uuid.UUID
//}
