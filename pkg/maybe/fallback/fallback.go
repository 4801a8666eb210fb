package fallback

import (
	"github.com/ib-77/maybe/pkg/maybe"
)

// Holder wraps the presence fact about a source value viewed through
// capability C. Concrete values enter capability space on
// construction, so a type that does not satisfy C is rejected at
// compile time.
type Holder[C any] struct {
	m maybe.Maybe[C]
}

// From adopts a wrapper as-is, provenance included.
func From[C any](m maybe.Maybe[C]) Holder[C] {
	return Holder[C]{m: m}
}

// FromProvider builds a Holder from any presence-bearing source.
func FromProvider[C any](src maybe.WithPresence[C]) Holder[C] {
	if src.IsPresent() {
		return Holder[C]{m: maybe.Present(src.Value())}
	}
	return Holder[C]{m: maybe.Absent[C]()}
}

// Of captures a comma-ok pair in capability space.
func Of[C any](v C, present bool) Holder[C] {
	return Holder[C]{m: maybe.Of(v, present)}
}

// Try captures a (value, error) outcome, discarding the error payload.
func Try[C any](v C, err error) Holder[C] {
	return Holder[C]{m: maybe.Try(v, err)}
}

// To resolves the holder into a single C-typed handle: the captured
// value when present, def otherwise. The unselected value is dropped
// without any of its methods being invoked. To always succeeds.
func (h Holder[C]) To(def C) C {
	if h.m.IsPresent() {
		return h.m.Value()
	}
	return def
}

// ToElse is To with a lazily built default: fallback runs only when
// the source value was absent.
func (h Holder[C]) ToElse(fallback func() C) C {
	if h.m.IsPresent() {
		return h.m.Value()
	}
	return fallback()
}
