package maybe

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Maybe[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	present   bool
}

func Present[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:     v,
		present:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Absent[T any]() Maybe[T] {
	return Maybe[T]{
		present:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of wraps a comma-ok pair: present when ok, absent otherwise.
// No validation is applied to v; zero values are present values.
func Of[T any](v T, ok bool) Maybe[T] {
	if ok {
		return Present(v)
	}
	return Absent[T]()
}

// Try wraps a (value, error) outcome. A non-nil error yields Absent;
// the error payload is discarded, only the presence fact survives.
func Try[T any](v T, err error) Maybe[T] {
	if err != nil {
		return Absent[T]()
	}
	return Present(v)
}

// OfPtr dereferences p into a present value, or yields Absent for nil.
func OfPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// OfNillable is Present(v) unless v is a nil pointer, map, slice,
// func, channel or interface (see IsNil).
func OfNillable[T any](v T) Maybe[T] {
	if IsNil(v) {
		return Absent[T]()
	}
	return Present(v)
}

// AbsentFrom propagates absence across a type switch, keeping the
// origin's id and creation time.
func AbsentFrom[In, Out any](from Maybe[In]) Maybe[Out] {
	return Maybe[Out]{
		present:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

func (m Maybe[T]) IsPresent() bool {
	return m.present
}

func (m Maybe[T]) IsAbsent() bool {
	return !m.present
}

func (m Maybe[T]) ValueOr(def T) T {
	if m.present {
		return m.value
	}
	return def
}

func (m Maybe[T]) ValueOrElse(fallback func() T) T {
	if m.present {
		return m.value
	}
	return fallback()
}

func (m Maybe[T]) CreatedAt() time.Time {
	return m.createdAt
}

func (m Maybe[T]) IsEmpty() bool {
	return !m.present && m.id == uuid.Nil
}

func (m Maybe[T]) Id() uuid.UUID {
	return m.id
}

func (m Maybe[T]) String() string {
	if m.present {
		return fmt.Sprintf("Present(%v)", m.value)
	}
	return "Absent"
}
