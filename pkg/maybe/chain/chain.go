package chain

import (
	"github.com/ib-77/maybe/pkg/maybe"
	"github.com/ib-77/maybe/pkg/maybe/solo"
)

// Chain wraps a maybe.Maybe to enable fluent chaining
type Chain[T any] struct {
	m maybe.Maybe[T]
}

// Start creates a new chain from a maybe.Maybe
func Start[T any](m maybe.Maybe[T]) Chain[T] {
	return Chain[T]{m: m}
}

// FromValue creates a new chain from a present value
func FromValue[T any](v T) Chain[T] {
	return Start(maybe.Present(v))
}

// Maybe returns the underlying maybe.Maybe
func (c Chain[T]) Maybe() maybe.Maybe[T] {
	return c.m
}

// Then composes functions that already return maybe.Maybe[T]
func (c Chain[T]) Then(onPresent func(t T) maybe.Maybe[T]) Chain[T] {
	if c.m.IsAbsent() {
		return c
	}
	return Chain[T]{m: onPresent(c.m.Value())}
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	if c.m.IsAbsent() {
		return c
	}
	return Chain[T]{m: maybe.Try(try(c.m.Value()))}
}

// Map transforms the present value to a new value
func (c Chain[T]) Map(onPresent func(t T) T) Chain[T] {
	if c.m.IsAbsent() {
		return c
	}
	return Chain[T]{m: maybe.Present(onPresent(c.m.Value()))}
}

// Filter keeps the present value only when keep accepts it
func (c Chain[T]) Filter(keep func(t T) bool) Chain[T] {
	return Chain[T]{m: solo.Filter(c.m, keep)}
}

// RepeatUntil applies onPresent repeatedly until the predicate holds
// or the chain turns absent
func (c Chain[T]) RepeatUntil(onPresent func(t T) maybe.Maybe[T],
	until func(t T) bool) Chain[T] {

	if c.m.IsAbsent() {
		return c
	}

	for {
		c = c.Then(onPresent)

		if c.m.IsAbsent() || until(c.m.Value()) {
			return c
		}
	}
}

// While applies onPresent as long as the predicate holds and the chain
// stays present
func (c Chain[T]) While(onPresent func(t T) maybe.Maybe[T],
	while func(t T) bool) Chain[T] {

	for c.m.IsPresent() && while(c.m.Value()) {
		c = c.Then(onPresent)
	}
	return c
}

func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return c.or(alternative)
}

func (c Chain[T]) or(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	for _, ch := range candidates {
		if ch.m.IsPresent() {
			return ch
		}
	}

	return c
}

func (c Chain[T]) And(required Chain[T]) Chain[T] {
	return c.and(required)
}

func (c Chain[T]) and(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	last := c
	for _, ch := range candidates {
		if ch.m.IsAbsent() {
			return ch
		}
		last = ch
	}

	return last
}

// Ensure triggers side effects for presence/absence without changing the chain
func (c Chain[T]) Ensure(onPresent func(T), onAbsent func()) Chain[T] {
	if c.m.IsAbsent() {
		if onAbsent != nil {
			onAbsent()
		}
		return c
	}

	if onPresent != nil {
		onPresent(c.m.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(onPresent func(t T) T, onAbsent func() T) T {
	return solo.Finally(c.m, onPresent, onAbsent)
}

// To collapses the chain to the present value, or def when absent
func (c Chain[T]) To(def T) T {
	return c.m.ValueOr(def)
}

// Then chains a function that returns maybe.Maybe[U]
func Then[T, U any](c Chain[T], onPresent func(t T) maybe.Maybe[U]) Chain[U] {
	return Chain[U]{m: solo.Switch[T, U](c.m, onPresent)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], try func(t T) (U, error)) Chain[U] {
	return Chain[U]{m: solo.Try[T, U](c.m, try)}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onPresent func(t T) U) Chain[U] {
	return Chain[U]{m: solo.Map[T, U](c.m, onPresent)}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c Chain[T], onPresent func(t T) U, onAbsent func() U) U {
	return solo.Finally[T, U](c.m, onPresent, onAbsent)
}
