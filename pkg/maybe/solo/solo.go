package solo

import (
	"github.com/ib-77/maybe/pkg/maybe"
)

func Present[T any](input T) maybe.Maybe[T] {
	return maybe.Present(input)
}

func Absent[T any]() maybe.Maybe[T] {
	return maybe.Absent[T]()
}

func Switch[In any, Out any](input maybe.Maybe[In],
	onPresent func(in In) maybe.Maybe[Out]) maybe.Maybe[Out] {

	if input.IsPresent() {
		return onPresent(input.Value())
	}
	return maybe.AbsentFrom[In, Out](input)
}

func Map[In any, Out any](input maybe.Maybe[In],
	onPresent func(in In) Out) maybe.Maybe[Out] {

	if input.IsPresent() {
		return maybe.Present(onPresent(input.Value()))
	}
	return maybe.AbsentFrom[In, Out](input)
}

func Try[In any, Out any](input maybe.Maybe[In],
	onTry func(in In) (Out, error)) maybe.Maybe[Out] {

	if input.IsPresent() {
		return maybe.Try(onTry(input.Value()))
	}
	return maybe.AbsentFrom[In, Out](input)
}

func Filter[T any](input maybe.Maybe[T],
	keep func(in T) bool) maybe.Maybe[T] {

	if input.IsPresent() && !keep(input.Value()) {
		return maybe.AbsentFrom[T, T](input)
	}
	return input
}

func Tee[T any](input maybe.Maybe[T],
	onPresent func(m maybe.Maybe[T])) maybe.Maybe[T] {

	if input.IsPresent() {
		onPresent(input)
	}

	return input
}

func TeeIf[T any](input maybe.Maybe[T],
	condition func(m maybe.Maybe[T]) bool,
	onPresentAndCondition func(m maybe.Maybe[T])) maybe.Maybe[T] {

	if input.IsPresent() {
		if condition(input) {
			onPresentAndCondition(input)
		}
	}

	return input
}

func DoubleTee[T any](input maybe.Maybe[T],
	onPresent func(v T),
	onAbsent func()) maybe.Maybe[T] {

	if input.IsPresent() {
		onPresent(input.Value())
	} else {
		onAbsent()
	}

	return input
}

func DoubleMap[In any, Out any](input maybe.Maybe[In],
	onPresent func(in In) Out,
	onAbsent func()) maybe.Maybe[Out] {

	if input.IsPresent() {
		return maybe.Present(onPresent(input.Value()))
	}

	onAbsent()
	return maybe.AbsentFrom[In, Out](input)
}

func AbsentOnError[T any](input maybe.Maybe[T],
	check func(in T) error) maybe.Maybe[T] {

	if input.IsPresent() {
		if err := check(input.Value()); err != nil {
			return maybe.AbsentFrom[T, T](input)
		}
	}
	return input
}

func Finally[In, Out any](input maybe.Maybe[In],
	onPresent func(v In) Out,
	onAbsent func() Out) Out {

	if input.IsPresent() {
		return onPresent(input.Value())
	}
	return onAbsent()
}

// Or returns input when present, otherwise the first present
// alternative. With no present candidate the original absence is
// returned unchanged.
func Or[T any](input maybe.Maybe[T], alternatives ...maybe.Maybe[T]) maybe.Maybe[T] {
	if input.IsPresent() {
		return input
	}

	for _, alt := range alternatives {
		if alt.IsPresent() {
			return alt
		}
	}

	return input
}
