package solo

import (
	"github.com/ib-77/maybe/pkg/maybe"
)

func Map[T, U any](input maybe.Maybe[T], f func(T) U) maybe.Maybe[U] {
	v, ok := input.Get()
	if !ok {
		return maybe.EmptyFrom[T, U](input)
	}
	return maybe.From(input, f(v))
}

func FlatMap[T, U any](input maybe.Maybe[T], f func(T) maybe.Maybe[U]) maybe.Maybe[U] {
	v, ok := input.Get()
	if !ok {
		return maybe.EmptyFrom[T, U](input)
	}
	return f(v)
}

func OnErrorMap[T, U any](input maybe.Maybe[T], f func(T) U) maybe.Maybe[U] {
	if !input.IsError() {
		return maybe.EmptyFrom[T, U](input)
	}
	v, _ := input.Get()
	return maybe.From(input, f(v))
}

func OnErrorFlatMap[T, U any](input maybe.Maybe[T], f func(T) maybe.Maybe[U]) maybe.Maybe[U] {
	if !input.IsError() {
		return maybe.EmptyFrom[T, U](input)
	}
	v, _ := input.Get()
	return f(v)
}

// OnErrorMapMatching maps errors accepted by predicate to Second(f(err)).
// Rejected errors are kept as First(err) in the same container.
// Empty input and non-error values yield an empty container.
func OnErrorMapMatching[T, U any](input maybe.Maybe[T],
	predicate func(T) bool, f func(T) U) maybe.Maybe[maybe.OneOf[T, U]] {

	if !input.IsError() {
		return maybe.EmptyFrom[T, maybe.OneOf[T, U]](input)
	}

	v, _ := input.Get()
	if !predicate(v) {
		return maybe.Relabel(input, maybe.First[T, U](v))
	}
	return Map(maybe.From(input, f(v)), maybe.Second[T, U])
}

func OnErrorFlatMapMatching[T, U any](input maybe.Maybe[T],
	predicate func(T) bool, f func(T) maybe.Maybe[U]) maybe.Maybe[maybe.OneOf[T, U]] {

	if !input.IsError() {
		return maybe.EmptyFrom[T, maybe.OneOf[T, U]](input)
	}

	v, _ := input.Get()
	if !predicate(v) {
		return maybe.Relabel(input, maybe.First[T, U](v))
	}
	return Map(f(v), maybe.Second[T, U])
}

// SwitchIfEmpty keeps a present value as First and replaces an empty
// container with Second(replacement).
func SwitchIfEmpty[T, U any](input maybe.Maybe[T], replacement U) maybe.Maybe[maybe.OneOf[T, U]] {
	if v, ok := input.Get(); ok {
		return maybe.Relabel(input, maybe.First[T, U](v))
	}
	return Map(maybe.From(input, replacement), maybe.Second[T, U])
}

// Or keeps a present value as First; otherwise the container returned by
// supplier is used as Second. supplier is only called for empty input.
func Or[T, U any](input maybe.Maybe[T], supplier func() maybe.Maybe[U]) maybe.Maybe[maybe.OneOf[T, U]] {
	if v, ok := input.Get(); ok {
		return maybe.Relabel(input, maybe.First[T, U](v))
	}
	return Map(supplier(), maybe.Second[T, U])
}

func Finally[T, Out any](input maybe.Maybe[T],
	onValue func(T) Out,
	onError func(T) Out,
	onEmpty func() Out) Out {

	v, ok := input.Get()
	if !ok {
		return onEmpty()
	}
	if input.IsError() {
		return onError(v)
	}
	return onValue(v)
}

// Attempt calls f and holds its error when it fails, its value otherwise.
// The result follows the default presence policy, so a zero value is empty.
func Attempt[T any](f func() (T, error)) maybe.Maybe[any] {
	v, err := f()
	if err != nil {
		return maybe.Of[any](err)
	}
	return maybe.Of[any](v)
}
