package maybe

import "fmt"

// OneOf holds either a T (first) or a U (second). Cross-type operations
// that keep the original value on some branch return Maybe[OneOf[T, U]]
// so the caller has to handle both types.
type OneOf[T, U any] struct {
	first    T
	second   U
	isSecond bool
}

func First[T, U any](v T) OneOf[T, U] {
	return OneOf[T, U]{first: v}
}

func Second[T, U any](v U) OneOf[T, U] {
	return OneOf[T, U]{second: v, isSecond: true}
}

func (o OneOf[T, U]) First() (T, bool) {
	return o.first, !o.isSecond
}

func (o OneOf[T, U]) Second() (U, bool) {
	return o.second, o.isSecond
}

func (o OneOf[T, U]) IsFirst() bool {
	return !o.isSecond
}

func (o OneOf[T, U]) IsSecond() bool {
	return o.isSecond
}

// Value returns whichever side is set.
func (o OneOf[T, U]) Value() any {
	if o.isSecond {
		return o.second
	}
	return o.first
}

func (o OneOf[T, U]) isUnion() {}

func (o OneOf[T, U]) String() string {
	return fmt.Sprint(o.Value())
}

// Fold collapses o into a single R.
func Fold[T, U, R any](o OneOf[T, U], onFirst func(T) R, onSecond func(U) R) R {
	if o.isSecond {
		return onSecond(o.second)
	}
	return onFirst(o.first)
}
