package maybe

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Maybe holds zero or one value of type T. It is never mutated: every
// operation returns either the receiver or a new container.
//
// Every container built by an operation, empty results included, takes a
// fresh id and timestamp from its factory. The default generator is
// uuid.New, which reads crypto/rand and panics if that fails; use
// WithIDGenerator to supply a cheaper one.
//
// The zero Maybe is empty, has a nil id and uses the package defaults.
type Maybe[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	present   bool
	s         *settings
}

func (m Maybe[T]) settings() *settings {
	if m.s == nil {
		return defaultSettings
	}
	return m.s
}

func (m Maybe[T]) ID() uuid.UUID {
	return m.id
}

// CreatedAt time creation (UTC)
func (m Maybe[T]) CreatedAt() time.Time {
	return m.createdAt
}

func (m Maybe[T]) HasValue() bool {
	return m.present
}

func (m Maybe[T]) IsEmpty() bool {
	return !m.present
}

// IsError reports whether the held value is on the error track.
// The error shape is never consulted for an empty container.
func (m Maybe[T]) IsError() bool {
	return m.present && m.settings().shape(m.value)
}

// Get returns the held value, or the zero value and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

func (m Maybe[T]) GetOrDefault(fallback T) T {
	if m.present {
		return m.value
	}
	return fallback
}

// OrElseGet returns the held value or calls supplier; supplier runs only
// when the container is empty.
func (m Maybe[T]) OrElseGet(supplier func() T) T {
	if m.present {
		return m.value
	}
	return supplier()
}

// OrElseErr returns the held value, or the error produced by supplier when
// empty. A nil supplier, or one returning nil, yields ErrEmpty.
func (m Maybe[T]) OrElseErr(supplier func() error) (T, error) {
	if m.present {
		return m.value, nil
	}

	var err error
	if supplier != nil {
		err = supplier()
	}
	if err == nil {
		err = errors.WithStack(ErrEmpty)
	}
	return m.value, err
}

// MustGet returns the held value and panics with ErrEmpty otherwise.
func (m Maybe[T]) MustGet() T {
	if !m.present {
		panic(errors.WithStack(ErrEmpty))
	}
	return m.value
}

func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if !m.present {
		return empty[T](m.settings())
	}
	return wrap(m.settings(), f(m.value))
}

// FlatMap returns f's container as is, without wrapping it again.
func (m Maybe[T]) FlatMap(f func(T) Maybe[T]) Maybe[T] {
	if !m.present {
		return empty[T](m.settings())
	}
	return f(m.value)
}

func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if m.present && predicate(m.value) {
		return m
	}
	return empty[T](m.settings())
}

func (m Maybe[T]) DoIfEmpty(action func()) Maybe[T] {
	if !m.present {
		action()
	}
	return m
}

func (m Maybe[T]) DoIfPresent(action func(T)) Maybe[T] {
	if m.present {
		action(m.value)
	}
	return m
}

// DoOnError runs action on an error value and keeps the container.
// A present value that is not an error is dropped: the result is empty.
func (m Maybe[T]) DoOnError(action func(T)) Maybe[T] {
	if !m.IsError() {
		return empty[T](m.settings())
	}
	action(m.value)
	return m
}

// DoOnErrorMatching is DoOnError restricted to errors accepted by predicate;
// anything else yields an empty container.
func (m Maybe[T]) DoOnErrorMatching(predicate func(T) bool, action func(T)) Maybe[T] {
	if m.IsError() && predicate(m.value) {
		action(m.value)
		return m
	}
	return empty[T](m.settings())
}

// TapError runs action on an error value and returns m in every case.
func (m Maybe[T]) TapError(action func(T)) Maybe[T] {
	if m.IsError() {
		action(m.value)
	}
	return m
}

func (m Maybe[T]) OnErrorMap(f func(T) T) Maybe[T] {
	if !m.IsError() {
		return empty[T](m.settings())
	}
	return wrap(m.settings(), f(m.value))
}

// OnErrorMapMatching maps errors accepted by predicate and passes other
// errors through unchanged. Non-error values yield an empty container.
func (m Maybe[T]) OnErrorMapMatching(predicate func(T) bool, f func(T) T) Maybe[T] {
	if !m.IsError() {
		return empty[T](m.settings())
	}
	if !predicate(m.value) {
		return m
	}
	return wrap(m.settings(), f(m.value))
}

func (m Maybe[T]) OnErrorFlatMap(f func(T) Maybe[T]) Maybe[T] {
	if !m.IsError() {
		return empty[T](m.settings())
	}
	return f(m.value)
}

func (m Maybe[T]) OnErrorFlatMapMatching(predicate func(T) bool, f func(T) Maybe[T]) Maybe[T] {
	if !m.IsError() {
		return empty[T](m.settings())
	}
	if !predicate(m.value) {
		return m
	}
	return f(m.value)
}

// SwitchIfEmpty returns a container holding replacement when m is empty.
// The replacement is subject to the presence policy.
func (m Maybe[T]) SwitchIfEmpty(replacement T) Maybe[T] {
	if m.present {
		return m
	}
	return wrap(m.settings(), replacement)
}

// Or returns supplier's container when m is empty; supplier is not called otherwise.
func (m Maybe[T]) Or(supplier func() Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return supplier()
}

func (m Maybe[T]) String() string {
	switch {
	case m.IsError():
		return fmt.Sprintf("Error(%v)", m.value)
	case m.present:
		return fmt.Sprintf("Just(%v)", m.value)
	default:
		return "Empty"
	}
}
