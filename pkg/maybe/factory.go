package maybe

import (
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type settings struct {
	clock        clockwork.Clock
	newID        func() uuid.UUID
	shape        ErrorShape
	zeroAsAbsent bool
}

var defaultSettings = &settings{
	clock:        clockwork.NewRealClock(),
	newID:        uuid.New,
	shape:        IsError,
	zeroAsAbsent: true,
}

// Option configures a Factory.
type Option func(s *settings)

// WithClock sets the clock used to stamp CreatedAt.
func WithClock(clock clockwork.Clock) Option {
	return func(s *settings) {
		s.clock = clock
	}
}

// WithIDGenerator sets the generator of container ids.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *settings) {
		s.newID = newID
	}
}

// WithErrorShape sets the predicate selecting error-track values.
func WithErrorShape(shape ErrorShape) Option {
	return func(s *settings) {
		s.shape = shape
	}
}

// WithZeroAsAbsent controls whether falsy values (see IsFalsy) passed to Of,
// or produced by Map and friends, make the container empty. Enabled by default.
func WithZeroAsAbsent(enabled bool) Option {
	return func(s *settings) {
		s.zeroAsAbsent = enabled
	}
}

// Factory creates containers sharing one set of settings. Every container
// derived from them inherits the same settings, whatever its type.
// The zero Factory uses the package defaults.
type Factory[T any] struct {
	s *settings
}

func NewFactory[T any](opts ...Option) Factory[T] {
	s := *defaultSettings
	for _, opt := range opts {
		opt(&s)
	}

	if s.clock == nil {
		s.clock = defaultSettings.clock
	}
	if s.newID == nil {
		s.newID = defaultSettings.newID
	}
	if s.shape == nil {
		s.shape = defaultSettings.shape
	}

	return Factory[T]{s: &s}
}

func (f Factory[T]) settings() *settings {
	if f.s == nil {
		return defaultSettings
	}
	return f.s
}

// Of returns a container holding v, or an empty one if the presence policy
// rejects v.
func (f Factory[T]) Of(v T) Maybe[T] {
	return wrap(f.settings(), v)
}

// Just returns a container holding v regardless of the presence policy.
func (f Factory[T]) Just(v T) Maybe[T] {
	return build(f.settings(), v, true)
}

func (f Factory[T]) Empty() Maybe[T] {
	return empty[T](f.settings())
}

// Of returns a container holding v, or an empty one when v is falsy.
func Of[T any](v T) Maybe[T] {
	return wrap(defaultSettings, v)
}

// Just returns a container holding v, even when v is falsy.
func Just[T any](v T) Maybe[T] {
	return build(defaultSettings, v, true)
}

func Empty[T any]() Maybe[T] {
	return empty[T](defaultSettings)
}

// From returns a new container holding v that inherits the settings of from.
func From[In, Out any](from Maybe[In], v Out) Maybe[Out] {
	return wrap(from.settings(), v)
}

// EmptyFrom returns a new empty container that inherits the settings of from.
func EmptyFrom[In, Out any](from Maybe[In]) Maybe[Out] {
	return empty[Out](from.settings())
}

// Relabel moves from to another type parameter: the id, creation time,
// settings and presence are kept, the held value becomes v.
func Relabel[In, Out any](from Maybe[In], v Out) Maybe[Out] {
	out := Maybe[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		present:   from.present,
		s:         from.s,
	}
	if out.present {
		out.value = v
	}
	return out
}

func build[T any](s *settings, v T, present bool) Maybe[T] {
	m := Maybe[T]{
		id:        s.newID(),
		createdAt: s.clock.Now().UTC(),
		present:   present,
		s:         s,
	}
	if present {
		m.value = v
	}
	return m
}

func wrap[T any](s *settings, v T) Maybe[T] {
	return build(s, v, !(s.zeroAsAbsent && IsFalsy(v)))
}

func empty[T any](s *settings) Maybe[T] {
	var zero T
	return build(s, zero, false)
}
