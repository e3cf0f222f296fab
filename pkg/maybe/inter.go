package maybe

import "time"

// ValueProvider defines read access to an optional value
type ValueProvider[T any] interface {
	// HasValue returns true if a value is present
	HasValue() bool
	// IsEmpty returns true if no value is present
	IsEmpty() bool
	// Get returns the value and whether it is present
	Get() (T, bool)
	GetOrDefault(fallback T) T
	OrElseGet(supplier func() T) T
	OrElseErr(supplier func() error) (T, error)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithErrorTrack extends ValueProvider with error-track discrimination
type WithErrorTrack[T any] interface {
	ValueProvider[T]
	// IsError returns true if the present value is on the error track
	IsError() bool
}

// Monad is the full same-type operation set of an optional container. M is
// the implementing type itself, so alternative representations can satisfy
// it without changing call sites:
//
//	func Normalize[M maybe.Monad[string, M]](m M) M
type Monad[T any, M any] interface {
	WithErrorTrack[T]

	Map(f func(T) T) M
	FlatMap(f func(T) M) M
	Filter(predicate func(T) bool) M

	DoIfEmpty(action func()) M
	DoIfPresent(action func(T)) M

	DoOnError(action func(T)) M
	DoOnErrorMatching(predicate func(T) bool, action func(T)) M
	OnErrorMap(f func(T) T) M
	OnErrorMapMatching(predicate func(T) bool, f func(T) T) M
	OnErrorFlatMap(f func(T) M) M
	OnErrorFlatMapMatching(predicate func(T) bool, f func(T) M) M

	SwitchIfEmpty(replacement T) M
	Or(supplier func() M) M
}

var _ Monad[int, Maybe[int]] = Maybe[int]{}
