package maybe

import "github.com/pkg/errors"

// ErrEmpty is returned (or panicked with) when a value is demanded from an
// empty Maybe and no other error was supplied.
var ErrEmpty = errors.New("maybe: no value present")

// ErrorShape decides whether a held value belongs to the error track.
type ErrorShape func(v any) bool

// IsError is the default ErrorShape: the value is a non-nil error.
// A OneOf is judged by the side it holds.
func IsError(v any) bool {
	err, ok := unwrapUnion(v).(error)
	return ok && !IsNil(err)
}

// ErrorOf returns an ErrorShape matching errors whose chain contains an E.
func ErrorOf[E error]() ErrorShape {
	return func(v any) bool {
		if !IsError(v) {
			return false
		}
		var target E
		return errors.As(unwrapUnion(v).(error), &target)
	}
}

// AnyOf matches when at least one of the shapes matches.
func AnyOf(shapes ...ErrorShape) ErrorShape {
	return func(v any) bool {
		for _, shape := range shapes {
			if shape != nil && shape(v) {
				return true
			}
		}
		return false
	}
}

type union interface {
	Value() any
	isUnion()
}

func unwrapUnion(v any) any {
	if u, ok := v.(union); ok {
		return u.Value()
	}
	return v
}
