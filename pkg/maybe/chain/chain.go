package chain

import (
	"go.uber.org/zap"

	"github.com/ib-77/maybe/pkg/maybe"
	"github.com/ib-77/maybe/pkg/maybe/solo"
)

const (
	StateValue = "value"
	StateError = "error"
	StateEmpty = "empty"
)

// Chain wraps a maybe.Maybe with a logger to enable fluent chaining
type Chain[T any] struct {
	logger *zap.Logger
	result maybe.Maybe[T]
}

// Start creates a new chain from a maybe.Maybe. A nil logger discards output.
func Start[T any](logger *zap.Logger, result maybe.Maybe[T]) *Chain[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return next(logger, "start", result)
}

// FromValue creates a new chain from maybe.Of(value)
func FromValue[T any](logger *zap.Logger, value T) *Chain[T] {
	return Start(logger, maybe.Of(value))
}

// Result returns the underlying maybe.Maybe
func (c *Chain[T]) Result() maybe.Maybe[T] {
	return c.result
}

// Then chains a function that returns maybe.Maybe[U]
func Then[T, U any](c *Chain[T], onValue func(T) maybe.Maybe[U]) *Chain[U] {
	return next(c.logger, "then", solo.FlatMap(c.result, onValue))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onValue func(T) U) *Chain[U] {
	return next(c.logger, "map", solo.Map(c.result, onValue))
}

// Recover turns an error-track value into a U; anything else becomes empty
func Recover[T, U any](c *Chain[T], onError func(T) U) *Chain[U] {
	return next(c.logger, "recover", solo.OnErrorMap(c.result, onError))
}

func (c *Chain[T]) Filter(predicate func(T) bool) *Chain[T] {
	return next(c.logger, "filter", c.result.Filter(predicate))
}

// Ensure performs a side effect on a present value without changing the result
func (c *Chain[T]) Ensure(onValue func(T)) *Chain[T] {
	return next(c.logger, "ensure", c.result.DoIfPresent(onValue))
}

// OnError performs a side effect on an error; a non-error value is dropped
func (c *Chain[T]) OnError(onError func(T)) *Chain[T] {
	return next(c.logger, "on_error", c.result.DoOnError(onError))
}

// Otherwise replaces an empty result with the supplied one
func (c *Chain[T]) Otherwise(supplier func() maybe.Maybe[T]) *Chain[T] {
	return next(c.logger, "otherwise", c.result.Or(supplier))
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onValue func(T) U, onError func(T) U, onEmpty func() U) U {
	c.logger.Debug("maybe chain finished", fields("finally", c.result)...)
	return solo.Finally(c.result, onValue, onError, onEmpty)
}

// State names the state of m: StateValue, StateError or StateEmpty.
func State[T any](m maybe.WithErrorTrack[T]) string {
	switch {
	case m.IsError():
		return StateError
	case m.HasValue():
		return StateValue
	default:
		return StateEmpty
	}
}

func next[T any](logger *zap.Logger, step string, result maybe.Maybe[T]) *Chain[T] {
	logger.Debug("maybe chain step", fields(step, result)...)
	return &Chain[T]{logger: logger, result: result}
}

func fields[T any](step string, result maybe.Maybe[T]) []zap.Field {
	return []zap.Field{
		zap.String("step", step),
		zap.Stringer("id", result.ID()),
		zap.String("state", State[T](result)),
	}
}
