package maybe

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() uuid.UUID {
	var n byte
	return func() uuid.UUID {
		n++
		return uuid.UUID{15: n}
	}
}

func TestNewFactory_Identity(t *testing.T) {
	t.Parallel()

	now := time.UnixMicro(1257894000000)
	clock := clockwork.NewFakeClockAt(now)
	factory := NewFactory[int](WithClock(clock), WithIDGenerator(sequentialIDs()))

	first := factory.Of(1)
	clock.Advance(time.Minute)
	second := first.Map(func(v int) int { return v + 1 })

	assert.Equal(t, uuid.UUID{15: 1}, first.ID())
	assert.Equal(t, uuid.UUID{15: 2}, second.ID())
	assert.True(t, now.Equal(first.CreatedAt()))
	assert.True(t, now.Add(time.Minute).Equal(second.CreatedAt()))
	assert.Equal(t, time.UTC, first.CreatedAt().Location())
}

func TestNewFactory_SelfKeepsIdentity(t *testing.T) {
	t.Parallel()

	factory := NewFactory[int](WithIDGenerator(sequentialIDs()))
	m := factory.Of(4)

	assert.Equal(t, m.ID(), m.Filter(func(int) bool { return true }).ID())
	assert.Equal(t, m.ID(), m.DoIfPresent(func(int) {}).ID())
	assert.Equal(t, m.ID(), m.SwitchIfEmpty(1).ID())
	assert.Equal(t, m.ID(), m.Or(func() Maybe[int] { return factory.Empty() }).ID())
}

func TestNewFactory_ZeroAsAbsentDisabled(t *testing.T) {
	t.Parallel()

	factory := NewFactory[int](WithZeroAsAbsent(false))

	v, ok := factory.Of(0).Get()
	require.True(t, ok)
	assert.Equal(t, 0, v)

	mapped := factory.Of(3).Map(func(int) int { return 0 })
	assert.True(t, mapped.HasValue(), "settings are inherited by derived containers")
	assert.True(t, factory.Empty().IsEmpty())
}

func TestNewFactory_Just(t *testing.T) {
	t.Parallel()

	factory := NewFactory[string]()
	assert.True(t, factory.Just("").HasValue())
	assert.False(t, factory.Of("").HasValue())
}

func TestNewFactory_ErrorShape(t *testing.T) {
	t.Parallel()

	negative := func(v any) bool {
		n, ok := v.(int)
		return ok && n < 0
	}
	factory := NewFactory[int](WithErrorShape(negative))

	var seen int
	out := factory.Of(-3).DoOnError(func(v int) { seen = v })

	assert.Equal(t, -3, seen)
	assert.True(t, out.IsError())
	assert.False(t, factory.Of(3).IsError())
	assert.True(t, factory.Of(3).DoOnError(func(int) {}).IsEmpty())
}

func TestNewFactory_NilOptionsFallBack(t *testing.T) {
	t.Parallel()

	factory := NewFactory[any](WithClock(nil), WithIDGenerator(nil), WithErrorShape(nil))
	m := factory.Of(assert.AnError)

	assert.NotEqual(t, uuid.Nil, m.ID())
	assert.False(t, m.CreatedAt().IsZero())
	assert.True(t, m.IsError())
}

func TestZeroFactory_UsesDefaults(t *testing.T) {
	t.Parallel()

	var factory Factory[int]
	assert.False(t, factory.Of(0).HasValue())
	assert.True(t, factory.Of(1).HasValue())
}

func TestFromAndRelabel(t *testing.T) {
	t.Parallel()

	factory := NewFactory[int](WithZeroAsAbsent(false), WithIDGenerator(sequentialIDs()))
	m := factory.Of(7)

	derived := From(m, "")
	assert.True(t, derived.HasValue(), "From inherits the presence policy")
	assert.NotEqual(t, m.ID(), derived.ID())

	assert.True(t, EmptyFrom[int, string](m).IsEmpty())

	relabeled := Relabel(m, "seven")
	v, ok := relabeled.Get()
	require.True(t, ok)
	assert.Equal(t, "seven", v)
	assert.Equal(t, m.ID(), relabeled.ID())
	assert.Equal(t, m.CreatedAt(), relabeled.CreatedAt())

	_, ok = Relabel(factory.Empty(), "x").Get()
	assert.False(t, ok)
}

func TestNewFactory_EmptyResultsTakeIDs(t *testing.T) {
	t.Parallel()

	factory := NewFactory[int](WithIDGenerator(sequentialIDs()))
	m := factory.Of(1)

	filtered := m.Filter(func(int) bool { return false })
	dropped := m.DoOnError(func(int) {})

	assert.True(t, filtered.IsEmpty())
	assert.True(t, dropped.IsEmpty())
	assert.Equal(t, uuid.UUID{15: 2}, filtered.ID())
	assert.Equal(t, uuid.UUID{15: 3}, dropped.ID())
}
