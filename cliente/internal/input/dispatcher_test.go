package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "wheel", KindWheel.String())
	assert.Equal(t, "touchstart", KindTouchStart.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestDispatchByKindInRegistrationOrder(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	d.Register("b", KindKeyDown, func(Event) bool { calls = append(calls, "b"); return false })
	d.Register("a", KindKeyDown, func(Event) bool { calls = append(calls, "a"); return false })
	d.Register("w", KindWheel, func(Event) bool { calls = append(calls, "w"); return true })

	assert.False(t, d.Dispatch(Event{Kind: KindKeyDown, Key: KeyW}))
	assert.Equal(t, []string{"b", "a"}, calls)

	calls = nil
	assert.True(t, d.Dispatch(Event{Kind: KindWheel, DeltaY: 100}))
	assert.Equal(t, []string{"w"}, calls)

	assert.False(t, d.Dispatch(Event{Kind: KindTouchEnd}))
}

func TestRegisterReplacesSameName(t *testing.T) {
	d := NewDispatcher()
	first, second := 0, 0
	d.Register("h", KindKeyUp, func(Event) bool { first++; return false })
	d.Register("h", KindKeyUp, func(Event) bool { second++; return false })
	d.Register("nil", KindKeyUp, nil)

	d.Dispatch(Event{Kind: KindKeyUp})
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, d.Len())
	assert.False(t, d.Has("nil"))
}

func TestUnregister(t *testing.T) {
	d := NewDispatcher()
	called := false
	d.Register("h", KindPointerMove, func(Event) bool { called = true; return false })

	assert.True(t, d.Unregister("h"))
	assert.False(t, d.Unregister("h"))
	d.Dispatch(Event{Kind: KindPointerMove})
	assert.False(t, called)
	assert.Equal(t, 0, d.Len())
}

func TestHandlerRemovedDuringDispatchIsSkipped(t *testing.T) {
	d := NewDispatcher()
	secondCalled := false
	d.Register("first", KindKeyDown, func(Event) bool {
		d.Unregister("second")
		return false
	})
	d.Register("second", KindKeyDown, func(Event) bool { secondCalled = true; return false })

	d.Dispatch(Event{Kind: KindKeyDown})
	assert.False(t, secondCalled)
	assert.True(t, d.Has("first"))
}
