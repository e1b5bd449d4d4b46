package arbor

import "reflect"

// ReadSignal is a read-only view of a reactive value cell. Handles are
// small values; copies address the same cell.
type ReadSignal[T any] struct {
	rt *Runtime
	h  handle
}

// Get returns the current value. If a computation is running, it is
// registered as a subscriber of this signal (no-op if already registered).
func (s ReadSignal[T]) Get() T {
	return s.rt.readCell(s.h).(T)
}

// GetUntracked returns the current value without registering a dependency,
// intentionally breaking the edge that Get would create.
func (s ReadSignal[T]) GetUntracked() T {
	return s.rt.peekCell(s.h).(T)
}

// Signal is a read-write reactive value cell.
type Signal[T any] struct {
	ReadSignal[T]
}

// NewSignal creates a signal holding initial. The backing cell is owned by
// the current scope and freed when that scope is disposed.
func NewSignal[T any](rt *Runtime, initial T) Signal[T] {
	return Signal[T]{ReadSignal[T]{rt: rt, h: rt.allocCell(initial)}}
}

// Set stores value and synchronously notifies every subscriber in
// subscription order. The entire notification chain, including chains of
// nested writes made by subscribers, completes before Set returns.
//
// Set returns a CycleError when called while this signal is already
// notifying on the calling stack; the value is not stored in that case.
func (s Signal[T]) Set(value T) error {
	return s.rt.writeCell(s.h, value)
}

// MustSet is Set but panics on a cycle. Convenient inside effect bodies
// where an error return has nowhere to go.
func (s Signal[T]) MustSet(value T) {
	if err := s.Set(value); err != nil {
		panic(err)
	}
}

// Update sets the signal to fn applied to the current value. The read does
// not create a dependency.
func (s Signal[T]) Update(fn func(T) T) error {
	return s.Set(fn(s.GetUntracked()))
}

// Named attaches a debug label to the signal, shown in snapshots, logs and
// cycle errors. Returns the signal for chaining.
func (s Signal[T]) Named(name string) Signal[T] {
	s.rt.mustLookup(s.h).name = name
	return s
}

// ReadOnly returns the read-only view of this signal.
func (s Signal[T]) ReadOnly() ReadSignal[T] {
	return s.ReadSignal
}

// defaultEquals provides type-appropriate equality checking.
// Uses == for common comparable kinds and reflect.DeepEqual for the rest.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}
