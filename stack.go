// Package stack provides a growable, generic last-in-first-out container.
package stack

import (
	"fmt"

	"github.com/samber/mo"
)

// Stack implements a parameterized Last-In-First-Out (LIFO) data structure.
// The zero value is an empty stack ready to use; New is provided for callers
// that prefer an explicit constructor.
// A Stack is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push appends value as the new top of the stack, growing its size by one.
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the topmost element of the stack, shrinking its
// size by one; returns None and leaves the stack unchanged if the stack is
// empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	idx := len(s.items) - 1
	item := s.items[idx]
	var zero T
	// Zero the vacated slot so the backing array holds no reference to the
	// popped element.
	s.items[idx] = zero
	s.items = s.items[:idx]
	return mo.Some(item)
}

// Peek returns the topmost element without removing it; returns None if the
// stack is empty. The returned value reflects the stack at the moment of the
// call and is not updated by subsequent pushes or pops.
func (s *Stack[T]) Peek() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.items[len(s.items)-1])
}

// Size returns the number of elements currently stored in the stack.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Clear removes all elements from the stack, resetting it to an empty state.
func (s *Stack[T]) Clear() {
	s.items = nil
}

// String renders the stack bottom to top.
func (s *Stack[T]) String() string {
	return fmt.Sprintf("Stack%v", s.items)
}
