package stack

import "github.com/samber/mo"

// Search scans s from the top toward the bottom for the first element equal
// to value and returns its 1-based distance from the top: the top element is
// position 1, the element directly below it position 2, and so on. When
// several equal elements exist, the occurrence closest to the top wins.
// Returns None if value is absent or the stack is empty. Search does not
// mutate the stack.
//
// Search is a function rather than a method so that only searching requires
// a comparable element type; stacks of non-comparable element types remain
// fully usable.
func Search[T comparable](s *Stack[T], value T) mo.Option[int] {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i] == value {
			return mo.Some(len(s.items) - i)
		}
	}
	return mo.None[int]()
}
