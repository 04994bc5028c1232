// Package stack provides a generic LIFO container backed by a singly linked list.
package stack

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEmpty is returned by Pop, Peek and RemoveBottom on an empty stack.
	ErrEmpty = errors.New("stack is empty")
	// ErrInvalidIndex is returned by At for an out-of-range position.
	ErrInvalidIndex = errors.New("invalid position")
)

type node[T any] struct {
	data T
	next *node[T]
}

// Stack is a last-in-first-out container. The zero value is an empty stack
// ready to use. A Stack is not safe for concurrent use.
type Stack[T any] struct {
	top  *node[T]
	size int
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds a value to the top of the stack.
func (s *Stack[T]) Push(value T) {
	s.top = &node[T]{data: value, next: s.top}
	s.size++
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := s.top
	s.top = n.next
	n.next = nil
	s.size--
	return n.data, nil
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}
	return s.top.data, nil
}

// At returns the value at the given depth, where 0 is the top.
func (s *Stack[T]) At(index int) (T, error) {
	if index < 0 || index >= s.size {
		var zero T
		return zero, fmt.Errorf("%w: %d (size %d)", ErrInvalidIndex, index, s.size)
	}
	cur := s.top
	for i := 0; i < index; i++ {
		cur = cur.next
	}
	return cur.data, nil
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// Len returns the number of values in the stack.
func (s *Stack[T]) Len() int {
	return s.size
}

// RemoveBottom removes and returns the oldest value still in the stack.
func (s *Stack[T]) RemoveBottom() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}
	if s.top.next == nil {
		return s.Pop()
	}

	// Walk to the second-to-last node.
	cur := s.top
	for cur.next.next != nil {
		cur = cur.next
	}
	data := cur.next.data
	cur.next = nil
	s.size--
	return data, nil
}

// Display writes every value from top to bottom, one per line, or
// "Stack is empty" when there is nothing to show.
func (s *Stack[T]) Display(w io.Writer) error {
	if s.top == nil {
		_, err := fmt.Fprintln(w, "Stack is empty")
		return err
	}
	for cur := s.top; cur != nil; cur = cur.next {
		if _, err := fmt.Fprintln(w, cur.data); err != nil {
			return err
		}
	}
	return nil
}

// Values returns a snapshot of the stack from top to bottom.
func (s *Stack[T]) Values() []T {
	values := make([]T, 0, s.size)
	for cur := s.top; cur != nil; cur = cur.next {
		values = append(values, cur.data)
	}
	return values
}

// Clone returns an independent copy with its own nodes holding the same values.
func (s *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{}
	c.copyFrom(s)
	return c
}

// Assign replaces the contents of s with a copy of src. Assigning a stack to
// itself leaves it unchanged.
func (s *Stack[T]) Assign(src *Stack[T]) {
	if s == src {
		return
	}
	s.Clear()
	s.copyFrom(src)
}

// Clear removes every value.
func (s *Stack[T]) Clear() {
	for s.top != nil {
		n := s.top
		s.top = n.next
		n.next = nil
	}
	s.size = 0
}

// copyFrom rebuilds s as a node-for-node copy of src. s must be empty.
func (s *Stack[T]) copyFrom(src *Stack[T]) {
	if src == nil || src.top == nil {
		return
	}
	s.top = &node[T]{data: src.top.data}
	tail := s.top
	for cur := src.top.next; cur != nil; cur = cur.next {
		tail.next = &node[T]{data: cur.data}
		tail = tail.next
	}
	s.size = src.size
}
