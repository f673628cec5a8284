// Package stack provides a generic, single-owner Last-In-First-Out (LIFO) container.
//
// Reads of the top element are modelled as present/absent results rather than errors:
// popping or peeking an empty stack is routine and yields mo.None.
package stack

import (
	"github.com/samber/mo"
)

// ErrCopied is the panic message raised when a Stack copied by value is used.
const ErrCopied = "stack: illegal use of non-zero Stack copied by value"

// noCopy may be embedded into structs which must not be copied after first use.
// It is recognised by the copylocks checker of go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Stack implements a parameterized Last-In-First-Out (LIFO) data structure.
//
// The zero value is an empty stack ready to use. A Stack must not be copied
// after its first mutation; pass a *Stack to transfer ownership.
// It is not safe for concurrent use.
type Stack[T any] struct {
	noCopy noCopy

	addr  *Stack[T]
	items []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// copyCheck pins the stack to its address and panics if it is later used through a copy.
func (s *Stack[T]) copyCheck() {
	if s.addr == nil {
		s.addr = s
	} else if s.addr != s {
		panic(ErrCopied)
	}
}

// Push appends a new element to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.copyCheck()
	s.items = append(s.items, item)
}

// Pop removes and returns the topmost element of the stack; returns mo.None if the stack is empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	s.copyCheck()
	if len(s.items) == 0 {
		return mo.None[T]()
	}

	idx := len(s.items) - 1
	item := s.items[idx]

	// Drop the reference held by the backing array.
	var zero T
	s.items[idx] = zero
	s.items = s.items[:idx]

	return mo.Some(item)
}

// Peek returns a pointer to the topmost element without removing it; returns mo.None if the stack is empty.
// The pointer is only valid until the next Push or Pop.
func (s *Stack[T]) Peek() mo.Option[*T] {
	s.copyCheck()
	if len(s.items) == 0 {
		return mo.None[*T]()
	}
	return mo.Some(&s.items[len(s.items)-1])
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the total number of elements currently stored in the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
