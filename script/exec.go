package script

import (
	"strconv"

	"github.com/anisan-cli/lifo/stack"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Absent is how a missing value renders.
const Absent = "<absent>"

// Result is the outcome of one Op.
type Result struct {
	Op Op
	// Value is the pushed, popped or peeked element, or the rendered answer of len and empty.
	// It is absent when pop or peek hit an empty stack.
	Value mo.Option[string]
	// Len is the stack length after the operation.
	Len int
}

func (r Result) String() string {
	return r.Value.OrElse(Absent)
}

// Exec applies op to s.
func Exec(s *stack.Stack[string], op Op) Result {
	var value mo.Option[string]

	switch op.Kind {
	case Push:
		s.Push(op.Arg)
		value = mo.Some(op.Arg)
	case Pop:
		value = s.Pop()
	case Peek:
		if top, ok := s.Peek().Get(); ok {
			value = mo.Some(*top)
		}
	case Len:
		value = mo.Some(strconv.Itoa(s.Len()))
	case Empty:
		value = mo.Some(strconv.FormatBool(s.IsEmpty()))
	}

	return Result{Op: op, Value: value, Len: s.Len()}
}

// Run executes ops against s in order.
func Run(s *stack.Stack[string], ops []Op) []Result {
	return lo.Map(ops, func(op Op, _ int) Result {
		return Exec(s, op)
	})
}
