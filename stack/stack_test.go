package stack

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a new stack of integers", t, func() {
		s := New[int]()

		Convey("It is empty", func() {
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
			So(s.Peek().IsAbsent(), ShouldBeTrue)
		})

		Convey("The zero value behaves the same", func() {
			var z Stack[int]
			So(z.IsEmpty(), ShouldBeTrue)
			So(z.Len(), ShouldEqual, 0)
			So(z.Pop().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestPushPop(t *testing.T) {
	Convey("Given a stack with 1 and 2 pushed", t, func() {
		s := New[int]()
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)

		Convey("Pop returns elements in reverse order", func() {
			item, ok := s.Pop().Get()
			So(ok, ShouldBeTrue)
			So(item, ShouldEqual, 2)
			So(s.Len(), ShouldEqual, 1)

			item, ok = s.Pop().Get()
			So(ok, ShouldBeTrue)
			So(item, ShouldEqual, 1)
			So(s.Len(), ShouldEqual, 0)

			So(s.Pop().IsAbsent(), ShouldBeTrue)
			So(s.IsEmpty(), ShouldBeTrue)
		})
	})

	Convey("Given pointer elements", t, func() {
		s := New[*string]()
		v := "owned"
		s.Push(&v)

		Convey("Pop clears the vacated slot", func() {
			So(s.Pop().MustGet(), ShouldEqual, &v)
			So(s.items[:1][0], ShouldBeNil)
		})
	})
}

func TestPeek(t *testing.T) {
	Convey("Given an empty stack of integers", t, func() {
		s := New[int]()
		So(s.Peek().IsAbsent(), ShouldBeTrue)

		Convey("Peek follows the top", func() {
			s.Push(3)
			So(*s.Peek().MustGet(), ShouldEqual, 3)

			s.Push(5)
			So(*s.Peek().MustGet(), ShouldEqual, 5)

			So(s.Pop().MustGet(), ShouldEqual, 5)
			So(*s.Peek().MustGet(), ShouldEqual, 3)
		})

		Convey("Repeated peeks do not mutate", func() {
			s.Push(7)
			s.Push(8)
			for i := 0; i < 10; i++ {
				So(*s.Peek().MustGet(), ShouldEqual, 8)
			}
			So(s.Len(), ShouldEqual, 2)
			So(s.Pop().MustGet(), ShouldEqual, 8)
		})

		Convey("The peeked pointer refers to the stored element", func() {
			s.Push(1)
			*s.Peek().MustGet() = 42
			So(s.Pop().MustGet(), ShouldEqual, 42)
		})
	})
}

func TestIsEmpty(t *testing.T) {
	Convey("Given an empty stack of strings", t, func() {
		s := New[string]()
		So(s.Peek().IsAbsent(), ShouldBeTrue)

		Convey("It is non-empty only while holding an element", func() {
			s.Push("hello")
			So(*s.Peek().MustGet(), ShouldEqual, "hello")
			So(s.IsEmpty(), ShouldBeFalse)

			So(s.Pop().MustGet(), ShouldEqual, "hello")
			So(s.IsEmpty(), ShouldBeTrue)
		})

		Convey("Popping twice yields absent both times", func() {
			So(s.Pop().IsAbsent(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
			So(s.Pop().IsAbsent(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
		})
	})
}

func TestLIFO(t *testing.T) {
	Convey("Pushing a sequence and popping it back reverses it", t, func() {
		s := New[int]()
		values := []int{4, 8, 15, 16, 23, 42}
		for _, v := range values {
			s.Push(v)
		}

		for i := len(values) - 1; i >= 0; i-- {
			So(s.Pop().MustGet(), ShouldEqual, values[i])
		}
		So(s.IsEmpty(), ShouldBeTrue)
	})
}

func TestAgainstModel(t *testing.T) {
	Convey("Random operation sequences match a reference slice", t, func() {
		r := rand.New(rand.NewSource(1))
		s := New[int]()

		var (
			model  []int
			pushes int
			pops   int
		)

		for i := 0; i < 1000; i++ {
			switch r.Intn(3) {
			case 0:
				v := r.Int()
				s.Push(v)
				model = append(model, v)
				pushes++
			case 1:
				got, ok := s.Pop().Get()
				if len(model) == 0 {
					So(ok, ShouldBeFalse)
					break
				}
				So(ok, ShouldBeTrue)
				So(got, ShouldEqual, model[len(model)-1])
				model = model[:len(model)-1]
				pops++
			case 2:
				top, ok := s.Peek().Get()
				So(ok, ShouldEqual, len(model) > 0)
				if ok {
					So(*top, ShouldEqual, model[len(model)-1])
				}
			}

			So(s.Len(), ShouldEqual, len(model))
			So(s.Len(), ShouldEqual, pushes-pops)
			So(s.IsEmpty(), ShouldEqual, s.Len() == 0)
		}
	})
}

func TestSingleOwner(t *testing.T) {
	Convey("Given a stack that has been used", t, func() {
		s := New[int]()
		s.Push(1)

		Convey("Transferring the pointer keeps a single stack", func() {
			moved := s
			moved.Push(2)
			So(s.Len(), ShouldEqual, 2)
			So(s.Pop().MustGet(), ShouldEqual, 2)
		})

		Convey("A copy by value cannot be mutated", func() {
			cp := *s
			So(func() { cp.Push(2) }, ShouldPanicWith, ErrCopied)
			So(func() { cp.Pop() }, ShouldPanicWith, ErrCopied)
			So(func() { cp.Peek() }, ShouldPanicWith, ErrCopied)
			So(s.Len(), ShouldEqual, 1)
		})
	})

	Convey("Copying an unused zero value yields two independent stacks", t, func() {
		var a Stack[int]
		b := a
		a.Push(1)
		So(b.IsEmpty(), ShouldBeTrue)
		b.Push(2)
		So(a.Pop().MustGet(), ShouldEqual, 1)
		So(b.Pop().MustGet(), ShouldEqual, 2)
	})
}
