package collections

// Stack is a LIFO used for explicit-stack tree walks.
type Stack[T any] struct {
	Items []T
}

func NewStack[T any](items ...T) *Stack[T] {
	return &Stack[T]{Items: append([]T(nil), items...)}
}

func (s Stack[T]) IsEmpty() bool {
	return len(s.Items) == 0
}

func (s *Stack[T]) Push(items ...T) {
	s.Items = append(s.Items, items...)
}

// Pop removes and returns the top item. ok is false on an empty stack.
func (s *Stack[T]) Pop() (item T, ok bool) {
	if s.IsEmpty() {
		return item, false
	}
	item = s.Items[len(s.Items)-1]
	var zero T
	s.Items[len(s.Items)-1] = zero
	s.Items = s.Items[:len(s.Items)-1]
	return item, true
}

