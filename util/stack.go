package util

type Stack[A any] struct {
	items []A
}

func (s *Stack[A]) Push(v A) {
	s.items = append(s.items, v)
}

func (s *Stack[A]) Pop() (ret A, ok bool) {
	if len(s.items) <= 0 {
		return ret, false
	}
	lastIndex := len(s.items) - 1
	ret = s.items[lastIndex]
	// the backing array must not keep popped items alive
	var zero A
	s.items[lastIndex] = zero
	s.items = s.items[:lastIndex]
	return ret, true
}

// Peek returns the top of the stack without removing it
func (s *Stack[A]) Peek() (ret A, ok bool) {
	if len(s.items) <= 0 {
		return ret, false
	}
	return s.items[len(s.items)-1], true
}

// Bottom returns the first item ever pushed that is still on the stack
func (s *Stack[A]) Bottom() (ret A, ok bool) {
	if len(s.items) <= 0 {
		return ret, false
	}
	return s.items[0], true
}

func (s *Stack[A]) Len() int {
	return len(s.items)
}
