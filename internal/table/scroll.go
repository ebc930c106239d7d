package table

// ScrollRange is a scrollbar-like range control over [0, Maximum]. The
// value is always coerced into the range, and change listeners run
// synchronously whenever the value actually changes.
type ScrollRange struct {
	value    int
	maximum  int
	onChange []func(old, value int)
}

// Value returns the current value
func (s *ScrollRange) Value() int {
	return s.value
}

// Maximum returns the upper bound
func (s *ScrollRange) Maximum() int {
	return s.maximum
}

// OnChange registers fn to run after every value change
func (s *ScrollRange) OnChange(fn func(old, value int)) {
	s.onChange = append(s.onChange, fn)
}

// SetValue moves the value, coerced into [0, Maximum]
func (s *ScrollRange) SetValue(v int) {
	if v < 0 {
		v = 0
	}
	if v > s.maximum {
		v = s.maximum
	}
	if v == s.value {
		return
	}
	old := s.value
	s.value = v
	for _, fn := range s.onChange {
		fn(old, v)
	}
}

// SetMaximum changes the upper bound; negative values become 0. The value
// is coerced into the new range.
func (s *ScrollRange) SetMaximum(m int) {
	if m < 0 {
		m = 0
	}
	s.maximum = m
	if s.value > m {
		s.SetValue(m)
	}
}
