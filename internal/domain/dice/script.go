package dice

// Script is a Rand that replays fixed values. Once a list is exhausted its
// last value repeats; an empty list yields zero.
type Script struct {
	Floats []float64
	Ints   []int

	fi int
	ii int
}

func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[min(s.fi, len(s.Floats)-1)]
	s.fi++
	return v
}

func (s *Script) Intn(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[min(s.ii, len(s.Ints)-1)]
	s.ii++
	if v >= n {
		return n - 1
	}
	if v < 0 {
		return 0
	}
	return v
}
