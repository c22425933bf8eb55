package math

// Minimum is implemented by types that can pick the smaller of two values.
// Min must return one of its two operands without modifying either, and
// returns the receiver when the two are equal.
type Minimum[T any] interface {
	Min(other T) T
}

// MinOf returns the minimum element of values, or false if values is empty.
// Elements are passed to Min as they are, so for pointer types no element
// data is copied and the result aliases an element of values.
func MinOf[T Minimum[T]](values []T) (T, bool) {
	var smallest T
	if len(values) == 0 {
		return smallest, false
	}
	smallest = values[0]
	for _, v := range values[1:] {
		smallest = smallest.Min(v)
	}
	return smallest, true
}

// MinIndex returns the index of the element MinOf would return, or -1 if
// values is empty. Ties keep the earlier index.
func MinIndex[T interface {
	comparable
	Minimum[T]
}](values []T) int {
	if len(values) == 0 {
		return -1
	}
	idx := 0
	for i := 1; i < len(values); i++ {
		// Only move when Min picked the candidate. Values that never equal
		// themselves, such as NaN, stay put as the receiver does in MinOf.
		if values[idx].Min(values[i]) == values[i] && values[i] != values[idx] {
			idx = i
		}
	}
	return idx
}

// Scalar wraps a plain number so that it can be used with MinOf and MinIndex.
type Scalar[N Number] struct {
	Value N
}

// Min returns the smaller of the two scalars.
func (s Scalar[N]) Min(other Scalar[N]) Scalar[N] {
	if other.Value < s.Value {
		return other
	}
	return s
}

// Scalars wraps each number in values.
func Scalars[N Number](values []N) []Scalar[N] {
	s := make([]Scalar[N], 0, len(values))
	for _, v := range values {
		s = append(s, Scalar[N]{Value: v})
	}
	return s
}

// Values unwraps each scalar in s.
func Values[N Number](s []Scalar[N]) []N {
	values := make([]N, 0, len(s))
	for _, v := range s {
		values = append(values, v.Value)
	}
	return values
}
