// Package bigint implements a minimal arbitrary-precision non-negative integer.
//
// A BigInt stores its value as a sequence of base 2^64 digits, least significant
// digit first. The sequence never ends in a zero digit, so zero is the empty
// sequence and every value has exactly one representation. Comparison relies on
// this: a number with more digits is always the larger one.
//
// A BigInt owns its digits and never shares them. Values are passed around as
// *BigInt; a second BigInt with the same digits is only made by Clone.
package bigint

import (
	"fmt"

	"github.com/rbrabson/bigmin/pkg/math"
)

// BigInt is a non-negative integer of arbitrary size. The zero value is zero.
type BigInt struct {
	digits []uint64 // least significant digit first, no trailing zeros
}

// New returns the BigInt with the value x.
func New(x uint64) *BigInt {
	if x == 0 {
		return &BigInt{}
	}
	return &BigInt{digits: []uint64{x}}
}

// FromDigits returns the BigInt whose little-endian digits are v, with any
// trailing zeros removed. FromDigits takes ownership of v; the caller must not
// use v afterwards.
func FromDigits(v []uint64) *BigInt {
	for len(v) > 0 && v[len(v)-1] == 0 {
		v = v[:len(v)-1]
	}
	return &BigInt{digits: v}
}

// Digits returns a copy of the digits of b, least significant first.
func (b *BigInt) Digits() []uint64 {
	d := make([]uint64, len(b.digits))
	copy(d, b.digits)
	return d
}

// TestInvariant reports whether b is in normalized form.
func (b *BigInt) TestInvariant() bool {
	if len(b.digits) == 0 {
		return true
	}
	return b.digits[len(b.digits)-1] != 0
}

// IsZero reports whether b is zero.
func (b *BigInt) IsZero() bool {
	return len(b.digits) == 0
}

// NumDigits returns the number of digits in b.
func (b *BigInt) NumDigits() int {
	return len(b.digits)
}

// NumNonzeroDigits returns the number of digits in b that are not zero.
func (b *BigInt) NumNonzeroDigits() int {
	count := 0
	for _, d := range b.digits {
		if d != 0 {
			count++
		}
	}
	return count
}

// SmallestDigit returns the smallest digit of b, or false if b has no digits.
func (b *BigInt) SmallestDigit() (uint64, bool) {
	if len(b.digits) == 0 {
		return 0, false
	}
	smallest := b.digits[0]
	for _, d := range b.digits[1:] {
		smallest = math.Min(smallest, d)
	}
	return smallest, true
}

// LargestDigit returns the largest digit of b, or false if b has no digits.
func (b *BigInt) LargestDigit() (uint64, bool) {
	if len(b.digits) == 0 {
		return 0, false
	}
	largest := b.digits[0]
	for _, d := range b.digits[1:] {
		largest = math.Max(largest, d)
	}
	return largest, true
}

// Cmp compares b and other and returns:
//
//	-1 if b <  other
//	 0 if b == other
//	+1 if b >  other
//
// Both values must be normalized.
func (b *BigInt) Cmp(other *BigInt) int {
	assertNormalized(b, other)

	switch {
	case len(b.digits) < len(other.digits):
		return -1
	case len(b.digits) > len(other.digits):
		return 1
	}
	for i := len(b.digits) - 1; i >= 0; i-- {
		switch {
		case b.digits[i] < other.digits[i]:
			return -1
		case b.digits[i] > other.digits[i]:
			return 1
		}
	}
	return 0
}

// Equal reports whether b and other have the same digits.
func (b *BigInt) Equal(other *BigInt) bool {
	assertNormalized(b, other)

	if len(b.digits) != len(other.digits) {
		return false
	}
	for i := range b.digits {
		if b.digits[i] != other.digits[i] {
			return false
		}
	}
	return true
}

// Min returns the smaller of b and other. When they are equal, b is returned.
// Neither value is copied or modified.
func (b *BigInt) Min(other *BigInt) *BigInt {
	if b.Cmp(other) <= 0 {
		return b
	}
	return other
}

// Clone returns a deep copy of b.
func (b *BigInt) Clone() *BigInt {
	return &BigInt{digits: b.Digits()}
}

// String returns the digits of b, least significant first, for debugging.
func (b *BigInt) String() string {
	return fmt.Sprint(b.digits)
}
