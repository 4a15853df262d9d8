package tensor

import "fmt"

// Shape is the ordered sequence of dimension sizes of a tensor.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements. A scalar (rank 0)
// has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes have identical rank and sizes.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides returns row-major strides: strides[i] is the flat-index step
// when dimension i advances by one.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Leading returns all dimensions before the last one. For a rank-1 shape
// it returns an empty (but non-nil) shape.
func (s Shape) Leading() Shape {
	if len(s) == 0 {
		return Shape{}
	}
	return s[:len(s)-1].Clone()
}

// Last returns the trailing dimension size, or 0 for a scalar shape.
func (s Shape) Last() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// BroadcastShapes applies NumPy-style broadcasting to two shapes:
// dimensions are compared right-to-left, a missing dimension counts as 1,
// and two sizes are compatible when equal or when one of them is 1.
//
// Returns the broadcast shape, whether any expansion is required, and an
// error when the shapes are incompatible.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	n := max(len(a), len(b))
	result := make(Shape, n)
	expand := false

	for i := 0; i < n; i++ {
		adim, bdim := 1, 1
		if j := len(a) - 1 - i; j >= 0 {
			adim = a[j]
		}
		if j := len(b) - 1 - i; j >= 0 {
			bdim = b[j]
		}
		switch {
		case adim == bdim:
			result[n-1-i] = adim
		case adim == 1:
			result[n-1-i] = bdim
			expand = true
		case bdim == 1:
			result[n-1-i] = adim
			expand = true
		default:
			return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, n-1-i, adim, bdim)
		}
	}
	return result, expand, nil
}
