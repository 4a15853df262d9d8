package tensor

import (
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), b.Device())
	if err != nil {
		panic(err)
	}
	// Storage is zeroed by allocation.
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, 1, b)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	fill(t.Data(), value)
	return t
}

// Rand creates a float tensor with values drawn uniformly from [0, 1).
// Uses math/rand: initialization randomness is statistical, not
// cryptographic.
func Rand[T constraints.Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	fillFunc(t.Data(), func() T { return T(rand.Float64()) }) //nolint:gosec // G404: statistical use
	return t
}

// Uniform creates a float tensor with values drawn uniformly from the
// closed interval [-bound, bound].
func Uniform[T constraints.Float, B Backend](shape Shape, bound float64, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	FillUniform(t.Data(), bound)
	return t
}

// Randn creates a float tensor with values drawn from N(0, 1) via the
// Box-Muller transform.
func Randn[T constraints.Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := 0; i < len(data); i += 2 {
		u1 := rand.Float64() //nolint:gosec // G404: statistical use
		u2 := rand.Float64() //nolint:gosec // G404: statistical use
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = T(r * math.Cos(2.0*math.Pi*u2))
		if i+1 < len(data) {
			data[i+1] = T(r * math.Sin(2.0*math.Pi*u2))
		}
	}
	return t
}

// Arange creates a 1D tensor with values start, start+1, ..., end-1.
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	n := int(float64(end) - float64(start))
	if n <= 0 {
		panic("arange: end must be greater than start")
	}
	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	for i := range data {
		data[i] = start + T(i)
	}
	return t
}

// Eye creates an n-by-n identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	for i := 0; i < n; i++ {
		t.Set(1, i, i)
	}
	return t
}

// FillUniform overwrites data with independent draws from the closed
// interval [-bound, bound].
func FillUniform[T constraints.Float](data []T, bound float64) {
	fillFunc(data, func() T {
		return T((rand.Float64()*2.0 - 1.0) * bound) //nolint:gosec // G404: statistical use
	})
}

func fill[T DType](data []T, value T) {
	for i := range data {
		data[i] = value
	}
}

func fillFunc[T DType](data []T, next func() T) {
	for i := range data {
		data[i] = next()
	}
}
