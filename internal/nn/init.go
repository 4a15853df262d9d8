package nn

import (
	"math"

	"github.com/trellis-ml/trellis/internal/tensor"
)

// UniformFanIn fills t in place with independent draws from the closed
// interval [-1/sqrt(fanIn), 1/sqrt(fanIn)]. Bounding by the inverse
// square root of fan-in keeps the pre-activation variance roughly
// independent of layer width. Each call is a fresh draw.
//
// The fan-in is passed explicitly so the caller controls which weight
// axis scales the bound.
func UniformFanIn[B tensor.Backend](t *tensor.Tensor[float32, B], fanIn int) {
	bound := 1.0 / math.Sqrt(float64(fanIn))
	tensor.FillUniform(t.Data(), bound)
}

// Xavier creates a weight tensor initialized with the Glorot uniform
// distribution U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return tensor.Uniform[float32](shape, bound, backend)
}

// Zeros creates a zero tensor, typically for bias initialization.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return tensor.Zeros[float32](shape, backend)
}

// Ones creates a tensor filled with ones.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return tensor.Ones[float32](shape, backend)
}

// Randn creates a tensor with draws from the standard normal N(0, 1).
func Randn[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return tensor.Randn[float32](shape, backend)
}
