package nn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/trellis-ml/trellis/internal/tensor"
)

// Linear applies an affine transform to the trailing dimension:
//
//	y[..., j] = sum_i x[..., i] * W[j, i] + b[j]
//
// Weight shape is [out_features, in_features]; bias, when enabled, is
// [out_features]. Any number of leading dimensions is accepted,
// including none (a rank-1 input).
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(784, 128, true, backend)
//	out := layer.Forward(tensor.Randn[float32](tensor.Shape{32, 784}, backend)) // [32, 128]
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	useBias     bool
	weight      *Parameter[B] // [out_features, in_features]
	bias        *Parameter[B] // [out_features], nil when useBias is false
	backend     B
}

// NewLinear creates a Linear transform. Weight and bias are filled with
// the fan-in uniform distribution U(-1/sqrt(in), 1/sqrt(in)).
//
// Panics with an error wrapping ErrInvalidConfig when a feature count is
// not positive. No tensor is allocated before validation passes.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, useBias bool, backend B) *Linear[B] {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(errors.Wrapf(ErrInvalidConfig, "linear: feature counts must be positive, got in=%d out=%d",
			inFeatures, outFeatures))
	}

	l := &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		useBias:     useBias,
		backend:     backend,
	}
	l.weight = NewParameter("weight", tensor.Zeros[float32](tensor.Shape{outFeatures, inFeatures}, backend))
	if useBias {
		l.bias = NewParameter("bias", tensor.Zeros[float32](tensor.Shape{outFeatures}, backend))
	}
	l.ResetParameters()
	return l
}

// ResetParameters re-draws weight and bias in place from the fan-in
// uniform distribution. The fan-in is the weight's second axis, i.e.
// in_features.
func (l *Linear[B]) ResetParameters() {
	UniformFanIn(l.weight.Tensor(), l.inFeatures)
	if l.useBias {
		UniformFanIn(l.bias.Tensor(), l.inFeatures)
	}
}

// Forward computes y = x @ W^T (+ b) over the trailing dimension.
//
// The input shape is (..., in_features); the output replaces the
// trailing dimension: (..., out_features). Panics with an error wrapping
// ErrShapeMismatch when the trailing dimension disagrees, before any
// arithmetic.
func (l *Linear[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shape := input.Shape()
	if shape.Last() != l.inFeatures {
		panic(errors.Wrapf(ErrShapeMismatch, "linear: expected input with trailing dimension %d, got shape %v",
			l.inFeatures, shape))
	}

	// Collapse leading dimensions to one batch axis, run a single 2D
	// matmul, then restore them.
	batch := shape.NumElements() / l.inFeatures
	x := input.Reshape(batch, l.inFeatures)

	w := l.weight.Tensor() // [out, in]
	out := x.MatMul(w.T()) // [batch, out]

	if l.useBias {
		out = out.Add(l.bias.Tensor().Reshape(1, l.outFeatures))
	}

	outShape := append(shape.Leading(), l.outFeatures)
	return out.Reshape(outShape...)
}

// Parameters returns weight and, when enabled, bias.
func (l *Linear[B]) Parameters() []*Parameter[B] {
	if l.useBias {
		return []*Parameter[B]{l.weight, l.bias}
	}
	return []*Parameter[B]{l.weight}
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter, or nil when bias is disabled.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the input feature count.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output feature count.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}

// String describes the configuration.
func (l *Linear[B]) String() string {
	return fmt.Sprintf("Linear(in_features=%d, out_features=%d, bias=%t)",
		l.inFeatures, l.outFeatures, l.useBias)
}
