package nn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/trellis-ml/trellis/internal/tensor"
)

// Bilinear applies a bilinear transform to a pair of inputs:
//
//	y[..., j] = sum_i sum_k x1[..., i] * W[j, i, k] * x2[..., k] + b[j]
//
// Weight shape is [out_features, in1_features, in2_features]; bias, when
// enabled, is [out_features]. The two inputs must agree positionally on
// every leading dimension.
type Bilinear[B tensor.Backend] struct {
	in1Features int
	in2Features int
	outFeatures int
	useBias     bool
	weight      *Parameter[B] // [out_features, in1_features, in2_features]
	bias        *Parameter[B] // [out_features], nil when useBias is false
	backend     B
}

// NewBilinear creates a Bilinear transform. Weight and bias are filled
// with the fan-in uniform distribution, where the fan-in is the weight's
// second axis (in1_features).
//
// Panics with an error wrapping ErrInvalidConfig when a feature count is
// not positive.
func NewBilinear[B tensor.Backend](in1Features, in2Features, outFeatures int, useBias bool, backend B) *Bilinear[B] {
	if in1Features <= 0 || in2Features <= 0 || outFeatures <= 0 {
		panic(errors.Wrapf(ErrInvalidConfig, "bilinear: feature counts must be positive, got in1=%d in2=%d out=%d",
			in1Features, in2Features, outFeatures))
	}

	bl := &Bilinear[B]{
		in1Features: in1Features,
		in2Features: in2Features,
		outFeatures: outFeatures,
		useBias:     useBias,
		backend:     backend,
	}
	bl.weight = NewParameter("weight",
		tensor.Zeros[float32](tensor.Shape{outFeatures, in1Features, in2Features}, backend))
	if useBias {
		bl.bias = NewParameter("bias", tensor.Zeros[float32](tensor.Shape{outFeatures}, backend))
	}
	bl.ResetParameters()
	return bl
}

// ResetParameters re-draws weight and bias in place. The bound uses
// in1_features, the first contracted axis, not a combination of both
// input sizes.
func (bl *Bilinear[B]) ResetParameters() {
	UniformFanIn(bl.weight.Tensor(), bl.in1Features)
	if bl.useBias {
		UniformFanIn(bl.bias.Tensor(), bl.in1Features)
	}
}

// Forward computes the bilinear form for every combination of leading
// indices. input1 has shape (..., in1_features), input2 has shape
// (..., in2_features), and their leading dimensions must be identical;
// the output is (..., out_features).
//
// Panics with an error wrapping ErrShapeMismatch on any disagreement,
// before any arithmetic.
func (bl *Bilinear[B]) Forward(input1, input2 *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	s1, s2 := input1.Shape(), input2.Shape()
	if s1.Last() != bl.in1Features {
		panic(errors.Wrapf(ErrShapeMismatch, "bilinear: expected input1 with trailing dimension %d, got shape %v",
			bl.in1Features, s1))
	}
	if s2.Last() != bl.in2Features {
		panic(errors.Wrapf(ErrShapeMismatch, "bilinear: expected input2 with trailing dimension %d, got shape %v",
			bl.in2Features, s2))
	}
	if !s1.Leading().Equal(s2.Leading()) {
		panic(errors.Wrapf(ErrShapeMismatch, "bilinear: leading dimensions differ: %v vs %v", s1, s2))
	}

	batch := s1.NumElements() / bl.in1Features
	x1 := input1.Reshape(batch, bl.in1Features)
	x2 := input2.Reshape(batch, bl.in2Features)

	// First contraction: fold input2 into the weight's last axis.
	// W viewed as (out*in1, in2) gives x2 @ W^T -> (batch, out*in1),
	// i.e. tmp[b, j, i] = sum_k W[j, i, k] * x2[b, k].
	w := bl.weight.Tensor().Reshape(bl.outFeatures*bl.in1Features, bl.in2Features)
	tmp := x2.MatMul(w.T()).Reshape(batch, bl.outFeatures, bl.in1Features)

	// Second contraction: fold input1 into the remaining in1 axis via a
	// batched matrix-vector product.
	out := tmp.BatchMatMul(x1.Reshape(batch, bl.in1Features, 1)).Reshape(batch, bl.outFeatures)

	if bl.useBias {
		out = out.Add(bl.bias.Tensor().Reshape(1, bl.outFeatures))
	}

	outShape := append(s1.Leading(), bl.outFeatures)
	return out.Reshape(outShape...)
}

// Parameters returns weight and, when enabled, bias.
func (bl *Bilinear[B]) Parameters() []*Parameter[B] {
	if bl.useBias {
		return []*Parameter[B]{bl.weight, bl.bias}
	}
	return []*Parameter[B]{bl.weight}
}

// Weight returns the weight parameter.
func (bl *Bilinear[B]) Weight() *Parameter[B] {
	return bl.weight
}

// Bias returns the bias parameter, or nil when bias is disabled.
func (bl *Bilinear[B]) Bias() *Parameter[B] {
	return bl.bias
}

// In1Features returns the first input's feature count.
func (bl *Bilinear[B]) In1Features() int {
	return bl.in1Features
}

// In2Features returns the second input's feature count.
func (bl *Bilinear[B]) In2Features() int {
	return bl.in2Features
}

// OutFeatures returns the output feature count.
func (bl *Bilinear[B]) OutFeatures() int {
	return bl.outFeatures
}

// String describes the configuration.
func (bl *Bilinear[B]) String() string {
	return fmt.Sprintf("Bilinear(in1_features=%d, in2_features=%d, out_features=%d, bias=%t)",
		bl.in1Features, bl.in2Features, bl.outFeatures, bl.useBias)
}
