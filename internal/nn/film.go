package nn

import (
	"github.com/pkg/errors"

	"github.com/trellis-ml/trellis/internal/tensor"
)

// FiLM applies feature-wise linear modulation: every channel of the
// input is rescaled and shifted by externally supplied per-sample
// coefficients,
//
//	y[n, c, ...] = scale[n, c] * x[n, c, ...] + shift[n, c]
//
// FiLM owns no parameters and keeps no state; a single value may be
// shared across goroutines.
type FiLM[B tensor.Backend] struct{}

// NewFiLM creates a FiLM module.
func NewFiLM[B tensor.Backend]() *FiLM[B] {
	return &FiLM[B]{}
}

// Forward modulates input of shape (N, C, *) — zero or more trailing
// spatial dimensions — with scale and shift of shape (N, C). The
// coefficients gain trailing singleton axes until their rank matches the
// input's, then broadcast elementwise.
//
// Panics with an error wrapping ErrShapeMismatch when scale or shift is
// not rank 2 or their (N, C) disagrees with the input's first two
// dimensions.
func (f *FiLM[B]) Forward(input, scale, shift *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shape := input.Shape()
	if shape.Rank() < 2 {
		panic(errors.Wrapf(ErrShapeMismatch, "film: expected input of shape (N, C, ...), got %v", shape))
	}
	if err := checkCoeff("scale", scale.Shape(), shape); err != nil {
		panic(err)
	}
	if err := checkCoeff("shift", shift.Shape(), shape); err != nil {
		panic(err)
	}

	// One declarative broadcast: (N, C) viewed as (N, C, 1, ..., 1).
	coeffShape := make(tensor.Shape, shape.Rank())
	coeffShape[0], coeffShape[1] = shape[0], shape[1]
	for i := 2; i < len(coeffShape); i++ {
		coeffShape[i] = 1
	}

	s := scale.Reshape(coeffShape...)
	b := shift.Reshape(coeffShape...)
	return input.Mul(s).Add(b)
}

func checkCoeff(name string, coeff, input tensor.Shape) error {
	if coeff.Rank() != 2 {
		return errors.Wrapf(ErrShapeMismatch, "film: expected rank-2 %s (N, C), got shape %v", name, coeff)
	}
	if coeff[0] != input[0] || coeff[1] != input[1] {
		return errors.Wrapf(ErrShapeMismatch, "film: %s shape %v does not match input's leading dimensions %v",
			name, coeff, input[:2])
	}
	return nil
}

// Parameters returns nil: FiLM owns no parameters.
func (f *FiLM[B]) Parameters() []*Parameter[B] {
	return nil
}

// String describes the module.
func (f *FiLM[B]) String() string {
	return "FiLM()"
}
