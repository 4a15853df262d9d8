// Copyright 2025 The Trellis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes the Trellis transform modules: Linear, Bilinear and
// FiLM, plus the parameter initializers they build on.
package nn

import (
	"github.com/trellis-ml/trellis/internal/nn"
	"github.com/trellis-ml/trellis/internal/tensor"
)

// Error kinds raised as panics by constructors and Forward methods.
// Match with errors.Is.
var (
	// ErrShapeMismatch marks an input whose shape disagrees with the
	// module's declared feature sizes.
	ErrShapeMismatch = nn.ErrShapeMismatch
	// ErrInvalidConfig marks a constructor call with non-positive
	// feature counts.
	ErrInvalidConfig = nn.ErrInvalidConfig
)

// Module is the capability interface for single-input transforms.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter is a named tensor owned by a module.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter wraps an initialized tensor as a parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Linear applies y = x @ W^T + b over the trailing dimension.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a Linear transform with fan-in uniform
// initialization.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(784, 128, true, backend)
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, useBias bool, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, useBias, backend)
}

// Bilinear applies y[..., j] = x1 W_j x2^T + b_j over a pair of inputs.
type Bilinear[B tensor.Backend] = nn.Bilinear[B]

// NewBilinear creates a Bilinear transform with fan-in uniform
// initialization (fan-in is in1Features, the first contracted axis).
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewBilinear(20, 30, 40, true, backend)
func NewBilinear[B tensor.Backend](in1Features, in2Features, outFeatures int, useBias bool, backend B) *Bilinear[B] {
	return nn.NewBilinear(in1Features, in2Features, outFeatures, useBias, backend)
}

// FiLM rescales and shifts the channel dimension of its input with
// externally supplied per-sample coefficients.
type FiLM[B tensor.Backend] = nn.FiLM[B]

// NewFiLM creates a FiLM module.
//
// Example:
//
//	film := nn.NewFiLM[*cpu.Backend]()
//	out := film.Forward(input, scale, shift)
func NewFiLM[B tensor.Backend]() *FiLM[B] {
	return nn.NewFiLM[B]()
}

// Initialization helpers

// UniformFanIn fills t in place with uniform draws from
// [-1/sqrt(fanIn), 1/sqrt(fanIn)].
func UniformFanIn[B tensor.Backend](t *tensor.Tensor[float32, B], fanIn int) {
	nn.UniformFanIn(t, fanIn)
}

// Xavier creates a tensor with Glorot uniform initialization.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Xavier(fanIn, fanOut, shape, backend)
}

// Zeros creates a zero tensor, typically for bias initialization.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Zeros(shape, backend)
}

// Ones creates a tensor filled with ones.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Ones(shape, backend)
}

// Randn creates a tensor with draws from N(0, 1).
func Randn[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Randn(shape, backend)
}
