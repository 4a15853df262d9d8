// Copyright 2025 The Trellis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor API of the Trellis library.
//
// It re-exports the core types and constructors:
//   - Tensor[T, B]: typed tensor bound to a compute backend
//   - RawTensor: untyped storage for advanced use
//   - Backend: interface implemented by compute backends
//   - Shape, DataType, Device: core definitions
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)
package tensor

import (
	"golang.org/x/exp/constraints"

	"github.com/trellis-ml/trellis/internal/tensor"
)

// DType is the constraint for tensor element types.
type DType = tensor.DType

// DataType is the runtime type tag of a tensor's storage.
type DataType = tensor.DataType

// Storage type constants. Float16 is storage-only, reachable through
// RawTensor and Backend.Cast.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Float16 DataType = tensor.Float16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Device tags where a tensor's storage lives.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape is the ordered sequence of dimension sizes of a tensor.
type Shape = tensor.Shape

// RawTensor is the untyped tensor storage.
type RawTensor = tensor.RawTensor

// Tensor is a typed tensor bound to a compute backend.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Backend is defined in backend.go.

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Rand creates a float tensor with uniform draws from [0, 1).
func Rand[T constraints.Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Rand[T, B](shape, b)
}

// Uniform creates a float tensor with uniform draws from [-bound, bound].
func Uniform[T constraints.Float, B Backend](shape Shape, bound float64, b B) *Tensor[T, B] {
	return tensor.Uniform[T, B](shape, bound, b)
}

// Randn creates a float tensor with draws from N(0, 1).
func Randn[T constraints.Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, b)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	return tensor.Arange[T, B](start, end, b)
}

// Eye creates an n-by-n identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	return tensor.Eye[T, B](n, b)
}

// FromSlice creates a tensor by copying a Go slice.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New wraps a RawTensor in a typed tensor.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw allocates zeroed untyped storage.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// BroadcastShapes applies NumPy-style broadcasting to two shapes,
// returning the broadcast shape and whether expansion is required.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
