// Copyright 2025 The Trellis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu exposes the CPU compute backend.
package cpu

import (
	internalcpu "github.com/trellis-ml/trellis/internal/backend/cpu"
	"github.com/trellis-ml/trellis/tensor"
)

// Backend is the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// Environment variables honored by New.
const (
	// EnvMatMul selects the gemm implementation: "blas" (default) or
	// "naive".
	EnvMatMul = internalcpu.EnvMatMul
	// EnvWorkers caps the worker count of the batched kernels.
	EnvWorkers = internalcpu.EnvWorkers
)

// New creates a CPU backend configured from the environment.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}
