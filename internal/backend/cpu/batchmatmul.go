package cpu

import (
	"github.com/pkg/errors"

	"github.com/trellis-ml/trellis/internal/parallel"
	"github.com/trellis-ml/trellis/internal/tensor"
)

// BatchMatMul multiplies stacks of matrices: (..., M, K) @ (..., K, N)
// -> (..., M, N). The leading dimensions of the two inputs must match
// positionally. Batches run in parallel; each goroutine writes only its
// own output slab.
func (cpu *CPUBackend) BatchMatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	ndim := aShape.Rank()

	if ndim < 3 {
		panic(errors.Errorf("batchmatmul: inputs must be at least 3D, got %dD", ndim))
	}
	if bShape.Rank() != ndim {
		panic(errors.Errorf("batchmatmul: rank mismatch, got %dD and %dD", ndim, bShape.Rank()))
	}
	for i := 0; i < ndim-2; i++ {
		if aShape[i] != bShape[i] {
			panic(errors.Errorf("batchmatmul: batch dimension mismatch at dim %d: %d vs %d", i, aShape[i], bShape[i]))
		}
	}

	m, k := aShape[ndim-2], aShape[ndim-1]
	kAlt, n := bShape[ndim-2], bShape[ndim-1]
	if k != kAlt {
		panic(errors.Errorf("batchmatmul: inner dimension mismatch: %d vs %d", k, kAlt))
	}

	batch := 1
	for i := 0; i < ndim-2; i++ {
		batch *= aShape[i]
	}

	outShape := aShape.Clone()
	outShape[ndim-2] = m
	outShape[ndim-1] = n

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(errors.Wrap(err, "batchmatmul"))
	}

	switch a.DType() {
	case tensor.Float32:
		gemm := sgemm
		if cpu.matmul == matmulNaive {
			gemm = gemmNaive[float32]
		}
		batchGemm(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), batch, m, k, n, gemm, cpu.parallel)
	case tensor.Float64:
		gemm := dgemm
		if cpu.matmul == matmulNaive {
			gemm = gemmNaive[float64]
		}
		batchGemm(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), batch, m, k, n, gemm, cpu.parallel)
	default:
		panic(errors.Errorf("batchmatmul: unsupported dtype %s", a.DType()))
	}
	return result
}

// batchGemm runs one gemm per batch slab.
func batchGemm[T number](c, a, b []T, batch, m, k, n int, gemm func(c, a, b []T, m, k, n int), cfg parallel.Config) {
	sizeA, sizeB, sizeC := m*k, k*n, m*n
	cfg.MinChunkSize = 1 // One batch slab is already a coarse unit of work.

	parallel.For(batch, cfg, func(i int) {
		gemm(c[i*sizeC:(i+1)*sizeC], a[i*sizeA:(i+1)*sizeA], b[i*sizeB:(i+1)*sizeB], m, k, n)
	})
}
