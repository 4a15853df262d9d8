package cpu

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/trellis-ml/trellis/internal/tensor"
)

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
// Float inputs go through gonum's gemm unless TRELLIS_MATMUL=naive;
// integer inputs always use the naive kernel.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if aShape.Rank() != 2 || bShape.Rank() != 2 {
		panic(errors.Errorf("matmul: only 2D tensors supported, got %dD and %dD", aShape.Rank(), bShape.Rank()))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		panic(errors.Errorf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		panic(errors.Wrap(err, "matmul"))
	}

	switch a.DType() {
	case tensor.Float32:
		if cpu.matmul == matmulBLAS {
			sgemm(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
		} else {
			gemmNaive(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
		}
	case tensor.Float64:
		if cpu.matmul == matmulBLAS {
			dgemm(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n)
		} else {
			gemmNaive(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n)
		}
	case tensor.Int32:
		gemmNaive(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, k, n)
	case tensor.Int64:
		gemmNaive(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, k, n)
	default:
		panic(errors.Errorf("matmul: unsupported dtype %s", a.DType()))
	}
	return result
}

// sgemm computes c = a @ b in single precision via gonum.
func sgemm(c, a, b []float32, m, k, n int) {
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas32.General{Rows: m, Cols: k, Stride: k, Data: a},
		blas32.General{Rows: k, Cols: n, Stride: n, Data: b},
		0,
		blas32.General{Rows: m, Cols: n, Stride: n, Data: c})
}

// dgemm computes c = a @ b in double precision via gonum.
func dgemm(c, a, b []float64, m, k, n int) {
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas64.General{Rows: m, Cols: k, Stride: k, Data: a},
		blas64.General{Rows: k, Cols: n, Stride: n, Data: b},
		0,
		blas64.General{Rows: m, Cols: n, Stride: n, Data: c})
}

// gemmNaive is the reference O(m*n*k) kernel: c[i,j] = sum_k a[i,k]*b[k,j].
func gemmNaive[T number](c, a, b []T, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for x := 0; x < k; x++ {
				sum += a[i*k+x] * b[x*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
