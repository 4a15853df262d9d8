package cpu

import (
	"github.com/pkg/errors"

	"github.com/trellis-ml/trellis/internal/tensor"
)

// number is the constraint shared by all elementwise kernels.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64
}

type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
)

// binary allocates the broadcast output and dispatches on dtype.
func (cpu *CPUBackend) binary(name string, op binOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, expand, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(errors.Wrap(err, name))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(errors.Wrap(err, name))
	}

	switch a.DType() {
	case tensor.Float32:
		binaryKernel(op, result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, expand)
	case tensor.Float64:
		binaryKernel(op, result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, expand)
	case tensor.Int32:
		binaryKernel(op, result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, expand)
	case tensor.Int64:
		binaryKernel(op, result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, expand)
	default:
		panic(errors.Errorf("%s: unsupported dtype %s", name, a.DType()))
	}
	return result
}

// binaryKernel runs one elementwise op. The fast path assumes identical
// shapes; the broadcast path walks output indices and maps each back
// into the operands through stride arithmetic.
func binaryKernel[T number](op binOp, dst, a, b []T, aShape, bShape, outShape tensor.Shape, expand bool) {
	if !expand {
		switch op {
		case opAdd:
			for i := range dst {
				dst[i] = a[i] + b[i]
			}
		case opSub:
			for i := range dst {
				dst[i] = a[i] - b[i]
			}
		case opMul:
			for i := range dst {
				dst[i] = a[i] * b[i]
			}
		case opDiv:
			for i := range dst {
				dst[i] = a[i] / b[i]
			}
		}
		return
	}

	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)
	outStrides := outShape.Strides()

	for i := range dst {
		x := a[mapIndex(i, outStrides, aStrides)]
		y := b[mapIndex(i, outStrides, bStrides)]
		switch op {
		case opAdd:
			dst[i] = x + y
		case opSub:
			dst[i] = x - y
		case opMul:
			dst[i] = x * y
		case opDiv:
			dst[i] = x / y
		}
	}
}

// broadcastStrides computes operand strides aligned to outShape.
// Dimensions of size 1 and left-padded dimensions get stride 0, which
// pins the coordinate during the walk.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	strides := make([]int, len(outShape))
	offset := len(outShape) - len(inShape)
	origStrides := inShape.Strides()

	for i := range outShape {
		j := i - offset
		if j < 0 || inShape[j] == 1 {
			strides[i] = 0
			continue
		}
		strides[i] = origStrides[j]
	}
	return strides
}

// mapIndex converts a flat output index into a flat operand index using
// the broadcast-adjusted strides.
func mapIndex(outIdx int, outStrides, inStrides []int) int {
	flat := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flat += coord * inStrides[i]
	}
	return flat
}
