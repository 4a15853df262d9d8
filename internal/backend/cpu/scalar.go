package cpu

import (
	"github.com/pkg/errors"

	"github.com/trellis-ml/trellis/internal/tensor"
)

// AddScalar adds a scalar to every element. The scalar's Go type must
// match the tensor's dtype.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addscalar", opAdd, x, scalar)
}

// SubScalar subtracts a scalar from every element.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("subscalar", opSub, x, scalar)
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulscalar", opMul, x, scalar)
}

// DivScalar divides every element by a scalar.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("divscalar", opDiv, x, scalar)
}

func (cpu *CPUBackend) scalarOp(name string, op binOp, x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(errors.Wrap(err, name))
	}

	switch x.DType() {
	case tensor.Float32:
		s, ok := scalar.(float32)
		if !ok {
			panic(errors.Errorf("%s: scalar %T does not match dtype %s", name, scalar, x.DType()))
		}
		scalarKernel(op, result.AsFloat32(), x.AsFloat32(), s)
	case tensor.Float64:
		s, ok := scalar.(float64)
		if !ok {
			panic(errors.Errorf("%s: scalar %T does not match dtype %s", name, scalar, x.DType()))
		}
		scalarKernel(op, result.AsFloat64(), x.AsFloat64(), s)
	case tensor.Int32:
		s, ok := scalar.(int32)
		if !ok {
			panic(errors.Errorf("%s: scalar %T does not match dtype %s", name, scalar, x.DType()))
		}
		scalarKernel(op, result.AsInt32(), x.AsInt32(), s)
	case tensor.Int64:
		s, ok := scalar.(int64)
		if !ok {
			panic(errors.Errorf("%s: scalar %T does not match dtype %s", name, scalar, x.DType()))
		}
		scalarKernel(op, result.AsInt64(), x.AsInt64(), s)
	default:
		panic(errors.Errorf("%s: unsupported dtype %s", name, x.DType()))
	}
	return result
}

func scalarKernel[T number](op binOp, dst, src []T, s T) {
	switch op {
	case opAdd:
		for i := range dst {
			dst[i] = src[i] + s
		}
	case opSub:
		for i := range dst {
			dst[i] = src[i] - s
		}
	case opMul:
		for i := range dst {
			dst[i] = src[i] * s
		}
	case opDiv:
		for i := range dst {
			dst[i] = src[i] / s
		}
	}
}
