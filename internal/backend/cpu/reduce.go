package cpu

import (
	"github.com/pkg/errors"

	"github.com/trellis-ml/trellis/internal/tensor"
)

// Sum reduces all elements to a rank-0 tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(errors.Wrap(err, "sum"))
	}

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = sumKernel(x.AsFloat32())
	case tensor.Float64:
		result.AsFloat64()[0] = sumKernel(x.AsFloat64())
	case tensor.Int32:
		result.AsInt32()[0] = sumKernel(x.AsInt32())
	case tensor.Int64:
		result.AsInt64()[0] = sumKernel(x.AsInt64())
	default:
		panic(errors.Errorf("sum: unsupported dtype %s", x.DType()))
	}
	return result
}

func sumKernel[T number](data []T) T {
	var sum T
	for _, v := range data {
		sum += v
	}
	return sum
}
