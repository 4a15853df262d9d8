package cpu

import (
	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/trellis-ml/trellis/internal/tensor"
)

// Cast converts x to a different storage type. Casting to the same type
// returns x unchanged. Float16 is reachable only from and to the float
// types; integer conversions truncate toward zero.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(errors.Wrap(err, "cast"))
	}

	switch x.DType() {
	case tensor.Float32:
		castFrom(result, x.AsFloat32())
	case tensor.Float64:
		castFrom(result, x.AsFloat64())
	case tensor.Int32:
		castFrom(result, x.AsInt32())
	case tensor.Int64:
		castFrom(result, x.AsInt64())
	case tensor.Float16:
		castFromHalf(result, x.AsFloat16())
	default:
		panic(errors.Errorf("cast: unsupported source dtype %s", x.DType()))
	}
	return result
}

func castFrom[T number](result *tensor.RawTensor, src []T) {
	switch result.DType() {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = float64(v)
		}
	case tensor.Int32:
		dst := result.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case tensor.Int64:
		dst := result.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	case tensor.Float16:
		dst := result.AsFloat16()
		for i, v := range src {
			dst[i] = float16.Fromfloat32(float32(v))
		}
	default:
		panic(errors.Errorf("cast: unsupported target dtype %s", result.DType()))
	}
}

func castFromHalf(result *tensor.RawTensor, src []float16.Float16) {
	switch result.DType() {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = v.Float32()
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = float64(v.Float32())
		}
	default:
		panic(errors.Errorf("cast: unsupported target dtype %s from float16", result.DType()))
	}
}
