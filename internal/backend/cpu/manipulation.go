package cpu

import (
	"github.com/pkg/errors"

	"github.com/trellis-ml/trellis/internal/tensor"
)

// Reshape returns a zero-copy view of x under a new shape. The element
// count must match.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	view, err := x.WithShape(shape)
	if err != nil {
		panic(errors.Wrap(err, "reshape"))
	}
	return view
}

// Unsqueeze inserts a dimension of size 1 at dim. Negative dims index
// from the end; the valid range is [-(rank+1), rank].
func (cpu *CPUBackend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := shape.Rank()
	if dim < 0 {
		dim = ndim + 1 + dim
	}
	if dim < 0 || dim > ndim {
		panic(errors.Errorf("unsqueeze: dimension %d out of range for %dD tensor", dim, ndim))
	}

	newShape := make(tensor.Shape, 0, ndim+1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[dim:]...)
	return cpu.Reshape(x, newShape)
}

// Squeeze removes the dimension at dim, which must have size 1.
func (cpu *CPUBackend) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := shape.Rank()
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(errors.Errorf("squeeze: dimension %d out of range for %dD tensor", dim, ndim))
	}
	if shape[dim] != 1 {
		panic(errors.Errorf("squeeze: dimension %d has size %d, must be 1", dim, shape[dim]))
	}

	newShape := make(tensor.Shape, 0, ndim-1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, shape[dim+1:]...)
	return cpu.Reshape(x, newShape)
}

// Transpose permutes dimensions, materializing the result. With no axes
// all dimensions are reversed.
func (cpu *CPUBackend) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := shape.Rank()

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(errors.Errorf("transpose: axes length %d != rank %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(errors.Errorf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(errors.Errorf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(newShape, x.DType(), cpu.device)
	if err != nil {
		panic(errors.Wrap(err, "transpose"))
	}

	switch x.DType() {
	case tensor.Float32:
		permute(result.AsFloat32(), x.AsFloat32(), shape, newShape, axes)
	case tensor.Float64:
		permute(result.AsFloat64(), x.AsFloat64(), shape, newShape, axes)
	case tensor.Int32:
		permute(result.AsInt32(), x.AsInt32(), shape, newShape, axes)
	case tensor.Int64:
		permute(result.AsInt64(), x.AsInt64(), shape, newShape, axes)
	default:
		panic(errors.Errorf("transpose: unsupported dtype %s", x.DType()))
	}
	return result
}

// permute scatters src into dst under the axis permutation. For each
// source element the destination coordinate i holds the source
// coordinate along axes[i].
func permute[T number](dst, src []T, srcShape, dstShape tensor.Shape, axes []int) {
	srcStrides := srcShape.Strides()
	dstStrides := dstShape.Strides()

	for i := range src {
		dstIdx := 0
		for d, ax := range axes {
			coord := (i / srcStrides[ax]) % srcShape[ax]
			dstIdx += coord * dstStrides[d]
		}
		dst[dstIdx] = src[i]
	}
}

// Expand broadcasts x to shape, materializing the result. Dimensions of
// size 1 repeat; shape may have higher rank than x, aligned from the
// right.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	xShape := x.Shape()
	if shape.Rank() < xShape.Rank() {
		panic(errors.Errorf("expand: target shape %v has lower rank than input shape %v", shape, xShape))
	}
	offset := shape.Rank() - xShape.Rank()
	for i, dim := range xShape {
		if dim != 1 && dim != shape[offset+i] {
			panic(errors.Errorf("expand: cannot expand dimension %d from %d to %d", i, dim, shape[offset+i]))
		}
	}

	result, err := tensor.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		panic(errors.Wrap(err, "expand"))
	}

	inStrides := broadcastStrides(xShape, shape)
	outStrides := shape.Strides()

	switch x.DType() {
	case tensor.Float32:
		gatherBroadcast(result.AsFloat32(), x.AsFloat32(), outStrides, inStrides)
	case tensor.Float64:
		gatherBroadcast(result.AsFloat64(), x.AsFloat64(), outStrides, inStrides)
	case tensor.Int32:
		gatherBroadcast(result.AsInt32(), x.AsInt32(), outStrides, inStrides)
	case tensor.Int64:
		gatherBroadcast(result.AsInt64(), x.AsInt64(), outStrides, inStrides)
	default:
		panic(errors.Errorf("expand: unsupported dtype %s", x.DType()))
	}
	return result
}

func gatherBroadcast[T number](dst, src []T, outStrides, inStrides []int) {
	for i := range dst {
		dst[i] = src[mapIndex(i, outStrides, inStrides)]
	}
}
