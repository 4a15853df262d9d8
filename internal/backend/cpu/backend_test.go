package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellis-ml/trellis/internal/tensor"
)

func fromSlice[T tensor.DType](t *testing.T, backend *CPUBackend, data []T, shape tensor.Shape) *tensor.Tensor[T, *CPUBackend] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, backend)
	require.NoError(t, err)
	return x
}

func TestNew_Defaults(t *testing.T) {
	backend := New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
	assert.Equal(t, matmulBLAS, backend.matmul)
}

func TestNew_EnvConfig(t *testing.T) {
	t.Setenv(EnvMatMul, "naive")
	t.Setenv(EnvWorkers, "2")

	backend := New()
	assert.Equal(t, matmulNaive, backend.matmul)
	assert.Equal(t, 2, backend.parallel.NumWorkers)
}

func TestNew_InvalidWorkersIgnored(t *testing.T) {
	t.Setenv(EnvWorkers, "lots")

	backend := New()
	assert.Positive(t, backend.parallel.NumWorkers)
}

func TestAdd_SameShape(t *testing.T) {
	backend := New()

	a := fromSlice(t, backend, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromSlice(t, backend, []float32{10, 20, 30, 40}, tensor.Shape{2, 2})

	c := a.Add(b)
	assert.Equal(t, []float32{11, 22, 33, 44}, c.Data())
	assert.Equal(t, []float32{1, 2, 3, 4}, a.Data(), "operands are not mutated")
}

func TestAdd_Broadcast(t *testing.T) {
	backend := New()

	// (2, 3) + (1, 3): the row vector repeats along the first axis.
	a := fromSlice(t, backend, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := fromSlice(t, backend, []float32{10, 20, 30}, tensor.Shape{1, 3})

	c := a.Add(b)
	assert.Equal(t, tensor.Shape{2, 3}, c.Shape())
	assert.Equal(t, []float32{11, 22, 33, 14, 25, 36}, c.Data())
}

func TestAdd_BroadcastTrailingSingletons(t *testing.T) {
	backend := New()

	// (2, 2, 2) * (2, 2, 1): FiLM-style coefficient broadcast.
	x := fromSlice(t, backend, []float32{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 2, 2})
	s := fromSlice(t, backend, []float32{2, 3, 4, 5}, tensor.Shape{2, 2, 1})

	y := x.Mul(s)
	assert.Equal(t, []float32{2, 4, 9, 12, 20, 24, 35, 40}, y.Data())
}

func TestAdd_IncompatibleShapes(t *testing.T) {
	backend := New()

	a := fromSlice(t, backend, []float32{1, 2, 3}, tensor.Shape{3})
	b := fromSlice(t, backend, []float32{1, 2, 3, 4}, tensor.Shape{4})

	assert.Panics(t, func() { a.Add(b) })
}

func TestSubMulDiv(t *testing.T) {
	backend := New()

	a := fromSlice(t, backend, []float32{10, 20, 30, 40}, tensor.Shape{4})
	b := fromSlice(t, backend, []float32{2, 4, 5, 8}, tensor.Shape{4})

	assert.Equal(t, []float32{8, 16, 25, 32}, a.Sub(b).Data())
	assert.Equal(t, []float32{20, 80, 150, 320}, a.Mul(b).Data())
	assert.Equal(t, []float32{5, 5, 6, 5}, a.Div(b).Data())
}

func TestBinary_Int64(t *testing.T) {
	backend := New()

	a := fromSlice(t, backend, []int64{1, 2, 3}, tensor.Shape{3})
	b := fromSlice(t, backend, []int64{10, 20, 30}, tensor.Shape{3})

	assert.Equal(t, []int64{11, 22, 33}, a.Add(b).Data())
}

func TestScalarOps(t *testing.T) {
	backend := New()

	x := fromSlice(t, backend, []float32{1, 2, 3}, tensor.Shape{3})

	assert.Equal(t, []float32{3, 4, 5}, x.AddScalar(2).Data())
	assert.Equal(t, []float32{-1, 0, 1}, x.SubScalar(2).Data())
	assert.Equal(t, []float32{2, 4, 6}, x.MulScalar(2).Data())
	assert.Equal(t, []float32{0.5, 1, 1.5}, x.DivScalar(2).Data())
}

func TestScalarOp_TypeMismatch(t *testing.T) {
	backend := New()

	x := fromSlice(t, backend, []float32{1, 2, 3}, tensor.Shape{3})
	assert.Panics(t, func() { backend.AddScalar(x.Raw(), 2.0) }, "float64 scalar against float32 tensor")
}

func TestSum(t *testing.T) {
	backend := New()

	x := fromSlice(t, backend, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	s := x.Sum()
	assert.Equal(t, tensor.Shape{}, s.Shape())
	assert.Equal(t, float32(10), s.Item())
}
