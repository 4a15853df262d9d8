package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/trellis-ml/trellis/internal/backend/cpu"
	"github.com/trellis-ml/trellis/internal/nn"
	"github.com/trellis-ml/trellis/internal/tensor"
)

func TestUniformFanIn_Bound(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float32](tensor.Shape{64, 64}, backend)
	nn.UniformFanIn(x, 16)

	bound := float32(0.25) // 1/sqrt(16)
	for _, v := range x.Data() {
		require.GreaterOrEqual(t, v, -bound)
		require.LessOrEqual(t, v, bound)
	}
}

func TestUniformFanIn_Statistics(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float32](tensor.Shape{100, 100}, backend)
	nn.UniformFanIn(x, 4) // U(-0.5, 0.5)

	samples := make([]float64, 0, x.NumElements())
	for _, v := range x.Data() {
		samples = append(samples, float64(v))
	}

	mean, std := stat.MeanStdDev(samples, nil)
	assert.InDelta(t, 0, mean, 0.02, "uniform around zero")
	// U(-b, b) has stddev b/sqrt(3).
	assert.InDelta(t, 0.5/math.Sqrt(3), std, 0.02)
}

func TestUniformFanIn_FreshDrawPerCall(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float32](tensor.Shape{32}, backend)
	nn.UniformFanIn(x, 8)
	first := append([]float32(nil), x.Data()...)

	nn.UniformFanIn(x, 8)
	assert.NotEqual(t, first, x.Data())
}

func TestXavier(t *testing.T) {
	backend := cpu.New()

	x := nn.Xavier(30, 30, tensor.Shape{30, 30}, backend)
	bound := float32(math.Sqrt(6.0 / 60.0))
	for _, v := range x.Data() {
		require.GreaterOrEqual(t, v, -bound)
		require.LessOrEqual(t, v, bound)
	}
}

func TestZerosOnes(t *testing.T) {
	backend := cpu.New()

	z := nn.Zeros(tensor.Shape{3}, backend)
	assert.Equal(t, []float32{0, 0, 0}, z.Data())

	o := nn.Ones(tensor.Shape{3}, backend)
	assert.Equal(t, []float32{1, 1, 1}, o.Data())
}

func TestRandn_NotDegenerate(t *testing.T) {
	backend := cpu.New()

	x := nn.Randn(tensor.Shape{100, 10}, backend)

	samples := make([]float64, 0, x.NumElements())
	for _, v := range x.Data() {
		samples = append(samples, float64(v))
	}

	mean, std := stat.MeanStdDev(samples, nil)
	assert.InDelta(t, 0, mean, 0.15)
	assert.InDelta(t, 1, std, 0.15)
}
