package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellis-ml/trellis/internal/backend/cpu"
	"github.com/trellis-ml/trellis/internal/nn"
	"github.com/trellis-ml/trellis/internal/tensor"
)

func TestFiLM_Identity(t *testing.T) {
	backend := cpu.New()
	film := nn.NewFiLM[*cpu.CPUBackend]()

	x := input(t, backend, []float32{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 2, 2})
	scale := tensor.Ones[float32](tensor.Shape{2, 2}, backend)
	shift := tensor.Zeros[float32](tensor.Shape{2, 2}, backend)

	y := film.Forward(x, scale, shift)
	assert.Equal(t, x.Data(), y.Data(), "scale=1 shift=0 is the identity")
}

func TestFiLM_KnownValues(t *testing.T) {
	backend := cpu.New()
	film := nn.NewFiLM[*cpu.CPUBackend]()

	// Every element is 5; scale 2 and shift 1 give 11 everywhere.
	x := tensor.Full[float32](tensor.Shape{1, 1, 2, 2}, 5, backend)
	scale := input(t, backend, []float32{2}, tensor.Shape{1, 1})
	shift := input(t, backend, []float32{1}, tensor.Shape{1, 1})

	y := film.Forward(x, scale, shift)
	require.Equal(t, tensor.Shape{1, 1, 2, 2}, y.Shape())
	assert.Equal(t, []float32{11, 11, 11, 11}, y.Data())
}

func TestFiLM_PerChannel(t *testing.T) {
	backend := cpu.New()
	film := nn.NewFiLM[*cpu.CPUBackend]()

	// (N=2, C=2, W=2): channel c of sample n scales by 10n+c and shifts
	// by 1, so each spatial pair shares its channel's coefficients.
	x := input(t, backend, []float32{
		1, 2, 3, 4, // n=0: c=0 then c=1
		5, 6, 7, 8, // n=1
	}, tensor.Shape{2, 2, 2})
	scale := input(t, backend, []float32{0, 1, 10, 11}, tensor.Shape{2, 2})
	shift := tensor.Ones[float32](tensor.Shape{2, 2}, backend)

	y := film.Forward(x, scale, shift)
	assert.Equal(t, []float32{1, 1, 4, 5, 51, 61, 78, 89}, y.Data())
}

func TestFiLM_NoSpatialDims(t *testing.T) {
	backend := cpu.New()
	film := nn.NewFiLM[*cpu.CPUBackend]()

	// Rank-2 input: coefficients apply elementwise.
	x := input(t, backend, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	scale := input(t, backend, []float32{2, 2, 3, 3}, tensor.Shape{2, 2})
	shift := input(t, backend, []float32{0, 1, 0, 1}, tensor.Shape{2, 2})

	y := film.Forward(x, scale, shift)
	assert.Equal(t, []float32{2, 5, 9, 13}, y.Data())
}

func TestFiLM_ShapeMismatch(t *testing.T) {
	backend := cpu.New()
	film := nn.NewFiLM[*cpu.CPUBackend]()

	x := tensor.Randn[float32](tensor.Shape{2, 3, 4}, backend)
	good := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
	wrongRank := tensor.Ones[float32](tensor.Shape{2, 3, 1}, backend)
	wrongN := tensor.Ones[float32](tensor.Shape{3, 3}, backend)
	wrongC := tensor.Ones[float32](tensor.Shape{2, 4}, backend)
	flat := tensor.Randn[float32](tensor.Shape{6}, backend)

	requirePanicsIs(t, nn.ErrShapeMismatch, func() { film.Forward(x, wrongRank, good) })
	requirePanicsIs(t, nn.ErrShapeMismatch, func() { film.Forward(x, good, wrongRank) })
	requirePanicsIs(t, nn.ErrShapeMismatch, func() { film.Forward(x, wrongN, good) })
	requirePanicsIs(t, nn.ErrShapeMismatch, func() { film.Forward(x, good, wrongC) })
	requirePanicsIs(t, nn.ErrShapeMismatch, func() { film.Forward(flat, good, good) })
}

func TestFiLM_DoesNotMutateInputs(t *testing.T) {
	backend := cpu.New()
	film := nn.NewFiLM[*cpu.CPUBackend]()

	x := input(t, backend, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	scale := input(t, backend, []float32{2, 2, 2, 2}, tensor.Shape{2, 2})
	shift := input(t, backend, []float32{1, 1, 1, 1}, tensor.Shape{2, 2})

	film.Forward(x, scale, shift)
	assert.Equal(t, []float32{1, 2, 3, 4}, x.Data())
	assert.Equal(t, []float32{2, 2, 2, 2}, scale.Data())
}

func TestFiLM_NoParameters(t *testing.T) {
	film := nn.NewFiLM[*cpu.CPUBackend]()
	assert.Nil(t, film.Parameters())
	assert.Equal(t, "FiLM()", film.String())
}
