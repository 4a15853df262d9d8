// Package cpu implements the CPU compute backend: elementwise kernels
// with broadcasting, BLAS-backed matrix multiplication, and shape
// manipulation over raw tensors.
package cpu

import (
	"os"
	"strconv"

	"k8s.io/klog/v2"

	"github.com/trellis-ml/trellis/internal/parallel"
	"github.com/trellis-ml/trellis/internal/tensor"
)

// Environment variables read once at construction.
const (
	// EnvMatMul selects the gemm implementation: "blas" (default) or
	// "naive".
	EnvMatMul = "TRELLIS_MATMUL"
	// EnvWorkers caps the worker count of the batched kernels.
	EnvWorkers = "TRELLIS_WORKERS"
)

type matmulMode int

const (
	matmulBLAS matmulMode = iota
	matmulNaive
)

// CPUBackend implements tensor.Backend on the host CPU.
type CPUBackend struct {
	device   tensor.Device
	matmul   matmulMode
	parallel parallel.Config
}

// New creates a CPU backend configured from the environment.
func New() *CPUBackend {
	cpu := &CPUBackend{
		device:   tensor.CPU,
		matmul:   matmulBLAS,
		parallel: parallel.DefaultConfig(),
	}

	if v := os.Getenv(EnvMatMul); v == "naive" {
		cpu.matmul = matmulNaive
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cpu.parallel = cpu.parallel.WithWorkers(n)
		} else {
			klog.Warningf("cpu: ignoring invalid %s=%q: %v", EnvWorkers, v, err)
		}
	}

	klog.V(1).Infof("cpu: backend ready (matmul=%s, workers=%d)",
		map[matmulMode]string{matmulBLAS: "blas", matmulNaive: "naive"}[cpu.matmul],
		cpu.parallel.NumWorkers)
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs elementwise addition with broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("add", opAdd, a, b)
}

// Sub performs elementwise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sub", opSub, a, b)
}

// Mul performs elementwise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("mul", opMul, a, b)
}

// Div performs elementwise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("div", opDiv, a, b)
}
