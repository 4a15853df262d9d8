// Package nn implements the Trellis transform modules: Linear, Bilinear
// and FiLM, plus the fan-in parameter initializer they share.
//
// Modules own their parameter tensors and expose a pure Forward
// computation over inputs with arbitrary leading dimensions. Gradients,
// optimization and checkpointing are the caller's concern; modules only
// hand out their parameters through Parameters().
package nn

import (
	"github.com/trellis-ml/trellis/internal/tensor"
)

// Module is the capability interface for single-input transforms.
// Bilinear and FiLM take more than one input tensor and therefore only
// share the Parameters surface, keeping their own Forward arity.
type Module[B tensor.Backend] interface {
	// Forward computes the module's output for one input tensor. The
	// input's trailing dimension must match the module's declared
	// input feature count.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns the module's owned parameters, or an empty
	// slice for stateless modules.
	Parameters() []*Parameter[B]
}
