package tensor

// Backend is the compute surface the rest of the library is written
// against. The transform modules in internal/nn consume exactly this
// interface: elementwise arithmetic with broadcasting, the two matrix
// contractions, shape manipulation, and dtype conversion.
type Backend interface {
	// Elementwise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// MatMul multiplies two 2D tensors: (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) *RawTensor

	// BatchMatMul multiplies stacks of matrices. The last two dimensions
	// are the matrix dimensions; all leading dimensions must match:
	// (..., M, K) @ (..., K, N) -> (..., M, N).
	BatchMatMul(a, b *RawTensor) *RawTensor

	// Shape manipulation. Reshape, Unsqueeze and Squeeze are zero-copy
	// views; Transpose and Expand materialize.
	Reshape(x *RawTensor, shape Shape) *RawTensor
	Transpose(x *RawTensor, axes ...int) *RawTensor
	Unsqueeze(x *RawTensor, dim int) *RawTensor
	Squeeze(x *RawTensor, dim int) *RawTensor
	Expand(x *RawTensor, shape Shape) *RawTensor

	// Elementwise operations against a scalar.
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	MulScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// Sum reduces all elements to a rank-0 tensor.
	Sum(x *RawTensor) *RawTensor

	// Cast converts storage to a different data type (including the
	// storage-only Float16).
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
