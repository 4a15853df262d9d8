package tensor

// mockBackend satisfies Backend for tests that never compute: creation,
// indexing and view behavior. Compute paths are covered against the real
// backend in internal/backend/cpu.
type mockBackend struct{}

func (m *mockBackend) Name() string   { return "mock" }
func (m *mockBackend) Device() Device { return CPU }

func (m *mockBackend) Reshape(x *RawTensor, shape Shape) *RawTensor {
	view, err := x.WithShape(shape)
	if err != nil {
		panic(err)
	}
	return view
}

func (m *mockBackend) Add(a, b *RawTensor) *RawTensor            { panic("mock: no compute") }
func (m *mockBackend) Sub(a, b *RawTensor) *RawTensor            { panic("mock: no compute") }
func (m *mockBackend) Mul(a, b *RawTensor) *RawTensor            { panic("mock: no compute") }
func (m *mockBackend) Div(a, b *RawTensor) *RawTensor            { panic("mock: no compute") }
func (m *mockBackend) MatMul(a, b *RawTensor) *RawTensor         { panic("mock: no compute") }
func (m *mockBackend) BatchMatMul(a, b *RawTensor) *RawTensor    { panic("mock: no compute") }
func (m *mockBackend) Transpose(x *RawTensor, _ ...int) *RawTensor { panic("mock: no compute") }
func (m *mockBackend) Unsqueeze(x *RawTensor, _ int) *RawTensor  { panic("mock: no compute") }
func (m *mockBackend) Squeeze(x *RawTensor, _ int) *RawTensor    { panic("mock: no compute") }
func (m *mockBackend) Expand(x *RawTensor, _ Shape) *RawTensor   { panic("mock: no compute") }
func (m *mockBackend) AddScalar(x *RawTensor, _ any) *RawTensor  { panic("mock: no compute") }
func (m *mockBackend) SubScalar(x *RawTensor, _ any) *RawTensor  { panic("mock: no compute") }
func (m *mockBackend) MulScalar(x *RawTensor, _ any) *RawTensor  { panic("mock: no compute") }
func (m *mockBackend) DivScalar(x *RawTensor, _ any) *RawTensor  { panic("mock: no compute") }
func (m *mockBackend) Sum(x *RawTensor) *RawTensor               { panic("mock: no compute") }
func (m *mockBackend) Cast(x *RawTensor, _ DataType) *RawTensor  { panic("mock: no compute") }

var _ Backend = (*mockBackend)(nil)
