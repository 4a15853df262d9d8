// Package tensor provides the core tensor types for the Trellis library.
package tensor

// DType is the constraint for element types a Tensor can be parameterized on.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// DataType is the runtime type tag of a tensor's storage.
type DataType int

// Supported storage types. Float16 is storage-only: it has no DType
// counterpart and is reached through RawTensor.AsFloat16 and Backend.Cast.
const (
	Float32 DataType = iota
	Float64
	Float16
	Int32
	Int64
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Float16:
		return 2
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// inferDataType maps a generic element type to its runtime tag.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	default:
		panic("unsupported type")
	}
}
