package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, 5, Shape{5}.NumElements())
	assert.Equal(t, 1, Shape{}.NumElements(), "scalar shape has one element")
}

func TestShape_Validate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.NoError(t, Shape{}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1}.Validate())
}

func TestShape_Strides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.Strides())
	assert.Equal(t, []int{1}, Shape{7}.Strides())
	assert.Empty(t, Shape{}.Strides())
}

func TestShape_LeadingLast(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, Shape{2, 3}, s.Leading())
	assert.Equal(t, 4, s.Last())

	assert.Equal(t, Shape{}, Shape{5}.Leading())
	assert.Equal(t, 0, Shape{}.Last())
}

func TestShape_Equal(t *testing.T) {
	assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
	assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
	assert.False(t, Shape{2, 3}.Equal(Shape{2, 3, 1}))
	assert.True(t, Shape{}.Equal(Shape{}))
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Shape
		want   Shape
		expand bool
	}{
		{"same shape", Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{"singleton row", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true},
		{"singleton col", Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true},
		{"rank mismatch", Shape{5}, Shape{3, 5}, Shape{3, 5}, true},
		{"trailing singletons", Shape{2, 4, 1, 1}, Shape{2, 4, 3, 3}, Shape{2, 4, 3, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, expand, err := BroadcastShapes(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.expand, expand)
		})
	}

	t.Run("incompatible", func(t *testing.T) {
		_, _, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5})
		assert.Error(t, err)
	})
}
