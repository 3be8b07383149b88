package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHDUTable(t *testing.T) {
	out := RenderHDUTable([]HDURow{
		{Index: 0, Type: "PrimaryHDU", Cards: 12, Shape: []int{100, 100}, DataType: "float32"},
		{Index: 1, Type: "BinTableHDU", Cards: 30, Shape: []int{2048}, DataType: "record"},
	})

	assert.Contains(t, out, "INDEX")
	assert.Contains(t, out, "PrimaryHDU")
	assert.Contains(t, out, "100 x 100")
	assert.Contains(t, out, "record")
}

func TestRenderHDUTableHeaderOnly(t *testing.T) {
	out := RenderHDUTable([]HDURow{
		{Index: 0, Type: "PrimaryHDU", Cards: 6},
	})

	assert.Contains(t, out, "-")
}

func TestFormatShape(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
		want  string
	}{
		{"no data", nil, "-"},
		{"one axis", []int{2048}, "2048"},
		{"two axes", []int{100, 200}, "100 x 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatShape(tt.shape))
		})
	}
}
