package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want uint32
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"negative", -3, 3},
		{"max uint32", math.MaxUint32, math.MaxUint32},
		{"above uint32", math.MaxUint32 + 10, math.MaxUint32},
		{"max int", math.MaxInt, math.MaxUint32},
		{"min int", math.MinInt, math.MaxUint32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, count(tt.n))
		})
	}
}
