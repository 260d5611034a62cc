package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []int{4}, 4.00},
		{"two", []int{4, 5}, 4.50},
		{"repeating", []int{5, 4, 4}, 4.33},
		{"exact quarter", []int{5, 5, 4, 4, 4, 4, 4, 4}, 4.25},
		{"two thirds", []int{5, 5, 4}, 4.67},
		{"all ones", []int{1, 1, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mean(tt.ratings))
		})
	}
}

func TestValid(t *testing.T) {
	assert.False(t, Valid(0))
	assert.True(t, Valid(1))
	assert.True(t, Valid(5))
	assert.False(t, Valid(6))
}
