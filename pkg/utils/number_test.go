package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		name  string
		part  int
		total int
		want  int
	}{
		{name: "Divisão exata", part: 2, total: 5, want: 40},
		{name: "Arredonda para cima", part: 2, total: 3, want: 67},
		{name: "Arredonda para baixo", part: 1, total: 3, want: 33},
		{name: "Total zero retorna zero", part: 3, total: 0, want: 0},
		{name: "Parte zero retorna zero", part: 0, total: 10, want: 0},
		{name: "Cem por cento", part: 7, total: 7, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundPercent(tt.part, tt.total))
		})
	}
}

func TestRoundToInt(t *testing.T) {
	assert.Equal(t, 79, RoundToInt(79.0))
	assert.Equal(t, 80, RoundToInt(79.5))
	assert.Equal(t, 79, RoundToInt(79.4))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.345))
	assert.Equal(t, 30000.0, RoundWithTwoDecimalPlace(30000))
}
