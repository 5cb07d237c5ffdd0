package utils

import "math"

// RoundToInt arredonda para o inteiro mais próximo (half-up para valores não negativos)
func RoundToInt(f float64) int {
	return int(math.Round(f))
}

// RoundPercent calcula round(part/total*100) sobre contagens; retorna 0
// quando total é zero
func RoundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return RoundToInt(float64(part) / float64(total) * 100)
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
