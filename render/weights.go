// Package render: the betweenness→edge-width heuristic.
package render

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// widthExponent sharpens the normalized weights so the strongest edges
// stay visibly stronger than the rest.
const widthExponent = 6

// normalizedBetweenness maps raw edge-betweenness values onto [0,1]:
// the logarithm compresses the huge dynamic range, values are clipped at
// zero (betweenness ≤ 1 logs negative), and the result is divided by its
// maximum so the strongest edge lands exactly at 1. A slice with no
// positive-log entry is returned as all zeros.
// Complexity: O(E).
func normalizedBetweenness(bc []float64) []float64 {
	if len(bc) == 0 {
		return nil
	}
	norm := make([]float64, len(bc))
	for i, b := range bc {
		lw := math.Log(b)
		if math.IsNaN(lw) || lw < 0 {
			lw = 0
		}
		norm[i] = lw
	}
	max := floats.Max(norm)
	if max == 0 {
		return norm
	}
	for i := range norm {
		norm[i] /= max
	}

	return norm
}

// betweennessWidths converts betweenness values into relative stroke
// weights in [0,1] by raising the normalized values to widthExponent.
// Complexity: O(E).
func betweennessWidths(bc []float64) []float64 {
	weights := normalizedBetweenness(bc)
	for i, w := range weights {
		weights[i] = math.Pow(w, widthExponent)
	}

	return weights
}
