package diversity

import (
	"math"
	"sort"
)

// TopIndices returns the indices of the n largest weights in descending
// order. Equal weights keep the lower index first and NaN sorts last.
func TopIndices(weights []float64, n int) []int {
	return topIndicesBy(weights, n, func(w float64) float64 { return w })
}

// TopIndicesAbs ranks by absolute weight, as LSA loadings are signed.
func TopIndicesAbs(weights []float64, n int) []int {
	return topIndicesBy(weights, n, math.Abs)
}

func topIndicesBy(weights []float64, n int, key func(float64) float64) []int {
	if n <= 0 || len(weights) == 0 {
		return nil
	}
	idx := make([]int, len(weights))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		wa, wb := key(weights[idx[a]]), key(weights[idx[b]])
		if math.IsNaN(wb) {
			return !math.IsNaN(wa)
		}
		return wa > wb
	})
	if n > len(idx) {
		n = len(idx)
	}
	return idx[:n]
}
