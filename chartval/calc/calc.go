// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calc

import (
	"math"

	"candlechart/chartval"
)

// Mean returns the arithmetic mean of the values, or 0 for an empty
// slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStdDev returns the sample standard deviation (n-1
// denominator) of the values. Slices with one element or fewer have
// no dispersion and yield 0.
func SampleStdDev(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}
	m := Mean(values)
	var squaredDiffSum float64
	for _, v := range values {
		d := m - v
		squaredDiffSum += d * d
	}
	return math.Sqrt(squaredDiffSum / float64(len(values)-1))
}

// Representative reduces a bar to the single price used as input to
// statistical overlays, the average of its four fields.
func Representative(b chartval.Bar) float64 {
	return (b.Open + b.High + b.Low + b.Close) / 4
}

// RepresentativeList reduces every bar of the slice.
func RepresentativeList(bars []chartval.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = Representative(b)
	}
	return out
}
