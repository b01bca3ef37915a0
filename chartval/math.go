// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartval

import (
	"image/color"
	"strconv"

	"github.com/ericlagergren/decimal"
)

const NearZero = 0.000001

func IsGreenCandle(o, c float64) bool {
	// this may be adjusted based on whether it is considered to be green if open price equals close price.
	return c >= o
}

// ColorFromRGBA unpacks a 0xRRGGBBAA colour value.
func ColorFromRGBA(v uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// RoundPrice rounds price z to two digits after decimal point and returns z.
func RoundPrice(z *decimal.Big) *decimal.Big {
	// Call Quantize twice, otherwise one digit may be missing, see https://github.com/ericlagergren/decimal/issues/151
	return z.Quantize(2).Quantize(2)
}

// Returns a new decimal with prepared formatting, enforce a minimum of 2 digits after decimal point.
func PrepareFormattedPrice(z *decimal.Big) *decimal.Big {
	if z.Scale() < 2 {
		// Adding 0.00 will enforce the proper format
		return new(decimal.Big).Add(z, decimal.New(0, 2))
	}
	return new(decimal.Big).Copy(z)
}

// The builtin decimal.Big conversion from float64 is an "exact" conversion, and useless for our cases.
// Therefore, convert using string conversion, even though this requires memory allocation.
// See also https://github.com/ericlagergren/decimal/issues/142

// Convert float to string and then to decimal.
func ConvertFloatToDecimal(v float64, bitSize int) *decimal.Big {
	d, _ := new(decimal.Big).SetString(strconv.FormatFloat(v, 'f', -1, bitSize))
	return d
}

// FormatPrice renders a price value for axis and marker labels,
// with two digits after the decimal point and the configured
// prefix/suffix applied.
func FormatPrice(v float64, prefix, suffix string) string {
	d := PrepareFormattedPrice(RoundPrice(ConvertFloatToDecimal(v, 64)))
	return prefix + d.String() + suffix
}
