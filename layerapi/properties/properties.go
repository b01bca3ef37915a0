// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package properties

import "strconv"

func SetPositiveValue(n *int, value string) {
	valInt, err := strconv.Atoi(value)
	if err == nil && valInt > 0 {
		*n = valInt
	}
}

func SetPositiveFloatValue(n *float64, value string) {
	valFloat, err := strconv.ParseFloat(value, 64)
	if err == nil && valFloat > 0 {
		*n = valFloat
	}
}
