// Copyright 2024 The CladeAge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package age

import "gonum.org/v1/gonum/floats"

// A Baseline is the reference age against which fossil ages are
// shifted before any model computation. An explicit baseline of 0
// means ages are measured from the present.
//
// The zero value of Baseline derives the reference from the data:
// the baseline becomes the youngest fossil age and the effective
// sample size is reduced by one, reflecting the degree of freedom
// spent estimating the baseline itself (Solow 2003).
type Baseline struct {
	// Age is the reference age. It is ignored unless Fixed is
	// true.
	Age float64

	// Fixed selects Age as an explicit baseline. If false, the
	// baseline is derived from the fossil ages.
	Fixed bool
}

// resolve validates ages and turns b into a concrete (baseline,
// effective sample size) pair. Every operation in this package calls
// resolve exactly once and threads the result explicitly; nothing
// downstream depends on b again.
func (b Baseline) resolve(ages []float64) (base float64, n int, err error) {
	if len(ages) == 0 {
		return 0, 0, domainErr("ages", ages, "at least one fossil age is required")
	}
	for _, a := range ages {
		if a < 0 {
			return 0, 0, domainErr("ages", a, "fossil ages must be non-negative")
		}
	}
	if b.Fixed {
		if min := floats.Min(ages); b.Age > min {
			return 0, 0, domainErr("baseline", b.Age, "baseline must not exceed the youngest fossil age")
		}
		return b.Age, len(ages), nil
	}
	return floats.Min(ages), len(ages) - 1, nil
}

// shift returns ages−base and the largest shifted age, the oldest
// occurrence relative to the baseline.
func shift(ages []float64, base float64) (xs []float64, xmax float64) {
	xs = make([]float64, len(ages))
	for i, a := range ages {
		xs[i] = a - base
	}
	return xs, floats.Max(xs)
}
