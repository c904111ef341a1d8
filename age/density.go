// Copyright 2024 The CladeAge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package age

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// A DensityCurve is an empirical probability distribution over
// candidate clade ages: per-age probability masses ordered by
// increasing age. The masses are non-negative and sum approximately
// to the cumulative cutoff the curve was built with.
type DensityCurve struct {
	// Ages holds the candidate clade ages, in increasing order.
	Ages []float64

	// Probs holds the probability mass at each age. Probs[i]
	// corresponds to Ages[i].
	Probs []float64
}

// Len returns the number of points on the curve.
func (c DensityCurve) Len() int { return len(c.Ages) }

// Sum returns the total probability mass on the curve.
func (c DensityCurve) Sum() float64 { return floats.Sum(c.Probs) }

// Density represents options for computing the likelihood-based
// probability distribution of a clade's age from exactly known
// fossil ages (Wang 2010). The likelihood of a candidate clade age Y
// is proportional to 1/Y^n for fossil ages modeled as independent
// uniform draws below Y; the curve is evaluated on a unit-step grid
// and rescaled so its total mass is PMax.
//
// The zero value of Density is a reasonable default configuration.
type Density struct {
	// Baseline is the reference age; the zero value derives it
	// from the data.
	Baseline Baseline

	// PMax is the cumulative probability the grid covers. The
	// grid would otherwise be infinite, since the likelihood has
	// unbounded support to the right. If zero, it is treated as
	// 0.99.
	PMax float64
}

// From returns the probability distribution of the clade age for the
// given fossil ages. The first grid age is exactly the oldest fossil
// age: no mass is assigned below the oldest occurrence. Grid steps
// are one time unit wide.
func (d Density) From(ages []float64) (DensityCurve, error) {
	pmax := d.PMax
	if pmax == 0 {
		pmax = 0.99
	}
	if pmax < 0 || pmax >= 1 {
		return DensityCurve{}, domainErr("PMax", d.PMax, "cumulative cutoff must be in (0, 1)")
	}
	base, n, err := d.Baseline.resolve(ages)
	if err != nil {
		return DensityCurve{}, err
	}
	if n < 1 {
		return DensityCurve{}, domainErr("ages", ages, "effective sample size is below one; supply more ages or an explicit baseline")
	}
	_, xmax := shift(ages, base)
	if xmax == 0 {
		return DensityCurve{}, domainErr("ages", ages, "all ages equal the baseline; the likelihood is unbounded")
	}

	// The grid runs from the oldest shifted age to the age at
	// which the Strauss-Sadler survival model reaches pmax.
	up := xmax * math.Pow(1-pmax, -1/float64(n))
	steps := int(math.Floor(up-xmax)) + 1

	grid := make([]float64, steps)
	lik := make([]float64, steps)
	for i := range grid {
		y := xmax + float64(i)
		grid[i] = y
		lik[i] = math.Pow(y, -float64(n))
	}

	// Trapezoid area under a monotonically decreasing curve on a
	// unit-step grid: interior points carry full weight, the left
	// endpoint half weight.
	area := floats.Sum(lik) - lik[0]/2

	probs := make([]float64, steps)
	for i, l := range lik {
		probs[i] = l * pmax / area
		grid[i] += base
	}
	return DensityCurve{Ages: grid, Probs: probs}, nil
}
