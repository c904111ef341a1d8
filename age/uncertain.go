// Copyright 2024 The CladeAge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package age

import (
	"math"

	"golang.org/x/exp/rand"
)

// UncertainDensity represents options for computing the clade-age
// probability distribution when each fossil's age is known only to a
// stratigraphic interval. The interval uncertainty is propagated by
// pseudoreplication: many realizations of the fossil-age vector are
// drawn from within the intervals, a likelihood curve is computed for
// each, and the curves are averaged onto a common grid of bins.
//
// The averaging cannot be done in closed form because each
// realization's grid starts at its own oldest age; each curve is
// therefore treated as a set of point masses on the age axis and
// re-binned by interval membership.
//
// The zero value of UncertainDensity is a reasonable default
// configuration.
type UncertainDensity struct {
	// Baseline is the reference age; the zero value derives it
	// from the data, per realization.
	Baseline Baseline

	// PMax is the cumulative probability each replicate curve
	// covers. If zero, it is treated as 0.99.
	PMax float64

	// Reps is the number of pseudoreplicates. If zero, it is
	// treated as 1000.
	Reps int

	// Breaks is the number of bin edges on the common grid,
	// giving Breaks-1 equal-width bins. If zero, it is treated
	// as 100.
	Breaks int

	// Src is the random source. If nil, the global source is
	// used.
	Src rand.Source
}

// From returns the empirical clade-age distribution for fossils
// bracketed by the given stratigraphic intervals. The returned curve
// has one point per bin, at the bin's starting age, carrying the
// mean probability mass the pseudoreplicates placed in that bin.
func (d UncertainDensity) From(bounds []Interval) (DensityCurve, error) {
	reps := d.Reps
	if reps == 0 {
		reps = 1000
	}
	if reps < 1 {
		return DensityCurve{}, domainErr("Reps", d.Reps, "at least one pseudoreplicate is required")
	}
	breaks := d.Breaks
	if breaks == 0 {
		breaks = 100
	}
	if breaks < 2 {
		return DensityCurve{}, domainErr("Breaks", d.Breaks, "at least two bin edges are required")
	}
	if err := checkIntervals(bounds); err != nil {
		return DensityCurve{}, err
	}

	den := Density{Baseline: d.Baseline, PMax: d.PMax}
	ages := make([]float64, len(bounds))
	curves := make([]DensityCurve, reps)
	for r := range curves {
		realize(ages, bounds, d.Src)
		c, err := den.From(ages)
		if err != nil {
			return DensityCurve{}, err
		}
		curves[r] = c
	}

	// The common grid runs from the oldest possible fossil age to
	// the oldest age reached by any replicate curve.
	lo := bounds[0].Older
	for _, iv := range bounds[1:] {
		lo = math.Max(lo, iv.Older)
	}
	hi := lo
	for _, c := range curves {
		hi = math.Max(hi, c.Ages[c.Len()-1])
	}
	if hi <= lo {
		return DensityCurve{}, domainErr("bounds", bounds, "replicate curves do not extend past the oldest older bound")
	}

	width := (hi - lo) / float64(breaks-1)
	sums := make([]float64, breaks-1)
	for _, c := range curves {
		for i, a := range c.Ages {
			// Membership is [start, end); mass below the
			// first edge or at the last edge is outside
			// the common grid.
			j := int(math.Floor((a - lo) / width))
			if j < 0 || j >= len(sums) {
				continue
			}
			sums[j] += c.Probs[i]
		}
	}

	edges := make([]float64, breaks-1)
	for j := range sums {
		edges[j] = lo + float64(j)*width
		sums[j] /= float64(reps)
	}
	return DensityCurve{Ages: edges, Probs: sums}, nil
}
