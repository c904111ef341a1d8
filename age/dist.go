// Copyright 2024 The CladeAge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package age

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x. The value of y must be in [0, 1].
	InvCDF(y float64) float64

	// InvCDFEach returns InvCDF(ys[i]) for each i.
	InvCDFEach(ys []float64) []float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

var _ Dist = (*AgeDist)(nil)

// An AgeDist is the continuous distribution of a clade's origination
// age implied by a set of fossil ages under a Model. Its support
// starts at the oldest fossil age: no probability mass is assigned to
// clade ages younger than the oldest occurrence.
type AgeDist struct {
	base  float64
	xmax  float64
	n     int
	model Model
	gap   float64 // Solow only: gap between the two oldest shifted ages.
}

// NewAgeDist fits the clade-age distribution for ages under model m.
// The baseline is resolved per b: explicit, or derived as the
// youngest age with the effective sample size reduced by one.
//
// It returns a DomainError if ages is empty or contains a negative
// age, if an explicit baseline exceeds the youngest age, if the
// effective sample size is below one (StraussSadler, Beta), or if
// fewer than two ages are supplied for the Solow model.
func NewAgeDist(ages []float64, b Baseline, m Model) (*AgeDist, error) {
	base, n, err := b.resolve(ages)
	if err != nil {
		return nil, err
	}
	xs, xmax := shift(ages, base)
	d := &AgeDist{base: base, xmax: xmax, n: n, model: m}
	switch m {
	default:
		return nil, domainErr("model", m, "unknown model")
	case StraussSadler, Beta:
		if n < 1 {
			return nil, domainErr("ages", ages, "effective sample size is below one; supply more ages or an explicit baseline")
		}
	case Solow:
		if len(xs) < 2 {
			return nil, domainErr("ages", ages, "the Solow model requires at least two fossil ages")
		}
		// The gap between the two oldest occurrences is the
		// only datum the Solow model uses beyond the maximum.
		first, second := math.Inf(-1), math.Inf(-1)
		for _, x := range xs {
			if x > first {
				first, second = x, first
			} else if x > second {
				second = x
			}
		}
		d.gap = first - second
	}
	return d, nil
}

// Oldest returns the oldest observed fossil age, the lower end of the
// distribution's support.
func (d *AgeDist) Oldest() float64 { return d.base + d.xmax }

func (d *AgeDist) PDF(x float64) float64 {
	y := x - d.base
	if y < d.xmax {
		return 0
	}
	switch d.model {
	case Beta:
		// The shifted maximum over the candidate age is
		// Beta(n, 1) distributed; transform its density back
		// to the age axis.
		bd := distuv.Beta{Alpha: float64(d.n), Beta: 1}
		return bd.Prob(d.xmax/y) * d.xmax / (y * y)
	case Solow:
		w := y - d.xmax
		return d.gap / ((w + d.gap) * (w + d.gap))
	}
	return float64(d.n) * math.Pow(d.xmax, float64(d.n)) / math.Pow(y, float64(d.n)+1)
}

func (d *AgeDist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.PDF(x)
	}
	return res
}

func (d *AgeDist) CDF(x float64) float64 {
	y := x - d.base
	if y <= d.xmax {
		return 0
	}
	switch d.model {
	case Beta:
		bd := distuv.Beta{Alpha: float64(d.n), Beta: 1}
		return 1 - bd.CDF(d.xmax/y)
	case Solow:
		w := y - d.xmax
		return w / (w + d.gap)
	}
	return 1 - math.Pow(d.xmax/y, float64(d.n))
}

func (d *AgeDist) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.CDF(x)
	}
	return res
}

// InvCDF returns the clade age at cumulative probability y.
// InvCDF(0) is exactly the oldest fossil age for every model, and
// InvCDF(1) is +Inf for every model; callers bound y away from 1 to
// avoid the divergent right tail.
func (d *AgeDist) InvCDF(y float64) float64 {
	if y < 0 || y > 1 {
		panic("probability out of range [0, 1]")
	}
	switch {
	case y == 0:
		return d.Oldest()
	case y == 1:
		return inf
	}
	switch d.model {
	case Beta:
		bd := distuv.Beta{Alpha: float64(d.n), Beta: 1}
		return d.base + d.xmax/bd.Quantile(1-y)
	case Solow:
		return d.base + d.xmax + d.gap*y/(1-y)
	}
	return d.base + d.xmax*math.Pow(1-y, -1/float64(d.n))
}

func (d *AgeDist) InvCDFEach(ys []float64) []float64 {
	res := make([]float64, len(ys))
	for i, y := range ys {
		res[i] = d.InvCDF(y)
	}
	return res
}

func (d *AgeDist) Bounds() (float64, float64) {
	return d.Oldest(), d.InvCDF(0.995)
}
