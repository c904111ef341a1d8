// Copyright 2024 The CladeAge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package age

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// A Sampler draws random clade ages by inverse-transform sampling:
// uniform probabilities pushed through the quantile function of the
// selected model.
//
// The zero value of Sampler is a reasonable default configuration:
// StraussSadler model, derived baseline, untruncated probabilities,
// and the global random source.
type Sampler struct {
	// Model selects the quantile model.
	Model Model

	// Baseline is the reference age; the zero value derives it
	// from the data.
	Baseline Baseline

	// MaxP truncates the sampled cumulative probabilities to
	// [0, MaxP). If zero, it is treated as 1. Truncation guards
	// against pathologically old ages from the divergent right
	// tail, which is heavy under the Solow model in particular.
	MaxP float64

	// Src is the random source. If nil, the global source is
	// used.
	Src rand.Source
}

func (s Sampler) maxP() (float64, error) {
	if s.MaxP == 0 {
		return 1, nil
	}
	if s.MaxP < 0 || s.MaxP > 1 {
		return 0, domainErr("MaxP", s.MaxP, "probability cutoff must be in (0, 1]")
	}
	return s.MaxP, nil
}

// Sample returns n independent clade-age samples for a fixed vector
// of fossil ages. Every sample is at least the oldest fossil age.
func (s Sampler) Sample(n int, ages []float64) ([]float64, error) {
	maxP, err := s.maxP()
	if err != nil {
		return nil, err
	}
	d, err := NewAgeDist(ages, s.Baseline, s.Model)
	if err != nil {
		return nil, err
	}
	u := distuv.Uniform{Min: 0, Max: maxP, Src: s.Src}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.InvCDF(u.Rand())
	}
	return out, nil
}

// SampleIntervals returns n independent clade-age samples for
// fossils whose ages are known only to stratigraphic intervals. Each
// output sample uses a fresh realization of the whole fossil-age
// vector, drawn uniformly within the intervals, so age uncertainty
// is propagated sample by sample. Every sample is at least the
// oldest age of the realization that produced it.
func (s Sampler) SampleIntervals(n int, bounds []Interval) ([]float64, error) {
	maxP, err := s.maxP()
	if err != nil {
		return nil, err
	}
	if err := checkIntervals(bounds); err != nil {
		return nil, err
	}
	u := distuv.Uniform{Min: 0, Max: maxP, Src: s.Src}
	ages := make([]float64, len(bounds))
	out := make([]float64, n)
	for i := range out {
		realize(ages, bounds, s.Src)
		d, err := NewAgeDist(ages, s.Baseline, s.Model)
		if err != nil {
			return nil, err
		}
		out[i] = d.InvCDF(u.Rand())
	}
	return out, nil
}
