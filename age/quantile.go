// Copyright 2024 The CladeAge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package age

// Quantile returns the clade age at cumulative probability p under
// model m, given the observed fossil ages and baseline b.
//
// Quantile(0, ...) is the oldest fossil age for every model: the
// estimate never extrapolates below the oldest occurrence. As p
// approaches 1 every model diverges, so p must lie in [0, 1); p >= 1
// is reported as a DomainError rather than returned as +Inf.
func Quantile(p float64, ages []float64, b Baseline, m Model) (float64, error) {
	d, err := NewAgeDist(ages, b, m)
	if err != nil {
		return 0, err
	}
	if err := checkProb(p); err != nil {
		return 0, err
	}
	return d.InvCDF(p), nil
}

// QuantileEach returns Quantile(ps[i], ...) for each i. The fossil
// ages are validated and the baseline resolved once for the whole
// probability vector.
func QuantileEach(ps []float64, ages []float64, b Baseline, m Model) ([]float64, error) {
	d, err := NewAgeDist(ages, b, m)
	if err != nil {
		return nil, err
	}
	for _, p := range ps {
		if err := checkProb(p); err != nil {
			return nil, err
		}
	}
	return d.InvCDFEach(ps), nil
}

func checkProb(p float64) error {
	if p < 0 || p >= 1 {
		return domainErr("p", p, "cumulative probability must be in [0, 1)")
	}
	return nil
}
