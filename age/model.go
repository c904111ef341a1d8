// Copyright 2024 The CladeAge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package age

import "fmt"

// Model selects the mathematical model relating the observed fossil
// ages to the unobserved clade age.
type Model int

const (
	// StraussSadler models fossil ages as uniform draws below the
	// clade age and inverts the classical confidence interval on
	// the maximum of n such draws.
	//
	// Strauss, D.; Sadler, P. M. (1989). "Classical confidence
	// intervals and Bayesian probability estimates for ends of
	// local taxon ranges". Mathematical Geology 21: 411-427.
	StraussSadler Model = iota

	// Beta expresses the same distribution through the quantile
	// function of a Beta(n, 1) variate. It is mathematically
	// equivalent to StraussSadler and serves as an independent
	// numerical check.
	//
	// Wang, S. C.; Everson, P. J.; et al. (2009).
	Beta

	// Solow generalizes beyond uniformly distributed fossil ages
	// using only the gap between the two oldest occurrences, so
	// it requires at least two fossil ages.
	//
	// Solow, A. R. (2003). "Estimation of stratigraphic ranges
	// when fossil finds are not randomly distributed".
	// Paleobiology 29: 181-185.
	Solow
)

func (m Model) String() string {
	switch m {
	case StraussSadler:
		return "StraussSadler"
	case Beta:
		return "Beta"
	case Solow:
		return "Solow"
	}
	return fmt.Sprintf("Model(%d)", int(m))
}
