// Copyright 2024 The CladeAge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package age estimates the unobserved origination time of a
// biological clade from the ages of fossil occurrences attributed to
// it.
//
// The package implements the confidence-interval models of Strauss &
// Sadler (1989) and Solow (2003) as quantile functions over the clade
// age, inverse-transform sampling built on those quantile functions,
// and the empirical-likelihood density of Wang (2010), with an
// optional Monte Carlo extension that propagates stratigraphic
// uncertainty in each fossil's age.
//
// All computations are pure functions of their inputs plus, for the
// sampling operations, a random source. Fossil ages are expressed in
// time units before a baseline (for example, millions of years before
// present); larger ages are older.
package age // import "github.com/evolucionario/cladeage/age"

import "math"

var inf = math.Inf(1)
