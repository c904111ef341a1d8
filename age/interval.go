// Copyright 2024 The CladeAge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package age

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// An Interval brackets a fossil occurrence's age between its
// stratigraphic bounds: the occurrence is no older than Older and no
// younger than Younger. The named fields replace the positional
// two-column bounds matrix common in the literature, whose column
// order is easy to invert.
type Interval struct {
	Older   float64
	Younger float64
}

func checkIntervals(bounds []Interval) error {
	if len(bounds) == 0 {
		return domainErr("bounds", bounds, "at least one interval is required")
	}
	for _, iv := range bounds {
		if iv.Younger < 0 {
			return domainErr("bounds", iv, "stratigraphic bounds must be non-negative")
		}
		if iv.Older < iv.Younger {
			return domainErr("bounds", iv, "older bound must not be below younger bound")
		}
	}
	return nil
}

// realize draws one fossil-age vector, sampling each occurrence's age
// uniformly and independently from its interval. The result is
// written into ages, which must have len(bounds) elements.
func realize(ages []float64, bounds []Interval, src rand.Source) {
	for i, iv := range bounds {
		if iv.Older == iv.Younger {
			ages[i] = iv.Younger
			continue
		}
		ages[i] = distuv.Uniform{Min: iv.Younger, Max: iv.Older, Src: src}.Rand()
	}
}
