// Copyright 2024 The CladeAge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package age

import (
	"math"
	"sort"
	"testing"

	"golang.org/x/exp/rand"
)

func TestSamplerSample(t *testing.T) {
	ages := []float64{50, 30, 25, 14, 3.5}
	s := Sampler{MaxP: 0.95, Src: rand.NewSource(1)}
	out, err := s.Sample(10000, ages)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 10000 {
		t.Fatalf("want 10000 samples, got %d", len(out))
	}
	for _, v := range out {
		if v < 50 {
			t.Fatalf("sample %v below the oldest fossil age", v)
		}
	}

	// The median sample corresponds to the quantile at MaxP/2,
	// since the probabilities are uniform on [0, MaxP).
	want, err := Quantile(0.475, ages, Baseline{}, StraussSadler)
	if err != nil {
		t.Fatal(err)
	}
	sort.Float64s(out)
	median := out[len(out)/2]
	if math.Abs(median-want) > 0.5 {
		t.Errorf("median: want ≈%v, got %v", want, median)
	}
}

func TestSamplerMaxP(t *testing.T) {
	// MaxP bounds every sample by the quantile at MaxP.
	s := Sampler{MaxP: 0.5, Src: rand.NewSource(2)}
	out, err := s.Sample(1000, testAges)
	if err != nil {
		t.Fatal(err)
	}
	limit, err := Quantile(0.5, testAges, Baseline{}, StraussSadler)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range out {
		if v >= limit {
			t.Fatalf("sample %v at or above the MaxP quantile %v", v, limit)
		}
	}
}

func TestSamplerIntervals(t *testing.T) {
	bounds := []Interval{
		{Older: 55, Younger: 53},
		{Older: 32, Younger: 30},
		{Older: 26, Younger: 24},
		{Older: 15, Younger: 13},
		{Older: 6, Younger: 4},
	}
	s := Sampler{MaxP: 0.95, Src: rand.NewSource(3)}
	out, err := s.SampleIntervals(2000, bounds)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2000 {
		t.Fatalf("want 2000 samples, got %d", len(out))
	}
	// Every sample is at least the oldest age of its own
	// realization, which is at least the oldest younger bound.
	for _, v := range out {
		if v < 53 {
			t.Fatalf("sample %v below the oldest younger bound", v)
		}
	}
}

func TestSamplerIntervalsDegenerate(t *testing.T) {
	// Point intervals reduce interval sampling to exact-age
	// sampling.
	bounds := make([]Interval, len(testAges))
	for i, a := range testAges {
		bounds[i] = Interval{Older: a, Younger: a}
	}
	s := Sampler{Src: rand.NewSource(4)}
	out, err := s.SampleIntervals(500, bounds)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range out {
		if v < 54 {
			t.Fatalf("sample %v below the oldest fossil age", v)
		}
	}
}

func TestSamplerErrors(t *testing.T) {
	_, err := Sampler{MaxP: 1.5}.Sample(10, testAges)
	wantDomainErr(t, err, "MaxP > 1")

	_, err = Sampler{}.Sample(10, nil)
	wantDomainErr(t, err, "empty ages")

	_, err = Sampler{}.SampleIntervals(10, []Interval{{Older: 3, Younger: 5}})
	wantDomainErr(t, err, "inverted interval")

	_, err = Sampler{}.SampleIntervals(10, []Interval{{Older: 3, Younger: -1}})
	wantDomainErr(t, err, "negative bound")
}
