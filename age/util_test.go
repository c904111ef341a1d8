// Copyright 2024 The CladeAge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package age

import (
	"errors"
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// releq compares within relative tolerance tol.
func releq(expect, got, tol float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(got/expect-1) < tol
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(x); !aeq(want, got) {
			t.Errorf("%s(%v): want %v, got %v", name, x, want, got)
		}
	}
}

func wantDomainErr(t *testing.T, err error, what string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: want DomainError, got nil", what)
	}
	var de *DomainError
	if !errors.As(err, &de) {
		t.Errorf("%s: want DomainError, got %v", what, err)
	}
}
