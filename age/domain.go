// Copyright 2024 The CladeAge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package age

import "fmt"

// A DomainError reports an argument outside the domain of an
// operation: an out-of-range probability, an inverted interval, or a
// sample too small for the requested model. Operations validate their
// arguments eagerly and return no partial results alongside a
// DomainError.
type DomainError struct {
	// Arg is the name of the offending argument.
	Arg string

	// Value is the offending value.
	Value interface{}

	// Reason describes the violated precondition.
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("age: argument %s = %v: %s", e.Arg, e.Value, e.Reason)
}

func domainErr(arg string, value interface{}, reason string) error {
	return &DomainError{Arg: arg, Value: value, Reason: reason}
}
