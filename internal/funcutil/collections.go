// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package funcutil contains generic helpers over slices.
package funcutil

import (
	"golang.org/x/exp/constraints"
)

// Map returns a new slice b such for any i <= len(a), b[i] = f(a[i])
func Map[T any, S any](a []T, f func(T) S) []S {
	b := make([]S, 0, len(a))
	for _, x := range a {
		b = append(b, f(x))
	}
	return b
}

// Filter returns a new slice with the elements x of a such that f(x) is true, in the same order.
func Filter[T any](a []T, f func(T) bool) []T {
	var b []T
	for _, x := range a {
		if f(x) {
			b = append(b, x)
		}
	}
	return b
}

// Count returns the number of elements x of a such that f(x) is true.
func Count[T any](a []T, f func(T) bool) int {
	n := 0
	for _, x := range a {
		if f(x) {
			n++
		}
	}
	return n
}

// SumBy returns the sum of f(x) for all elements x of a.
func SumBy[T any, N constraints.Integer | constraints.Float](a []T, f func(T) N) N {
	var sum N
	for _, x := range a {
		sum += f(x)
	}
	return sum
}
