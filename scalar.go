// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint of the package.
// Every type is parameterized over it.
type Float interface {
	constraints.Float
}

// Eps returns the base precision of T.
// Singularity thresholds in conversions and Slerp derive
// from this value, as do the tolerances used in tests.
func Eps[T Float]() T {
	var x T = 1 << 24
	if x+1 == x {
		// 1<<24 + 1 is not representable in float32.
		return 1e-5
	}
	return 1e-9
}

// clamp1 restricts x to [-1, 1], the acos domain.
func clamp1[T Float](x T) T {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

func sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

func sin[T Float](x T) T { return T(math.Sin(float64(x))) }

func cos[T Float](x T) T { return T(math.Cos(float64(x))) }

func acos[T Float](x T) T { return T(math.Acos(float64(x))) }

func atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }
