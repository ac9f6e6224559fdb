// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"
)

func BenchmarkQMul(b *testing.B) {
	q32 := Q[float32]{V: V3[float32]{0.2, 0.5, 0.1}, R: 0.8}
	p32 := Q[float32]{V: V3[float32]{0.5, 0.1, 0.3}, R: 0.7}
	q64 := Q[float64]{V: V3[float64]{0.2, 0.5, 0.1}, R: 0.8}
	p64 := Q[float64]{V: V3[float64]{0.5, 0.1, 0.3}, R: 0.7}
	var r32 Q[float32]
	var r64 Q[float64]
	b.Run("float32", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r32.Mul(&q32, &p32)
		}
	})
	b.Run("float64", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r64.Mul(&q64, &p64)
		}
	})
	b.Log(r32, r64)
}

func BenchmarkSlerp(b *testing.B) {
	axis32 := V3[float32]{4.3, 7.6, 1.2}
	axis64 := V3[float64]{4.3, 7.6, 1.2}
	var q32, p32, r32 Q[float32]
	var q64, p64, r64 Q[float64]
	q32.Rotate(1.2, &axis32)
	p32.Rotate(0.7, &axis32)
	q64.Rotate(1.2, &axis64)
	p64.Rotate(0.7, &axis64)
	b.Run("float32", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r32.Slerp(&q32, &p32, 0.5)
		}
	})
	b.Run("float64", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r64.Slerp(&q64, &p64, 0.5)
		}
	})
	b.Log(r32, r64)
}

func BenchmarkRotateQ(b *testing.B) {
	var q32 Q[float32]
	var q64 Q[float64]
	q32.Rotate(1.2, &V3[float32]{4.3, 7.6, 1.2})
	q64.Rotate(1.2, &V3[float64]{4.3, 7.6, 1.2})
	var m32 M3[float32]
	var m64 M3[float64]
	b.Run("float32", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			m32.RotateQ(&q32)
		}
	})
	b.Run("float64", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			m64.RotateQ(&q64)
		}
	})
	b.Log(m32, m64)
}

func BenchmarkEuler(b *testing.B) {
	angles32 := V3[float32]{0.66, 1.3, 0.76}
	angles64 := V3[float64]{0.66, 1.3, 0.76}
	var q32 Q[float32]
	var q64 Q[float64]
	q32.RotateEuler(&angles32)
	q64.RotateEuler(&angles64)
	var v32 V3[float32]
	var v64 V3[float64]
	b.Run("float32", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v32 = q32.Euler()
		}
	})
	b.Run("float64", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v64 = q64.Euler()
		}
	})
	b.Log(v32, v64)
}
