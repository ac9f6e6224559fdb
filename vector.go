// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D rotations.
package linear

// V3 is a 3-component vector of T.
type V3[T Float] [3]T

// Add sets v to contain l + r.
func (v *V3[T]) Add(l, r *V3[T]) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V3[T]) Sub(l, r *V3[T]) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V3[T]) Scale(s T, w *V3[T]) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V3[T]) Dot(w *V3[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V3[T]) Len() T { return sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized.
// w must not be the zero vector.
func (v *V3[T]) Norm(w *V3[T]) { v.Scale(1/w.Len(), w) }

// Cross sets v to contain l × r.
func (v *V3[T]) Cross(l, r *V3[T]) {
	*v = V3[T]{
		l[1]*r[2] - l[2]*r[1],
		l[2]*r[0] - l[0]*r[2],
		l[0]*r[1] - l[1]*r[0],
	}
}

// Mul sets v to contain m ⋅ w.
func (v *V3[T]) Mul(m *M3[T], w *V3[T]) {
	var u V3[T]
	for i := range u {
		for j := range u {
			u[j] += m[i][j] * w[i]
		}
	}
	*v = u
}

// V4 is a 4-component vector of T.
type V4[T Float] [4]T

// Add sets v to contain l + r.
func (v *V4[T]) Add(l, r *V4[T]) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V4[T]) Sub(l, r *V4[T]) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V4[T]) Scale(s T, w *V4[T]) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V4[T]) Dot(w *V4[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V4[T]) Len() T { return sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized.
// w must not be the zero vector.
func (v *V4[T]) Norm(w *V4[T]) { v.Scale(1/w.Len(), w) }

// Mul sets v to contain m ⋅ w.
func (v *V4[T]) Mul(m *M4[T], w *V4[T]) {
	var u V4[T]
	for i := range u {
		for j := range u {
			u[j] += m[i][j] * w[i]
		}
	}
	*v = u
}
