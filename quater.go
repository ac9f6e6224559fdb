// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Q is a quaternion of T. V is the imaginary part and R the
// real part. It describes a rotation when its norm is 1; the
// type does not enforce unit norm, so callers normalize when
// an operation requires it.
//
// A unit quaternion and its negation describe the same
// rotation. Conversions pick one of the two signs; code that
// compares rotations must account for this or compare the
// angle/axis or matrix forms instead.
type Q[T Float] struct {
	V V3[T]
	R T
}

// I makes q an identity rotation.
func (q *Q[T]) I() { *q = Q[T]{R: 1} }

// Mul sets q to contain l ⋅ r.
// Applying the product rotates by r first, then by l.
func (q *Q[T]) Mul(l, r *Q[T]) {
	var v, w V3[T]
	v.Scale(r.R, &l.V)
	w.Scale(l.R, &r.V)
	v.Add(&v, &w)
	w.Cross(&l.V, &r.V)
	d := l.V.Dot(&r.V)
	q.V.Add(&v, &w)
	q.R = l.R*r.R - d
}

// Dot returns q ⋅ p.
func (q *Q[T]) Dot(p *Q[T]) T { return q.V.Dot(&p.V) + q.R*p.R }

// Len returns the norm of q.
func (q *Q[T]) Len() T { return sqrt(q.Dot(q)) }

// Norm sets q to contain p normalized.
// p must not be the zero quaternion.
func (q *Q[T]) Norm(p *Q[T]) {
	s := 1 / p.Len()
	q.V.Scale(s, &p.V)
	q.R = s * p.R
}

// Invert sets q to contain the inverse of p.
// For unit p this is the conjugate. p ⋅ inverse(p) is the
// identity rotation. p must not be the zero quaternion.
func (q *Q[T]) Invert(p *Q[T]) {
	d := p.Dot(p)
	q.V.Scale(-1/d, &p.V)
	q.R = p.R / d
}

// Scale sets q to contain p with its rotation angle scaled
// by s. The axis is unchanged: converting the result back to
// angle/axis yields p's axis and s times p's angle.
func (q *Q[T]) Scale(s T, p *Q[T]) {
	var angle T
	var axis V3[T]
	p.AngleAxis(&angle, &axis)
	q.Rotate(s*angle, &axis)
}

// Rotate sets q to contain a rotation of angle radians
// about axis. axis need not be normalized.
func (q *Q[T]) Rotate(angle T, axis *V3[T]) {
	var a V3[T]
	a.Norm(axis)
	q.V.Scale(sin(angle/2), &a)
	q.R = cos(angle / 2)
}

// AngleAxis decomposes q into a rotation of *angle radians
// about the unit vector *axis, with *angle in [0, π].
// q must be a unit quaternion. When the rotation is smaller
// than the Eps threshold the axis is ill-defined and the +X
// axis is returned with a zero angle.
func (q *Q[T]) AngleAxis(angle *T, axis *V3[T]) {
	v, r := q.V, q.R
	if r < 0 {
		// Flip to the representative with a non-negative
		// real part so the angle comes out in [0, π].
		v.Scale(-1, &v)
		r = -r
	}
	if s := v.Len(); s > Eps[T]() {
		axis.Scale(1/s, &v)
		*angle = 2 * acos(clamp1(r))
	} else {
		*axis = V3[T]{1}
		*angle = 0
	}
}

// RotateEuler sets q to contain the rotation described by
// the Euler angles in angles, taken as rotations about the
// fixed X, Y and Z axes applied in that order (the rotation
// matrix Rz ⋅ Ry ⋅ Rx).
func (q *Q[T]) RotateEuler(angles *V3[T]) {
	var x, y, z Q[T]
	x.Rotate(angles[0], &V3[T]{1})
	y.Rotate(angles[1], &V3[T]{0, 1})
	z.Rotate(angles[2], &V3[T]{0, 0, 1})
	q.Mul(&z, &y)
	q.Mul(q, &x)
}

// Euler decomposes q into the Euler angle convention of
// RotateEuler, with the middle angle in [-π/2, π/2].
// q must be a unit quaternion.
//
// Triples whose middle angle lies outside that range come
// back as the equivalent triple with the outer angles offset
// by π and the middle one reflected. At gimbal lock (middle
// angle within the Eps threshold of ±π/2) the X and Z
// rotations are indistinguishable; the X angle is set to 0
// and the full twist assigned to Z.
func (q *Q[T]) Euler() V3[T] {
	var m M3[T]
	m.RotateQ(q)
	c2 := m[0][0]*m[0][0] + m[0][1]*m[0][1]
	if c2 <= Eps[T]() {
		y := T(math.Pi / 2)
		if m[0][2] >= 0 {
			y = -y
		}
		return V3[T]{0, y, -atan2(m[1][0], m[1][1])}
	}
	return V3[T]{
		atan2(m[1][2], m[2][2]),
		atan2(-m[0][2], sqrt(c2)),
		atan2(m[0][1], m[0][0]),
	}
}

// RotateM3 sets q to contain the rotation described by the
// orthonormal matrix m. The result is normalized.
func (q *Q[T]) RotateM3(m *M3[T]) {
	// Shepperd's method: extract from the trace when it is
	// positive, otherwise pivot on the largest diagonal
	// element to keep the divisor away from zero.
	if tr := m[0][0] + m[1][1] + m[2][2]; tr > 0 {
		s := sqrt(tr+1) * 2
		q.V = V3[T]{
			(m[1][2] - m[2][1]) / s,
			(m[2][0] - m[0][2]) / s,
			(m[0][1] - m[1][0]) / s,
		}
		q.R = s / 4
	} else if m[0][0] > m[1][1] && m[0][0] > m[2][2] {
		s := sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		q.V = V3[T]{
			s / 4,
			(m[1][0] + m[0][1]) / s,
			(m[2][0] + m[0][2]) / s,
		}
		q.R = (m[1][2] - m[2][1]) / s
	} else if m[1][1] > m[2][2] {
		s := sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		q.V = V3[T]{
			(m[1][0] + m[0][1]) / s,
			s / 4,
			(m[2][1] + m[1][2]) / s,
		}
		q.R = (m[2][0] - m[0][2]) / s
	} else {
		s := sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		q.V = V3[T]{
			(m[2][0] + m[0][2]) / s,
			(m[2][1] + m[1][2]) / s,
			s / 4,
		}
		q.R = (m[0][1] - m[1][0]) / s
	}
	q.Norm(q)
}

// Slerp sets q to contain the spherical linear interpolation
// between l and r at parameter t in [0, 1]. l and r must be
// unit quaternions. Interpolation follows the shorter arc:
// when l ⋅ r is negative, r is negated first.
func (q *Q[T]) Slerp(l, r *Q[T], t T) {
	p := *r
	d := l.Dot(&p)
	if d < 0 {
		p.V.Scale(-1, &p.V)
		p.R = -p.R
		d = -d
	}
	var a, b T
	norm := false
	if d > 1-Eps[T]() {
		// Nearly identical: sin θ vanishes, so interpolate
		// the components and renormalize instead.
		a, b = 1-t, t
		norm = true
	} else {
		theta := acos(clamp1(d))
		s := sin(theta)
		a = sin((1-t)*theta) / s
		b = sin(t*theta) / s
	}
	var v, w V3[T]
	v.Scale(a, &l.V)
	w.Scale(b, &p.V)
	q.V.Add(&v, &w)
	q.R = a*l.R + b*p.R
	if norm {
		q.Norm(q)
	}
}

// Rotate sets v to contain w rotated by q.
// q must be a unit quaternion. The result matches
// transformation by the matrix form of q.
func (v *V3[T]) Rotate(q *Q[T], w *V3[T]) {
	// q ⋅ w ⋅ conjugate(q) expanded for unit q.
	var c, u, s V3[T]
	c.Cross(&q.V, w)
	rr := q.R + q.R
	c.Scale(rr, &c)
	u.Scale(rr*q.R-1, w)
	s.Scale(2*q.V.Dot(w), &q.V)
	c.Add(&c, &u)
	v.Add(&c, &s)
}
