// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// M3 is a column-major 3x3 matrix of T.
type M3[T Float] [3]V3[T]

// I makes m an identity matrix.
func (m *M3[T]) I() { *m = M3[T]{{1}, {0, 1}, {0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M3[T]) Mul(l, r *M3[T]) {
	var p M3[T]
	for i := range p {
		for j := range p {
			for k := range p {
				p[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = p
}

// Transpose sets m to contain the transpose of n.
func (m *M3[T]) Transpose(n *M3[T]) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
}

// Invert sets m to contain the inverse of n.
func (m *M3[T]) Invert(n *M3[T]) {
	s0 := n[1][1]*n[2][2] - n[1][2]*n[2][1]
	s1 := n[1][0]*n[2][2] - n[1][2]*n[2][0]
	s2 := n[1][0]*n[2][1] - n[1][1]*n[2][0]
	idet := 1 / (n[0][0]*s0 - n[0][1]*s1 + n[0][2]*s2)
	var p M3[T]
	p[0][0] = s0 * idet
	p[0][1] = -(n[0][1]*n[2][2] - n[0][2]*n[2][1]) * idet
	p[0][2] = (n[0][1]*n[1][2] - n[0][2]*n[1][1]) * idet
	p[1][0] = -s1 * idet
	p[1][1] = (n[0][0]*n[2][2] - n[0][2]*n[2][0]) * idet
	p[1][2] = -(n[0][0]*n[1][2] - n[0][2]*n[1][0]) * idet
	p[2][0] = s2 * idet
	p[2][1] = -(n[0][0]*n[2][1] - n[0][1]*n[2][0]) * idet
	p[2][2] = (n[0][0]*n[1][1] - n[0][1]*n[1][0]) * idet
	*m = p
}

// RotateQ sets m to contain the rotation described by q.
// q must be a unit quaternion. m ⋅ v equals v rotated by q
// for any vector v.
func (m *M3[T]) RotateQ(q *Q[T]) {
	x, y, z := q.V[0]+q.V[0], q.V[1]+q.V[1], q.V[2]+q.V[2]
	xx, yy, zz := q.V[0]*x, q.V[1]*y, q.V[2]*z
	xy, xz, yz := q.V[0]*y, q.V[0]*z, q.V[1]*z
	wx, wy, wz := q.R*x, q.R*y, q.R*z
	*m = M3[T]{
		{1 - (yy + zz), xy + wz, xz - wy},
		{xy - wz, 1 - (xx + zz), yz + wx},
		{xz + wy, yz - wx, 1 - (xx + yy)},
	}
}

// M4 is a column-major 4x4 matrix of T.
type M4[T Float] [4]V4[T]

// I makes m an identity matrix.
func (m *M4[T]) I() { *m = M4[T]{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M4[T]) Mul(l, r *M4[T]) {
	var p M4[T]
	for i := range p {
		for j := range p {
			for k := range p {
				p[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = p
}

// Transpose sets m to contain the transpose of n.
func (m *M4[T]) Transpose(n *M4[T]) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
}

// Invert sets m to contain the inverse of n.
func (m *M4[T]) Invert(n *M4[T]) {
	s0 := n[0][0]*n[1][1] - n[0][1]*n[1][0]
	s1 := n[0][0]*n[1][2] - n[0][2]*n[1][0]
	s2 := n[0][0]*n[1][3] - n[0][3]*n[1][0]
	s3 := n[0][1]*n[1][2] - n[0][2]*n[1][1]
	s4 := n[0][1]*n[1][3] - n[0][3]*n[1][1]
	s5 := n[0][2]*n[1][3] - n[0][3]*n[1][2]
	c0 := n[2][0]*n[3][1] - n[2][1]*n[3][0]
	c1 := n[2][0]*n[3][2] - n[2][2]*n[3][0]
	c2 := n[2][0]*n[3][3] - n[2][3]*n[3][0]
	c3 := n[2][1]*n[3][2] - n[2][2]*n[3][1]
	c4 := n[2][1]*n[3][3] - n[2][3]*n[3][1]
	c5 := n[2][2]*n[3][3] - n[2][3]*n[3][2]
	idet := 1 / (s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0)
	var p M4[T]
	p[0][0] = (c5*n[1][1] - c4*n[1][2] + c3*n[1][3]) * idet
	p[0][1] = (-c5*n[0][1] + c4*n[0][2] - c3*n[0][3]) * idet
	p[0][2] = (s5*n[3][1] - s4*n[3][2] + s3*n[3][3]) * idet
	p[0][3] = (-s5*n[2][1] + s4*n[2][2] - s3*n[2][3]) * idet
	p[1][0] = (-c5*n[1][0] + c2*n[1][2] - c1*n[1][3]) * idet
	p[1][1] = (c5*n[0][0] - c2*n[0][2] + c1*n[0][3]) * idet
	p[1][2] = (-s5*n[3][0] + s2*n[3][2] - s1*n[3][3]) * idet
	p[1][3] = (s5*n[2][0] - s2*n[2][2] + s1*n[2][3]) * idet
	p[2][0] = (c4*n[1][0] - c2*n[1][1] + c0*n[1][3]) * idet
	p[2][1] = (-c4*n[0][0] + c2*n[0][1] - c0*n[0][3]) * idet
	p[2][2] = (s4*n[3][0] - s2*n[3][1] + s0*n[3][3]) * idet
	p[2][3] = (-s4*n[2][0] + s2*n[2][1] - s0*n[2][3]) * idet
	p[3][0] = (-c3*n[1][0] + c1*n[1][1] - c0*n[1][2]) * idet
	p[3][1] = (c3*n[0][0] - c1*n[0][1] + c0*n[0][2]) * idet
	p[3][2] = (-s3*n[3][0] + s1*n[3][1] - s0*n[3][2]) * idet
	p[3][3] = (s3*n[2][0] - s1*n[2][1] + s0*n[2][2]) * idet
	*m = p
}

// Translate sets m to contain a translation by x, y and z.
func (m *M4[T]) Translate(x, y, z T) {
	m.I()
	m[3] = V4[T]{x, y, z, 1}
}

// Scale sets m to contain a scale by x, y and z.
func (m *M4[T]) Scale(x, y, z T) {
	*m = M4[T]{{x}, {0, y}, {0, 0, z}, {0, 0, 0, 1}}
}

// Rotate sets m to contain a rotation of angle radians
// about axis.
func (m *M4[T]) Rotate(angle T, axis *V3[T]) {
	var q Q[T]
	q.Rotate(angle, axis)
	m.RotateQ(&q)
}

// RotateQ sets m to contain the rotation described by q.
// q must be a unit quaternion.
func (m *M4[T]) RotateQ(q *Q[T]) {
	var r M3[T]
	r.RotateQ(q)
	*m = M4[T]{
		{r[0][0], r[0][1], r[0][2]},
		{r[1][0], r[1][1], r[1][2]},
		{r[2][0], r[2][1], r[2][2]},
		{0, 0, 0, 1},
	}
}
