// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat33 implements the fixed-size 3x3/3-vector linear algebra the
// symmetry pipeline is built on: real and integer matrix products,
// determinants, inverses, and tolerance-aware scalar comparison. Every type
// here is a plain value with no internal allocation, in the spirit of
// gonum.org/v1/gonum/spatial/r3's Vec and Mat.
package mat33

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a Cartesian 3-vector. It is the gonum spatial/r3 vector type,
// reused directly rather than reimplemented.
type Vec = r3.Vec

// Frac is a fractional-coordinate 3-vector. Its components are meaningful
// only modulo 1 and are kept as a distinct type from Vec so that a
// Cartesian vector can never be passed where a fractional one is expected
// by accident.
type Frac [3]float64

// Mat is a real 3x3 matrix stored row-major: Mat[i][j] is row i, column j.
type Mat [3][3]float64

// IMat is an integer 3x3 matrix, used for rotation matrices expressed in a
// lattice basis (spec: rotations are always exactly integer in that basis).
type IMat [3][3]int

// Identity returns the 3x3 identity matrix.
func Identity() Mat {
	return Mat{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// IIdentity returns the integer 3x3 identity matrix.
func IIdentity() IMat {
	return IMat{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Cols returns the three column vectors of m, i.e. the lattice basis
// vectors when m is a lattice matrix in the column-vectors convention of
// spec.md §6.
func (m Mat) Cols() (a, b, c Vec) {
	return Vec{X: m[0][0], Y: m[1][0], Z: m[2][0]},
		Vec{X: m[0][1], Y: m[1][1], Z: m[2][1]},
		Vec{X: m[0][2], Y: m[1][2], Z: m[2][2]}
}

// FromCols builds a matrix from three column vectors.
func FromCols(a, b, c Vec) Mat {
	return Mat{
		{a.X, b.X, c.X},
		{a.Y, b.Y, c.Y},
		{a.Z, b.Z, c.Z},
	}
}

// MulMat returns the matrix product a*b.
func (a Mat) MulMat(b Mat) Mat {
	var out Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += a[i][k] * b[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// MulVec returns the matrix-vector product a*v.
func (a Mat) MulVec(v Vec) Vec {
	return Vec{
		X: a[0][0]*v.X + a[0][1]*v.Y + a[0][2]*v.Z,
		Y: a[1][0]*v.X + a[1][1]*v.Y + a[1][2]*v.Z,
		Z: a[2][0]*v.X + a[2][1]*v.Y + a[2][2]*v.Z,
	}
}

// MulFrac returns the matrix-vector product a*v for a fractional vector v.
func (a Mat) MulFrac(v Frac) Frac {
	return Frac{
		a[0][0]*v[0] + a[0][1]*v[1] + a[0][2]*v[2],
		a[1][0]*v[0] + a[1][1]*v[1] + a[1][2]*v[2],
		a[2][0]*v[0] + a[2][1]*v[1] + a[2][2]*v[2],
	}
}

// Transpose returns the transpose of a.
func (a Mat) Transpose() Mat {
	var out Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = a[i][j]
		}
	}
	return out
}

// Det returns the determinant of a, using the same cofactor expansion as
// gonum.org/v1/gonum/spatial/r3.Mat.Det.
func (a Mat) Det() float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// dense converts a to a *mat.Dense for the general linear-algebra routines
// (inversion) that are not worth hand-rolling for the 3x3 case.
func (a Mat) dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	})
}

func fromDense(d mat.Matrix) Mat {
	var out Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = d.At(i, j)
		}
	}
	return out
}

// Inv returns the inverse of a and true, or the zero matrix and false if
// |det(a)| < eps.
func (a Mat) Inv(eps float64) (Mat, bool) {
	if math.Abs(a.Det()) < eps {
		return Mat{}, false
	}
	var inv mat.Dense
	if err := inv.Inverse(a.dense()); err != nil {
		return Mat{}, false
	}
	return fromDense(&inv), true
}

// Scale returns a scaled by f.
func (a Mat) Scale(f float64) Mat {
	var out Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][j] * f
		}
	}
	return out
}

// MulMat returns the integer matrix product a*b.
func (a IMat) MulMat(b IMat) IMat {
	var out IMat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s int
			for k := 0; k < 3; k++ {
				s += a[i][k] * b[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// MulFrac returns the fractional vector a*v, treating a as acting on
// fractional coordinates (exact, since a is integer).
func (a IMat) MulFrac(v Frac) Frac {
	return Frac{
		float64(a[0][0])*v[0] + float64(a[0][1])*v[1] + float64(a[0][2])*v[2],
		float64(a[1][0])*v[0] + float64(a[1][1])*v[1] + float64(a[1][2])*v[2],
		float64(a[2][0])*v[0] + float64(a[2][1])*v[1] + float64(a[2][2])*v[2],
	}
}

// Det returns the determinant of a.
func (a IMat) Det() int {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Transpose returns the transpose of a.
func (a IMat) Transpose() IMat {
	var out IMat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = a[i][j]
		}
	}
	return out
}

// Equal reports whether a and b are identical element-wise.
func (a IMat) Equal(b IMat) bool {
	return a == b
}

// ToMat returns a as a real matrix.
func (a IMat) ToMat() Mat {
	var out Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = float64(a[i][j])
		}
	}
	return out
}

// NearestInt rounds x to the nearest integer, ties away from zero, via
// gonum.org/v1/gonum/floats/scalar.Round with zero decimal digits.
func NearestInt(x float64) int {
	return int(scalar.Round(x, 0))
}

// AbsEqual reports whether a and b are within eps of each other in absolute
// value, via gonum.org/v1/gonum/floats/scalar.EqualWithinAbs.
func AbsEqual(a, b, eps float64) bool {
	return scalar.EqualWithinAbs(a, b, eps)
}

// FracEqual reports whether a and b are equal modulo 1 within eps: values
// differing by an integer number of lattice translations are treated as
// equal, reflecting the periodicity of fractional coordinates.
func FracEqual(a, b, eps float64) bool {
	d := a - b
	d -= math.Round(d)
	return math.Abs(d) < eps
}

// FracVecEqual reports whether every component of a and b is FracEqual
// within eps.
func FracVecEqual(a, b Frac, eps float64) bool {
	return FracEqual(a[0], b[0], eps) &&
		FracEqual(a[1], b[1], eps) &&
		FracEqual(a[2], b[2], eps)
}

// Mod1 reduces every component of v into [0,1).
func Mod1(v Frac) Frac {
	var out Frac
	for i := 0; i < 3; i++ {
		x := math.Mod(v[i], 1)
		if x < 0 {
			x += 1
		}
		out[i] = x
	}
	return out
}

// Sub returns a-b component-wise.
func (a Frac) Sub(b Frac) Frac {
	return Frac{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Add returns a+b component-wise.
func (a Frac) Add(b Frac) Frac {
	return Frac{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// VecNorm returns the Cartesian length of v.
func VecNorm(v Vec) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
