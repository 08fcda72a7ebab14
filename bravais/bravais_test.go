// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bravais

import (
	"math"
	"testing"

	"github.com/go-crystal/spg/mat33"
)

func TestReduceCubic(t *testing.T) {
	l := mat33.Mat{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}}
	b := Reduce(l, 1e-5)
	if b.System != Cubic {
		t.Errorf("System = %v, want Cubic", b.System)
	}
	if b.Centering != P {
		t.Errorf("Centering = %c, want P", b.Centering)
	}
}

func TestReduceTetragonal(t *testing.T) {
	l := mat33.Mat{{4.59, 0, 0}, {0, 4.59, 0}, {0, 0, 2.96}}
	b := Reduce(l, 1e-4)
	if b.System != Tetragonal {
		t.Errorf("System = %v, want Tetragonal", b.System)
	}
}

func TestReduceOrthorhombic(t *testing.T) {
	l := mat33.Mat{{3, 0, 0}, {0, 4, 0}, {0, 0, 5}}
	b := Reduce(l, 1e-5)
	if b.System != Orthorhombic {
		t.Errorf("System = %v, want Orthorhombic", b.System)
	}
}

func TestSmallestLatticeVectorShortens(t *testing.T) {
	// A skewed basis representing the same lattice as the unit cubic
	// lattice: reduction should recover unit-length orthogonal vectors.
	l := mat33.Mat{{1, 1, 0}, {0, 1, 0}, {0, 0, 1}}
	reduced := SmallestLatticeVector(l, 1e-6)
	va, vb, vc := reduced.Cols()
	for _, v := range []mat33.Vec{va, vb, vc} {
		if math.Abs(mat33.VecNorm(v)-1) > 1e-6 {
			t.Errorf("reduced vector %v has length %v, want 1", v, mat33.VecNorm(v))
		}
	}
}

func TestReduceBCCPrimitive(t *testing.T) {
	a := 3.0
	v0 := mat33.Vec{X: -a / 2, Y: a / 2, Z: a / 2}
	v1 := mat33.Vec{X: a / 2, Y: -a / 2, Z: a / 2}
	v2 := mat33.Vec{X: a / 2, Y: a / 2, Z: -a / 2}
	l := mat33.FromCols(v0, v1, v2)
	b := Reduce(l, 1e-5)
	if b.Centering != I {
		t.Errorf("Centering = %c, want I", b.Centering)
	}
	if b.System != Cubic {
		t.Errorf("System = %v, want Cubic", b.System)
	}
}

func TestCenteringFromTranslations(t *testing.T) {
	pure := []mat33.Frac{{0, 0, 0}, {0.5, 0.5, 0.5}}
	if got := CenteringFromTranslations(pure, 1e-5); got != I {
		t.Errorf("CenteringFromTranslations = %c, want I", got)
	}
	pure = []mat33.Frac{
		{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0},
	}
	if got := CenteringFromTranslations(pure, 1e-5); got != F {
		t.Errorf("CenteringFromTranslations = %c, want F", got)
	}
	pure = []mat33.Frac{{0, 0, 0}}
	if got := CenteringFromTranslations(pure, 1e-5); got != P {
		t.Errorf("CenteringFromTranslations = %c, want P", got)
	}
}
