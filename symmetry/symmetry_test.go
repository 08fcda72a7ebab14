// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symmetry

import (
	"testing"

	"github.com/go-crystal/spg/bravais"
	"github.com/go-crystal/spg/cell"
	"github.com/go-crystal/spg/mat33"
)

func cubicLattice(a float64) mat33.Mat {
	return mat33.Mat{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

func TestSignedPermutationsCount(t *testing.T) {
	if got := len(signedPermutations()); got != 48 {
		t.Errorf("len(signedPermutations()) = %d, want 48", got)
	}
}

func TestCandidateRotationsCubicCount(t *testing.T) {
	l := cubicLattice(4)
	br := bravais.Reduce(l, 1e-5)
	rs := CandidateRotations(br, l, 1e-5)
	if got := len(rs); got != 48 {
		t.Errorf("len(CandidateRotations) = %d, want 48 for simple cubic", got)
	}
}

func TestPureTranslationsSingleAtom(t *testing.T) {
	c, _ := cell.New(cubicLattice(4), []mat33.Frac{{0, 0, 0}}, []int{1})
	pt := PureTranslations(c, 1e-5)
	if len(pt) != 1 {
		t.Fatalf("len(PureTranslations) = %d, want 1", len(pt))
	}
	if pt[0] != (mat33.Frac{0, 0, 0}) {
		t.Errorf("PureTranslations = %v, want identity", pt)
	}
}

func TestPureTranslationsBCC(t *testing.T) {
	c, _ := cell.New(cubicLattice(3), []mat33.Frac{{0, 0, 0}, {0.5, 0.5, 0.5}}, []int{1, 1})
	pt := PureTranslations(c, 1e-5)
	if len(pt) != 2 {
		t.Fatalf("len(PureTranslations) = %d, want 2", len(pt))
	}
}

func TestFindSymmetryContainsIdentity(t *testing.T) {
	c, _ := cell.New(cubicLattice(4), []mat33.Frac{{0, 0, 0}}, []int{1})
	br := bravais.Reduce(c.Lattice, 1e-5)
	ops := FindSymmetry(c, br, 1e-5)
	foundIdentity := false
	for _, op := range ops {
		if op.R == mat33.IIdentity() && mat33.FracVecEqual(op.T, mat33.Frac{0, 0, 0}, 1e-5) {
			foundIdentity = true
		}
	}
	if !foundIdentity {
		t.Error("FindSymmetry result does not contain identity")
	}
}

func TestFindSymmetryPrimitiveCubicMultiplicity(t *testing.T) {
	c, _ := cell.New(cubicLattice(4), []mat33.Frac{{0, 0, 0}}, []int{1})
	br := bravais.Reduce(c.Lattice, 1e-5)
	ops := FindSymmetry(c, br, 1e-5)
	if len(ops) != 48 {
		t.Errorf("len(FindSymmetry) = %d, want 48 for Pm-3m", len(ops))
	}
}

func TestFindSymmetryBCCMultiplicity(t *testing.T) {
	c, _ := cell.New(cubicLattice(3), []mat33.Frac{{0, 0, 0}, {0.5, 0.5, 0.5}}, []int{1, 1})
	br := bravais.Reduce(c.Lattice, 1e-5)
	ops := FindSymmetry(c, br, 1e-5)
	if len(ops) != 96 {
		t.Errorf("len(FindSymmetry) = %d, want 96 for Im-3m conventional cell", len(ops))
	}
}

func TestOperationsClosedUnderComposition(t *testing.T) {
	c, _ := cell.New(cubicLattice(4), []mat33.Frac{{0, 0, 0}}, []int{1})
	br := bravais.Reduce(c.Lattice, 1e-5)
	ops := FindSymmetry(c, br, 1e-5)
	for _, a := range ops[:5] {
		for _, b := range ops[:5] {
			r3 := a.R.MulMat(b.R)
			t3 := mat33.Mod1(a.R.MulFrac(b.T).Add(a.T))
			found := false
			for _, cOp := range ops {
				if cOp.R == r3 && mat33.FracVecEqual(cOp.T, t3, 1e-5) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("composition of ops not found in symmetry set")
			}
		}
	}
}
