// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spacegroup

import (
	"testing"

	"github.com/go-crystal/spg/bravais"
	"github.com/go-crystal/spg/cell"
	"github.com/go-crystal/spg/mat33"
	"github.com/go-crystal/spg/symmetry"
)

func cubicLattice(a float64) mat33.Mat {
	return mat33.Mat{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

func classifyCell(t *testing.T, c cell.Cell, eps float64) (SpaceGroup, bool) {
	t.Helper()
	br := bravais.Reduce(c.Lattice, eps)
	ops := symmetry.FindSymmetry(c, br, eps)
	return Classify(ops, br, eps)
}

func TestClassifySimpleCubic(t *testing.T) {
	c, _ := cell.New(cubicLattice(4), []mat33.Frac{{0, 0, 0}}, []int{1})
	sg, ok := classifyCell(t, c, 1e-5)
	if !ok {
		t.Fatal("Classify failed for simple cubic")
	}
	if sg.Number != 221 || sg.International() != "Pm-3m" {
		t.Errorf("Classify = %+v, want 221 Pm-3m", sg)
	}
}

func TestClassifyBCC(t *testing.T) {
	c, _ := cell.New(cubicLattice(3), []mat33.Frac{{0, 0, 0}, {0.5, 0.5, 0.5}}, []int{1, 1})
	sg, ok := classifyCell(t, c, 1e-5)
	if !ok {
		t.Fatal("Classify failed for BCC")
	}
	if sg.Number != 229 || sg.International() != "Im-3m" {
		t.Errorf("Classify = %+v, want 229 Im-3m", sg)
	}
}

func TestClassifyFCC(t *testing.T) {
	positions := []mat33.Frac{
		{0, 0, 0}, {0.5, 0.5, 0}, {0.5, 0, 0.5}, {0, 0.5, 0.5},
	}
	c, _ := cell.New(cubicLattice(4), positions, []int{1, 1, 1, 1})
	sg, ok := classifyCell(t, c, 1e-5)
	if !ok {
		t.Fatal("Classify failed for FCC")
	}
	if sg.Number != 225 || sg.International() != "Fm-3m" {
		t.Errorf("Classify = %+v, want 225 Fm-3m", sg)
	}
}

func TestClassifyNoMatchReturnsFalse(t *testing.T) {
	if _, ok := Classify(nil, bravais.Bravais{}, 1e-5); ok {
		t.Error("Classify(nil, ...) should fail")
	}
}
