// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spg

import (
	"testing"

	"github.com/go-crystal/spg/cell"
	"github.com/go-crystal/spg/mat33"
)

func cubicLattice(a float64) mat33.Mat {
	return mat33.Mat{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

// S1: primitive cubic with one atom.
func TestScenarioS1PrimitiveCubic(t *testing.T) {
	c, err := cell.New(cubicLattice(4.0), []mat33.Frac{{0, 0, 0}}, []int{1})
	if err != nil {
		t.Fatal(err)
	}
	symbol, number := GetInternational(c, 1e-5)
	if symbol != "Pm-3m" || number != 221 {
		t.Errorf("GetInternational = (%q, %d), want (Pm-3m, 221)", symbol, number)
	}
	if got := GetMultiplicity(c, 1e-5); got != 48 {
		t.Errorf("GetMultiplicity = %d, want 48", got)
	}
}

// S2: body-centered cubic, one species.
func TestScenarioS2BCC(t *testing.T) {
	c, err := cell.New(cubicLattice(3.0), []mat33.Frac{{0, 0, 0}, {0.5, 0.5, 0.5}}, []int{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	symbol, number := GetInternational(c, 1e-5)
	if symbol != "Im-3m" || number != 229 {
		t.Errorf("GetInternational = (%q, %d), want (Im-3m, 229)", symbol, number)
	}
	if got := GetMultiplicity(c, 1e-5); got != 96 {
		t.Errorf("GetMultiplicity = %d, want 96 in conventional setting", got)
	}
	prim, ok := FindPrimitive(c, 1e-5)
	if !ok {
		t.Fatal("FindPrimitive failed")
	}
	if prim.Size() != 1 {
		t.Errorf("primitive size = %d, want 1", prim.Size())
	}
	if got := GetMultiplicity(prim, 1e-5); got != 48 {
		t.Errorf("primitive GetMultiplicity = %d, want 48", got)
	}
}

// S3: NaCl, FCC with two species.
func TestScenarioS3NaCl(t *testing.T) {
	a := 5.64
	na := []mat33.Frac{{0, 0, 0}, {0.5, 0.5, 0}, {0.5, 0, 0.5}, {0, 0.5, 0.5}}
	cl := []mat33.Frac{{0.5, 0.5, 0.5}, {0, 0, 0.5}, {0, 0.5, 0}, {0.5, 0, 0}}
	positions := append(append([]mat33.Frac{}, na...), cl...)
	types := append(append([]int{}, 1, 1, 1, 1), 2, 2, 2, 2)
	c, err := cell.New(cubicLattice(a), positions, types)
	if err != nil {
		t.Fatal(err)
	}
	symbol, number := GetInternational(c, 1e-5)
	if symbol != "Fm-3m" || number != 225 {
		t.Errorf("GetInternational = (%q, %d), want (Fm-3m, 225)", symbol, number)
	}
}

// S4: rutile TiO2, tetragonal with a screw axis.
func TestScenarioS4Rutile(t *testing.T) {
	u := 0.305
	lattice := mat33.Mat{{4.59, 0, 0}, {0, 4.59, 0}, {0, 0, 2.96}}
	positions := []mat33.Frac{
		{0, 0, 0}, {0.5, 0.5, 0.5},
		{u, u, 0}, {-u, -u, 0}, {0.5 + u, 0.5 - u, 0.5}, {0.5 - u, 0.5 + u, 0.5},
	}
	types := []int{1, 1, 2, 2, 2, 2}
	c, err := cell.New(lattice, positions, types)
	if err != nil {
		t.Fatal(err)
	}
	symbol, number := GetInternational(c, 1e-4)
	if number != 136 {
		t.Errorf("GetInternational number = %d, want 136 (%q)", number, symbol)
	}
}

// S5: irreducible mesh of primitive cubic.
func TestScenarioS5IrreducibleMesh(t *testing.T) {
	c, err := cell.New(cubicLattice(4.0), []mat33.Frac{{0, 0, 0}}, []int{1})
	if err != nil {
		t.Fatal(err)
	}
	_, mapping, count := GetIrreducibleReciprocalMesh([3]int{4, 4, 4}, [3]int{0, 0, 0}, c, 1e-5, true)
	if count != 8 {
		t.Errorf("count = %d, want 8", count)
	}
	for i, m := range mapping {
		if mapping[m] != m {
			t.Errorf("mapping not idempotent at %d: mapping[mapping[%d]]=%d", i, i, mapping[m])
		}
	}
}

// S6: triplets on a (2,2,2) mesh, cubic.
func TestScenarioS6Triplets(t *testing.T) {
	c, err := cell.New(cubicLattice(4.0), []mat33.Frac{{0, 0, 0}}, []int{1})
	if err != nil {
		t.Fatal(err)
	}
	ops := GetSymmetry(c, 1e-5)
	rotations := make([]mat33.IMat, len(ops))
	for i, op := range ops {
		rotations[i] = op.R
	}
	_, weights, _, count := GetTripletsReciprocalMesh([3]int{2, 2, 2}, c.Lattice, rotations, 1e-5, true, 64)
	if count > 4 {
		t.Errorf("count = %d, want <= 4", count)
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total != 8 {
		t.Errorf("total weight = %d, want 8", total)
	}
}

func TestGetBravaisAndSmallestLattice(t *testing.T) {
	l := cubicLattice(4.0)
	if got := GetBravaisLattice(l, 1e-5); got != l {
		t.Errorf("GetBravaisLattice = %v, want %v", got, l)
	}
	if got := GetSmallestLattice(l, 1e-5); got != l {
		t.Errorf("GetSmallestLattice = %v, want %v", got, l)
	}
}

func TestGetPointGroupCubic(t *testing.T) {
	c, _ := cell.New(cubicLattice(4.0), []mat33.Frac{{0, 0, 0}}, []int{1})
	pg, ok := GetPointGroup(c, 1e-5)
	if !ok || pg.International != "m-3m" {
		t.Errorf("GetPointGroup = %+v, want m-3m", pg)
	}
}
