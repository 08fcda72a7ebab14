// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

import (
	"math"
	"testing"

	"github.com/go-crystal/spg/cell"
	"github.com/go-crystal/spg/mat33"
)

func cubicLattice(a float64) mat33.Mat {
	return mat33.Mat{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

func TestExtractNoTranslationsFails(t *testing.T) {
	c, _ := cell.New(cubicLattice(4), []mat33.Frac{{0, 0, 0}}, []int{1})
	_, ok := Extract(c, 1e-5)
	if ok {
		t.Error("Extract should fail for a cell with no nontrivial pure translations")
	}
}

func TestExtractBCC(t *testing.T) {
	c, _ := cell.New(cubicLattice(3), []mat33.Frac{{0, 0, 0}, {0.5, 0.5, 0.5}}, []int{1, 1})
	prim, ok := Extract(c, 1e-5)
	if !ok {
		t.Fatal("Extract failed for BCC cell")
	}
	if prim.Size() != 1 {
		t.Errorf("primitive size = %d, want 1", prim.Size())
	}
	wantVolume := c.Volume() / 2
	if math.Abs(prim.Volume()-wantVolume) > 1e-6 {
		t.Errorf("primitive volume = %v, want %v", prim.Volume(), wantVolume)
	}
}

func TestExtractIdempotent(t *testing.T) {
	c, _ := cell.New(cubicLattice(3), []mat33.Frac{{0, 0, 0}, {0.5, 0.5, 0.5}}, []int{1, 1})
	prim1, ok := Extract(c, 1e-5)
	if !ok {
		t.Fatal("first Extract failed")
	}
	_, ok2 := Extract(prim1, 1e-5)
	if ok2 {
		t.Error("Extract on an already-primitive cell should report no further reduction")
	}
}
