// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"testing"

	"github.com/go-crystal/spg/mat33"
)

func cubicLattice(a float64) mat33.Mat {
	return mat33.Mat{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

func TestNewRejectsMismatch(t *testing.T) {
	_, err := New(cubicLattice(1), []mat33.Frac{{0, 0, 0}}, nil)
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestNewReducesModulo1(t *testing.T) {
	c, err := New(cubicLattice(4), []mat33.Frac{{1.25, -0.5, 2.0}}, []int{1})
	if err != nil {
		t.Fatal(err)
	}
	want := mat33.Frac{0.25, 0.5, 0.0}
	if c.Positions[0] != want {
		t.Errorf("Positions[0] = %v, want %v", c.Positions[0], want)
	}
}

func TestCloneIndependence(t *testing.T) {
	c, _ := New(cubicLattice(1), []mat33.Frac{{0, 0, 0}}, []int{1})
	d := c.Clone()
	d.Positions[0][0] = 0.5
	if c.Positions[0][0] == 0.5 {
		t.Error("Clone aliases original Positions slice")
	}
}

func TestMinSpeciesCount(t *testing.T) {
	c, _ := New(cubicLattice(1), []mat33.Frac{{0, 0, 0}, {0.5, 0, 0}, {0.25, 0, 0}}, []int{1, 1, 2})
	species, count := c.MinSpeciesCount()
	if species != 2 || count != 1 {
		t.Errorf("MinSpeciesCount = (%d,%d), want (2,1)", species, count)
	}
}

func TestVolume(t *testing.T) {
	c, _ := New(cubicLattice(2), nil, nil)
	if got, want := c.Volume(), 8.0; got != want {
		t.Errorf("Volume = %v, want %v", got, want)
	}
}
