// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cell implements the unit-cell value type the symmetry pipeline
// operates on: a lattice, a set of fractional atomic positions, and their
// species labels.
package cell

import (
	"fmt"

	"github.com/go-crystal/spg/mat33"
)

// Cell is an ordered triple (Lattice, Positions, Types): the lattice basis
// in Cartesian coordinates, one fractional position per atom, and one
// integer species label per atom. len(Positions) == len(Types) always.
type Cell struct {
	Lattice   mat33.Mat
	Positions []mat33.Frac
	Types     []int
}

// New builds a Cell from a lattice, a slice of fractional positions and a
// parallel slice of species labels, reducing every position modulo 1. It
// returns an error if the two slices differ in length, mirroring the
// shape-mismatch panics of gonum.org/v1/gonum/mat for caller-controlled
// invariants (unlike domain-numeric failures, which are never errors).
func New(lattice mat33.Mat, positions []mat33.Frac, types []int) (Cell, error) {
	if len(positions) != len(types) {
		return Cell{}, fmt.Errorf("cell: len(positions)=%d != len(types)=%d", len(positions), len(types))
	}
	pos := make([]mat33.Frac, len(positions))
	for i, p := range positions {
		pos[i] = mat33.Mod1(p)
	}
	typ := make([]int, len(types))
	copy(typ, types)
	return Cell{Lattice: lattice, Positions: pos, Types: typ}, nil
}

// Empty returns the zero-atom cell with the given lattice, used as the
// explicit failure value of operations that report failure via an
// empty-cell return (spec: PrimitiveNotFound).
func Empty(lattice mat33.Mat) Cell {
	return Cell{Lattice: lattice}
}

// Size returns the number of atoms in the cell.
func (c Cell) Size() int {
	return len(c.Positions)
}

// Clone returns a deep copy of c: a fresh owned value that does not alias
// c's backing arrays, as required of every pipeline-stage output (spec
// §3's "Lifecycles").
func (c Cell) Clone() Cell {
	pos := make([]mat33.Frac, len(c.Positions))
	copy(pos, c.Positions)
	typ := make([]int, len(c.Types))
	copy(typ, c.Types)
	return Cell{Lattice: c.Lattice, Positions: pos, Types: typ}
}

// Volume returns the unsigned cell volume, det(Lattice).
func (c Cell) Volume() float64 {
	d := c.Lattice.Det()
	if d < 0 {
		return -d
	}
	return d
}

// SameSpecies reports whether atoms i and j carry the same species label.
func (c Cell) SameSpecies(i, j int) bool {
	return c.Types[i] == c.Types[j]
}

// CountBySpecies returns, for each distinct species label present, the
// number of atoms carrying it. Used by the symmetry finder to pick the
// minimum-count species to seed the pure-translation search (spec §4.4
// step 2).
func (c Cell) CountBySpecies() map[int]int {
	counts := make(map[int]int)
	for _, t := range c.Types {
		counts[t]++
	}
	return counts
}

// MinSpeciesCount returns the species label with the fewest atoms (ties
// broken by first occurrence in Types) and its count. It panics if the
// cell has no atoms, since the pure-translation search is never called on
// an empty cell.
func (c Cell) MinSpeciesCount() (species, count int) {
	counts := c.CountBySpecies()
	best := -1
	bestCount := 0
	for _, t := range c.Types {
		if best == -1 || counts[t] < bestCount {
			best = t
			bestCount = counts[t]
		}
	}
	if best == -1 {
		panic("cell: MinSpeciesCount on empty cell")
	}
	return best, bestCount
}
