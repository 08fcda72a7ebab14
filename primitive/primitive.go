// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package primitive extracts the minimum-volume primitive cell underlying
// a Cell's pure translations, averaging overlapping atoms into one
// representative per translation orbit. It is grounded directly on
// _examples/original_source/spglib-0.7.1/src/primitive.c.
package primitive

import (
	"math"

	"github.com/go-crystal/spg/bravais"
	"github.com/go-crystal/spg/cell"
	"github.com/go-crystal/spg/mat33"
	"github.com/go-crystal/spg/symmetry"
	"gonum.org/v1/gonum/stat/combin"
)

// Extract finds the minimum-volume primitive cell of c, per spec §4.5.
// It returns ok=false (with an empty Cell) if c has no nontrivial pure
// translations, or if no valid axis triple can be found — the
// PrimitiveNotFound failure of spec §7, treated as a hard error per the
// "Bug:" diagnostics discussion in spec §9 rather than silently continuing
// as the original C implementation's trim_cell does.
func Extract(c cell.Cell, eps float64) (cell.Cell, bool) {
	pure := symmetry.PureTranslations(c, eps)
	multi := len(pure)
	if multi <= 1 {
		return cell.Empty(c.Lattice), false
	}

	candidates := make([]mat33.Frac, 0, multi+2)
	candidates = append(candidates, pure[1:]...)
	candidates = append(candidates,
		mat33.Frac{1, 0, 0}, mat33.Frac{0, 1, 0}, mat33.Frac{0, 0, 1})

	triple, ok := leastAxes(candidates, c.Lattice, multi, eps)
	if !ok {
		return cell.Empty(c.Lattice), false
	}

	relative := mat33.FromCols(
		mat33.Vec{X: triple[0][0], Y: triple[0][1], Z: triple[0][2]},
		mat33.Vec{X: triple[1][0], Y: triple[1][1], Z: triple[1][2]},
		mat33.Vec{X: triple[2][0], Y: triple[2][1], Z: triple[2][2]},
	)
	primLatticeRaw := c.Lattice.MulMat(relative)
	primLattice := bravais.SmallestLatticeVector(primLatticeRaw, eps)

	primSize := c.Size() / multi
	prim := cell.Cell{Lattice: primLattice}
	if !trimCell(&prim, c, primSize, multi, eps) {
		return cell.Empty(c.Lattice), false
	}
	return prim, true
}

// leastAxes enumerates all triples from candidates (spec §4.5 step 3:
// "enumerate all triples from V ... accept the first triple whose volume
// equals det(L)/m within ε. Ordering: lexicographic on V's index"), using
// gonum.org/v1/gonum/stat/combin.Combinations (which enumerates index
// triples in lexicographic order) in place of the original's triple-nested
// for loop over index triples.
func leastAxes(candidates []mat33.Frac, lattice mat33.Mat, multi int, eps float64) ([3]mat33.Frac, bool) {
	n := len(candidates)
	targetVolume := math.Abs(lattice.Det()) / float64(multi)
	for _, idx := range combin.Combinations(n, 3) {
		va := lattice.MulFrac(candidates[idx[0]])
		vb := lattice.MulFrac(candidates[idx[1]])
		vc := lattice.MulFrac(candidates[idx[2]])
		tmp := mat33.FromCols(
			mat33.Vec{X: va[0], Y: va[1], Z: va[2]},
			mat33.Vec{X: vb[0], Y: vb[1], Z: vb[2]},
			mat33.Vec{X: vc[0], Y: vc[1], Z: vc[2]},
		)
		vol := math.Abs(tmp.Det())
		if vol > eps && mat33.AbsEqual(vol, targetVolume, eps*math.Max(1, targetVolume)) {
			return [3]mat33.Frac{candidates[idx[0]], candidates[idx[1]], candidates[idx[2]]}, true
		}
	}
	return [3]mat33.Frac{}, false
}

// trimCell fits the atoms of c into the new primitive lattice of prim,
// averaging each orbit of overlapping atoms into one representative, per
// spec §4.5 step 5 and _examples/original_source/spglib-0.7.1/src/primitive.c's
// trim_cell/is_overlap. It returns false if any overlap class does not
// have exactly `ratio` members or the final atom count does not match
// primSize — the original's two "Bug:" diagnostics, both hard errors here.
func trimCell(prim *cell.Cell, c cell.Cell, primSize, ratio int, eps float64) bool {
	primInv, ok := prim.Lattice.Inv(eps)
	if !ok {
		return false
	}
	axisInv := primInv.MulMat(c.Lattice)

	positions := make([]mat33.Frac, c.Size())
	for i, p := range c.Positions {
		np := axisInv.MulFrac(p)
		for k := 0; k < 3; k++ {
			np[k] -= float64(mat33.NearestInt(np[k]))
		}
		positions[i] = np
	}

	overlapTol := eps * float64(ratio)
	table := make([][]int, c.Size())
	for i := range positions {
		for j := range positions {
			if !c.SameSpecies(i, j) {
				continue
			}
			if isOverlap(positions[i], positions[j], overlapTol) {
				table[i] = append(table[i], j)
			}
		}
		if len(table[i]) != ratio {
			return false
		}
	}

	checked := make([]bool, c.Size())
	var outPos []mat33.Frac
	var outTypes []int
	for i := range positions {
		if checked[i] {
			continue
		}
		sum := mat33.Frac{0, 0, 0}
		for _, j := range table[i] {
			p := positions[j]
			for k := 0; k < 3; k++ {
				d := p[k] - positions[table[i][0]][k]
				if math.Abs(d) > 0.5 {
					if p[k] < 0 {
						p[k] += 1
					} else {
						p[k] -= 1
					}
				}
				sum[k] += p[k]
			}
			checked[j] = true
		}
		for k := 0; k < 3; k++ {
			sum[k] /= float64(ratio)
			sum[k] -= float64(mat33.NearestInt(sum[k] - eps))
		}
		outPos = append(outPos, sum)
		outTypes = append(outTypes, c.Types[i])
	}

	if len(outPos) != primSize {
		return false
	}
	prim.Positions = outPos
	prim.Types = outTypes
	return true
}

func isOverlap(a, b mat33.Frac, eps float64) bool {
	for k := 0; k < 3; k++ {
		d := math.Abs(a[k] - b[k])
		if !(d < eps || math.Abs(d-1) < eps) {
			return false
		}
	}
	return true
}
