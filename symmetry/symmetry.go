// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symmetry enumerates rotations compatible with a Bravais lattice,
// finds translations compatible with the atomic basis, and combines the
// two into the full set of symmetry operations of a cell.
package symmetry

import (
	"sort"

	"github.com/go-crystal/spg/bravais"
	"github.com/go-crystal/spg/cell"
	"github.com/go-crystal/spg/mat33"
)

// Operation is a symmetry operation x ↦ R·x + t (mod 1) acting on
// fractional coordinates.
type Operation struct {
	R mat33.IMat
	T mat33.Frac
}

// signedPermutations returns the 48 signed permutation matrices: the full
// octahedral point group Oh expressed as integer matrices, a superset of
// the rotation content of the cubic, tetragonal, orthorhombic, monoclinic
// and triclinic holohedries.
func signedPermutations() []mat33.IMat {
	perms := permutations3()
	signs := [][3]int{
		{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
		{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
	}
	var out []mat33.IMat
	for _, p := range perms {
		for _, s := range signs {
			var m mat33.IMat
			for row := 0; row < 3; row++ {
				m[row][p[row]] = s[row]
			}
			out = append(out, m)
		}
	}
	return out
}

// permutations3 returns the 6 permutations of {0,1,2}.
func permutations3() [][3]int {
	return [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
}

// hexagonalGroup returns the order-24 point group (6/mmm) generated by a
// 6-fold rotation about the c axis, a 2-fold rotation about the in-plane
// a+b axis and the inversion, expressed as integer matrices in the
// standard hexagonal basis (gamma=120°). Signed permutation matrices alone
// cannot express a 6-fold rotation, so this generator set is needed in
// addition to signedPermutations for the hexagonal crystal system.
func hexagonalGroup() []mat33.IMat {
	r6 := mat33.IMat{{1, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	twoFold := mat33.IMat{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}}
	inv := mat33.IMat{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}
	return closure([]mat33.IMat{r6, twoFold, inv}, 24)
}

// closure computes the group generated by gens under matrix
// multiplication, bounded to at most maxSize elements.
func closure(gens []mat33.IMat, maxSize int) []mat33.IMat {
	set := map[mat33.IMat]bool{mat33.IIdentity(): true}
	frontier := []mat33.IMat{mat33.IIdentity()}
	for len(frontier) > 0 && len(set) < maxSize {
		var next []mat33.IMat
		for _, a := range frontier {
			for _, g := range gens {
				p := a.MulMat(g)
				if !set[p] {
					set[p] = true
					next = append(next, p)
				}
			}
		}
		frontier = next
	}
	out := make([]mat33.IMat, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	return out
}

func metric(l mat33.Mat) mat33.Mat {
	return l.Transpose().MulMat(l)
}

func preservesMetric(r mat33.IMat, g mat33.Mat, eps float64) bool {
	rm := r.ToMat()
	got := rm.Transpose().MulMat(g).MulMat(rm)
	tol := eps * (g[0][0] + g[1][1] + g[2][2])
	if tol <= 0 {
		tol = eps
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !mat33.AbsEqual(got[i][j], g[i][j], tol) {
				return false
			}
		}
	}
	return true
}

// CandidateRotations enumerates the rotations of the Bravais lattice's
// point group, expressed as integer matrices in the basis of inputLattice,
// per spec §4.4 step 1. Candidates are first generated in the basis of the
// reduced Bravais lattice (where they take the simple signed-permutation
// or hexagonal-group form) and then carried into the input lattice basis
// by change-of-basis.
func CandidateRotations(br bravais.Bravais, inputLattice mat33.Mat, eps float64) []mat33.IMat {
	g := metric(br.Lattice)
	pool := signedPermutations()
	if br.System == bravais.Hexagonal {
		pool = append(pool, hexagonalGroup()...)
	}
	var inConv []mat33.IMat
	seen := map[mat33.IMat]bool{}
	for _, r := range pool {
		if preservesMetric(r, g, eps) && !seen[r] {
			seen[r] = true
			inConv = append(inConv, r)
		}
	}

	convInv, ok := br.Lattice.Inv(eps)
	if !ok {
		return inConv
	}
	m := convInv.MulMat(inputLattice) // y_conv = m * y_input
	mInv, ok := m.Inv(eps)
	if !ok {
		return inConv
	}

	var out []mat33.IMat
	seenOut := map[mat33.IMat]bool{}
	for _, r := range inConv {
		real := mInv.MulMat(r.ToMat()).MulMat(m)
		var rin mat33.IMat
		ok := true
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				v := real[i][j]
				n := mat33.NearestInt(v)
				if !mat33.AbsEqual(v, float64(n), 1e-4) {
					ok = false
				}
				rin[i][j] = n
			}
		}
		if ok && !seenOut[rin] {
			seenOut[rin] = true
			out = append(out, rin)
		}
	}
	return out
}

// PureTranslations finds the pure translations that leave the crystal
// invariant, per spec §4.4 step 2: for each atom of the least-populous
// species, a translation candidate is formed against the seed atom, and
// accepted if it maps every atom onto an atom of the same species within
// eps. The identity translation is always present. The returned slice is
// the finite abelian group described in spec §4.4 (order m, the
// "multiplicity of pure translations").
func PureTranslations(c cell.Cell, eps float64) []mat33.Frac {
	if c.Size() == 0 {
		return []mat33.Frac{{0, 0, 0}}
	}
	species, _ := c.MinSpeciesCount()
	var idx []int
	for i, t := range c.Types {
		if t == species {
			idx = append(idx, i)
		}
	}
	a0 := idx[0]
	var result []mat33.Frac
	for _, aj := range idx {
		t := mat33.Mod1(c.Positions[a0].Sub(c.Positions[aj]))
		if isPureTranslation(c, t, eps) {
			result = appendUniqueFrac(result, t, eps)
		}
	}
	return result
}

func isPureTranslation(c cell.Cell, t mat33.Frac, eps float64) bool {
	for k := range c.Positions {
		found := false
		target := mat33.Mod1(c.Positions[k].Add(t))
		for l := range c.Positions {
			if !c.SameSpecies(k, l) {
				continue
			}
			if mat33.FracVecEqual(target, c.Positions[l], eps) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func appendUniqueFrac(list []mat33.Frac, t mat33.Frac, eps float64) []mat33.Frac {
	for _, x := range list {
		if mat33.FracVecEqual(x, t, eps) {
			return list
		}
	}
	return append(list, t)
}

// FindSymmetry enumerates the symmetry operations of cell c given its
// Bravais lattice br, per spec §4.4 step 3: every candidate rotation is
// combined with every pure translation, an origin-shift candidate is
// derived from matching the first atom, and the combined operation is
// kept if it maps every atom in c onto an atom of the same species within
// eps. The result is deduplicated by (R, t mod 1) and always contains the
// identity (spec §8 invariant 3).
func FindSymmetry(c cell.Cell, br bravais.Bravais, eps float64) []Operation {
	if c.Size() == 0 {
		return []Operation{{R: mat33.IIdentity(), T: mat33.Frac{0, 0, 0}}}
	}
	pure := PureTranslations(c, eps)
	rotations := CandidateRotations(br, c.Lattice, eps)

	var ops []Operation
	for _, r := range rotations {
		for _, tp := range pure {
			img := mat33.Mod1(r.MulFrac(c.Positions[0]).Add(tp))
			for k := range c.Positions {
				if !c.SameSpecies(0, k) {
					continue
				}
				delta := mat33.Mod1(c.Positions[k].Sub(img))
				t := mat33.Mod1(tp.Add(delta))
				if matchesAll(c, r, t, eps) {
					ops = appendUniqueOp(ops, Operation{R: r, T: t}, eps)
				}
			}
		}
	}
	sortOps(ops)
	return ops
}

func matchesAll(c cell.Cell, r mat33.IMat, t mat33.Frac, eps float64) bool {
	for k := range c.Positions {
		img := mat33.Mod1(r.MulFrac(c.Positions[k]).Add(t))
		found := false
		for l := range c.Positions {
			if !c.SameSpecies(k, l) {
				continue
			}
			if mat33.FracVecEqual(img, c.Positions[l], eps) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func appendUniqueOp(ops []Operation, op Operation, eps float64) []Operation {
	for _, o := range ops {
		if o.R == op.R && mat33.FracVecEqual(o.T, op.T, eps) {
			return ops
		}
	}
	return append(ops, op)
}

func sortOps(ops []Operation) {
	sort.Slice(ops, func(i, j int) bool {
		a, b := ops[i], ops[j]
		for r := 0; r < 3; r++ {
			for cIdx := 0; cIdx < 3; cIdx++ {
				if a.R[r][cIdx] != b.R[r][cIdx] {
					return a.R[r][cIdx] < b.R[r][cIdx]
				}
			}
		}
		for k := 0; k < 3; k++ {
			if a.T[k] != b.T[k] {
				return a.T[k] < b.T[k]
			}
		}
		return false
	})
}

// Multiplicity returns the number of symmetry operations of c, i.e.
// len(FindSymmetry(c, br, eps)).
func Multiplicity(c cell.Cell, br bravais.Bravais, eps float64) int {
	return len(FindSymmetry(c, br, eps))
}

// MaxMultiplicity returns the upper bound translational-multiplicity × 48,
// per spec §6's get_max_multiplicity (48 is the order of Oh, the largest
// crystallographic point group).
func MaxMultiplicity(c cell.Cell, eps float64) int {
	return len(PureTranslations(c, eps)) * 48
}
