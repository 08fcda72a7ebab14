// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spacegroup classifies a cell's discovered symmetry operations
// against the 230 crystallographic space groups, per spec §4.7. It
// composes the Bravais-lattice classification (system, centering) with
// the point-group classification of the operations' rotation parts, then
// disambiguates between space groups sharing that (system, centering,
// point group) triple by searching for an origin shift under which the
// candidate's generators all appear in the discovered operation set.
package spacegroup

import (
	"fmt"

	"github.com/go-crystal/spg/bravais"
	"github.com/go-crystal/spg/mat33"
	"github.com/go-crystal/spg/pointgroup"
	"github.com/go-crystal/spg/symmetry"
)

// SpaceGroup is a classification result: the matched database Record
// together with the Bravais centering letter actually observed, since a
// Record's Centering and a structure's effective centering can diverge
// when the caller's lattice is given as an uncentered conventional cell
// (see bravais.Reduce's doc comment).
type SpaceGroup struct {
	Number      int
	Centering   bravais.Centering
	Short       string
	Schoenflies string
	PointGroup  pointgroup.PointGroup
}

// International returns the full Hermann-Mauguin symbol: the centering
// letter followed by the point-group-qualified short symbol, e.g. "Pm-3m"
// or "Fm-3m".
func (s SpaceGroup) International() string {
	return fmt.Sprintf("%c%s", s.Centering, s.Short)
}

// originShifts is the coarse grid of candidate fractional origin shifts
// tried when disambiguating space groups that share a (system, centering,
// point group) triple, per spec §4.7 step 4's origin search. The grid
// covers the shifts that recur in International Tables standard settings
// (quarter- and sixth-cell steps); a shift outside this grid is not
// considered.
var originShifts = buildOriginShifts()

func buildOriginShifts() []mat33.Frac {
	steps := []float64{0, 1.0 / 6, 1.0 / 4, 1.0 / 3, 1.0 / 2, 2.0 / 3, 3.0 / 4, 5.0 / 6}
	var out []mat33.Frac
	for _, x := range steps {
		for _, y := range steps {
			for _, z := range steps {
				out = append(out, mat33.Frac{x, y, z})
			}
		}
	}
	return out
}

// Classify matches a cell's discovered symmetry operations ops, under
// Bravais classification br, against the space-group database. When
// br.Centering is P, it derives the effective centering from the
// pure-translation subgroup of ops (the operations with identity rotation)
// via bravais.CenteringFromTranslations, so that callers passing an
// uncentered conventional cell (the common case) still resolve to the
// correct symbol; any other br.Centering is used as is. It returns ok=false
// if no registered Record is consistent with ops.
func Classify(ops []symmetry.Operation, br bravais.Bravais, eps float64) (SpaceGroup, bool) {
	if len(ops) == 0 {
		return SpaceGroup{}, false
	}
	rotations := make([]mat33.IMat, len(ops))
	for i, op := range ops {
		rotations[i] = op.R
	}
	pg, ok := pointgroup.Classify(rotations)
	if !ok {
		return SpaceGroup{}, false
	}

	var pure []mat33.Frac
	for _, op := range ops {
		if op.R == mat33.IIdentity() {
			pure = append(pure, op.T)
		}
	}
	centering := br.Centering
	if centering == bravais.P {
		centering = bravais.CenteringFromTranslations(pure, eps)
	}

	for _, rec := range database {
		if rec.System != br.System || rec.Centering != centering || rec.PointGroup != pg.International {
			continue
		}
		if matchGenerators(rec.Generators, ops, eps) {
			return SpaceGroup{
				Number:      rec.Number,
				Centering:   centering,
				Short:       rec.Short,
				Schoenflies: rec.Schoenflies,
				PointGroup:  pg,
			}, true
		}
	}
	return SpaceGroup{}, false
}

// matchGenerators reports whether some single origin shift from
// originShifts brings every one of gens into coincidence (rotation and
// translation, mod 1, within eps) with some operation of ops. A record
// with no generators (a symmorphic group whose point group and centering
// alone identify it uniquely among the registered entries) always
// matches.
func matchGenerators(gens []symmetry.Operation, ops []symmetry.Operation, eps float64) bool {
	if len(gens) == 0 {
		return true
	}
	for _, s := range originShifts {
		if allGeneratorsMatch(gens, ops, s, eps) {
			return true
		}
	}
	return false
}

func allGeneratorsMatch(gens, ops []symmetry.Operation, s mat33.Frac, eps float64) bool {
	for _, g := range gens {
		if !anyOpMatches(g, ops, s, eps) {
			return false
		}
	}
	return true
}

// anyOpMatches reports whether some operation of ops has the same
// rotation as g and a translation equal to g's translation as shifted
// from origin s, per the standard origin-shift transform t' = t + (R-I)s.
func anyOpMatches(g symmetry.Operation, ops []symmetry.Operation, s mat33.Frac, eps float64) bool {
	shift := mat33.Frac{
		g.T[0] + (g.R.ToMat()[0][0]-1)*s[0] + g.R.ToMat()[0][1]*s[1] + g.R.ToMat()[0][2]*s[2],
		g.T[1] + g.R.ToMat()[1][0]*s[0] + (g.R.ToMat()[1][1]-1)*s[1] + g.R.ToMat()[1][2]*s[2],
		g.T[2] + g.R.ToMat()[2][0]*s[0] + g.R.ToMat()[2][1]*s[1] + (g.R.ToMat()[2][2]-1)*s[2],
	}
	want := mat33.Mod1(shift)
	for _, op := range ops {
		if op.R == g.R && mat33.FracVecEqual(op.T, want, eps) {
			return true
		}
	}
	return false
}
