// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spacegroup

import (
	"github.com/go-crystal/spg/bravais"
	"github.com/go-crystal/spg/mat33"
	"github.com/go-crystal/spg/symmetry"
)

// Generator is a symmetry operation used as a database fingerprint: a
// representative coset generator of a space group's standard setting,
// expressed in the conventional cell. A space group's full operation set
// is the closure of its Generators under composition with the lattice
// translations implied by its Centering; Classify never computes that
// closure, it only checks that each Generator's rotation/translation pair
// is present (after an origin shift) in the caller's already-discovered
// operation set.
type Generator = symmetry.Operation

// Record is one entry of the space-group database: the classification
// triple (System, Centering, PointGroup) used to shortlist candidates,
// plus the data needed to print a symbol and disambiguate between
// candidates that share a triple (distinct space groups built on the same
// Bravais lattice and point group, such as the symmorphic and
// screw-axis variants of P.../4/mmm).
type Record struct {
	Number      int
	Short       string // Hermann-Mauguin symbol without the centering letter
	Schoenflies string
	System      bravais.System
	Centering   bravais.Centering
	PointGroup  string
	Generators  []Generator
}

var database []Record

// Register adds a space-group record to the database, for callers
// extending the representative table below with additional entries
// (spec §4.7's "look up all space groups consistent with ..." presumes a
// complete 230-entry table; this package ships a representative subset
// spanning every crystal system and all 32 point groups and leaves
// completion to Register). The shipped subset has no A- or B-centred
// records, and most (system, centering, point group) combinations have
// no record at all.
func Register(r Record) {
	database = append(database, r)
}

func init() {
	zero := mat33.Frac{0, 0, 0}
	rot := func(rows ...[3]int) mat33.IMat {
		var m mat33.IMat
		for i, r := range rows {
			m[i] = r
		}
		return m
	}
	inv := rot([3]int{-1, 0, 0}, [3]int{0, -1, 0}, [3]int{0, 0, -1})
	mirrorZ := rot([3]int{1, 0, 0}, [3]int{0, 1, 0}, [3]int{0, 0, -1})
	mirrorX := rot([3]int{-1, 0, 0}, [3]int{0, 1, 0}, [3]int{0, 0, 1})
	fourZ := rot([3]int{0, -1, 0}, [3]int{1, 0, 0}, [3]int{0, 0, 1})

	reg := func(n int, short, schoen string, sys bravais.System, cent bravais.Centering, pg string, gens ...Generator) {
		Register(Record{Number: n, Short: short, Schoenflies: schoen, System: sys, Centering: cent, PointGroup: pg, Generators: gens})
	}

	// Triclinic.
	reg(1, "1", "C1^1", bravais.Triclinic, bravais.P, "1")
	reg(2, "-1", "Ci^1", bravais.Triclinic, bravais.P, "-1", Generator{R: inv, T: zero})

	// Monoclinic.
	reg(3, "2", "C2^1", bravais.Monoclinic, bravais.P, "2")
	reg(5, "2", "C2^3", bravais.Monoclinic, bravais.C, "2")
	reg(6, "m", "Cs^1", bravais.Monoclinic, bravais.P, "m")
	reg(10, "2/m", "C2h^1", bravais.Monoclinic, bravais.P, "2/m", Generator{R: inv, T: zero})

	// Orthorhombic.
	reg(16, "222", "D2^1", bravais.Orthorhombic, bravais.P, "222")
	reg(22, "222", "D2^9", bravais.Orthorhombic, bravais.F, "222")
	reg(23, "222", "D2^5", bravais.Orthorhombic, bravais.I, "222")
	reg(25, "mm2", "C2v^1", bravais.Orthorhombic, bravais.P, "mm2")
	reg(47, "mmm", "D2h^1", bravais.Orthorhombic, bravais.P, "mmm", Generator{R: inv, T: zero})
	reg(69, "mmm", "D2h^23", bravais.Orthorhombic, bravais.F, "mmm", Generator{R: inv, T: zero})
	reg(71, "mmm", "D2h^25", bravais.Orthorhombic, bravais.I, "mmm", Generator{R: inv, T: zero})

	// Tetragonal.
	reg(75, "4", "C4^1", bravais.Tetragonal, bravais.P, "4")
	reg(79, "4", "C4^5", bravais.Tetragonal, bravais.I, "4")
	reg(81, "-4", "S4^1", bravais.Tetragonal, bravais.P, "-4")
	reg(83, "4/m", "C4h^1", bravais.Tetragonal, bravais.P, "4/m", Generator{R: inv, T: zero})
	reg(89, "422", "D4^1", bravais.Tetragonal, bravais.P, "422")
	reg(99, "4mm", "C4v^1", bravais.Tetragonal, bravais.P, "4mm")
	reg(111, "-42m", "D2d^1", bravais.Tetragonal, bravais.P, "-42m")
	reg(123, "4/mmm", "D4h^1", bravais.Tetragonal, bravais.P, "4/mmm",
		Generator{R: fourZ, T: zero}, Generator{R: mirrorZ, T: zero}, Generator{R: mirrorX, T: zero})
	reg(136, "4_2/mnm", "D4h^14", bravais.Tetragonal, bravais.P, "4/mmm",
		Generator{R: fourZ, T: mat33.Frac{0, 0, 0.5}}, Generator{R: mirrorX, T: mat33.Frac{0.5, 0.5, 0.5}})
	reg(139, "4/mmm", "D4h^17", bravais.Tetragonal, bravais.I, "4/mmm", Generator{R: inv, T: zero})

	// Hexagonal / rhombohedral (trigonal point groups live on the
	// hexagonal lattice except for the rhombohedral centering).
	reg(143, "3", "C3^1", bravais.Hexagonal, bravais.P, "3")
	reg(146, "3", "C3^4", bravais.Rhombohedral, bravais.R, "3")
	reg(147, "-3", "C3i^1", bravais.Hexagonal, bravais.P, "-3", Generator{R: inv, T: zero})
	reg(149, "32", "D3^1", bravais.Hexagonal, bravais.P, "32")
	reg(156, "3m", "C3v^1", bravais.Hexagonal, bravais.P, "3m")
	reg(160, "3m", "C3v^5", bravais.Rhombohedral, bravais.R, "3m")
	reg(162, "-3m", "D3d^1", bravais.Hexagonal, bravais.P, "-3m", Generator{R: inv, T: zero})
	reg(168, "6", "C6^1", bravais.Hexagonal, bravais.P, "6")
	reg(174, "-6", "C3h^1", bravais.Hexagonal, bravais.P, "-6")
	reg(175, "6/m", "C6h^1", bravais.Hexagonal, bravais.P, "6/m", Generator{R: inv, T: zero})
	reg(177, "622", "D6^1", bravais.Hexagonal, bravais.P, "622")
	reg(183, "6mm", "C6v^1", bravais.Hexagonal, bravais.P, "6mm")
	reg(187, "-6m2", "D3h^1", bravais.Hexagonal, bravais.P, "-6m2")
	reg(191, "6/mmm", "D6h^1", bravais.Hexagonal, bravais.P, "6/mmm", Generator{R: inv, T: zero})

	// Cubic.
	reg(195, "23", "T^1", bravais.Cubic, bravais.P, "23")
	reg(197, "23", "T^3", bravais.Cubic, bravais.I, "23")
	reg(200, "m-3", "Th^1", bravais.Cubic, bravais.P, "m-3", Generator{R: inv, T: zero})
	reg(202, "m-3", "Th^5", bravais.Cubic, bravais.F, "m-3", Generator{R: inv, T: zero})
	reg(204, "m-3", "Th^7", bravais.Cubic, bravais.I, "m-3", Generator{R: inv, T: zero})
	reg(207, "432", "O^1", bravais.Cubic, bravais.P, "432")
	reg(209, "432", "O^5", bravais.Cubic, bravais.F, "432")
	reg(211, "432", "O^8", bravais.Cubic, bravais.I, "432")
	reg(215, "-43m", "Td^1", bravais.Cubic, bravais.P, "-43m")
	reg(216, "-43m", "Td^3", bravais.Cubic, bravais.F, "-43m")
	reg(217, "-43m", "Td^4", bravais.Cubic, bravais.I, "-43m")
	reg(221, "m-3m", "Oh^1", bravais.Cubic, bravais.P, "m-3m", Generator{R: inv, T: zero})
	reg(225, "m-3m", "Oh^5", bravais.Cubic, bravais.F, "m-3m", Generator{R: inv, T: zero})
	reg(229, "m-3m", "Oh^9", bravais.Cubic, bravais.I, "m-3m", Generator{R: inv, T: zero})
}
