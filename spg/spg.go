// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spg is the top-level entry point of the symmetry pipeline: it
// composes the Bravais reducer, symmetry finder, primitive extractor,
// point-group and space-group classifiers, and k-point reducer behind a
// set of plain Go functions, mirroring the public surface of
// _examples/original_source/spglib-0.7.1/src/spglib.c without its
// buffer/max_size C-ABI calling convention.
package spg

import (
	"github.com/go-crystal/spg/bravais"
	"github.com/go-crystal/spg/cell"
	"github.com/go-crystal/spg/kpoint"
	"github.com/go-crystal/spg/mat33"
	"github.com/go-crystal/spg/pointgroup"
	"github.com/go-crystal/spg/primitive"
	"github.com/go-crystal/spg/spacegroup"
	"github.com/go-crystal/spg/symmetry"
)

// GetSymmetry returns every symmetry operation of c at tolerance eps, per
// spec §4.4 and §6's get_symmetry.
func GetSymmetry(c cell.Cell, eps float64) []symmetry.Operation {
	br := bravais.Reduce(c.Lattice, eps)
	return symmetry.FindSymmetry(c, br, eps)
}

// GetMultiplicity returns len(GetSymmetry(c, eps)), per spec §6's
// get_multiplicity.
func GetMultiplicity(c cell.Cell, eps float64) int {
	br := bravais.Reduce(c.Lattice, eps)
	return symmetry.Multiplicity(c, br, eps)
}

// GetMaxMultiplicity returns the upper bound on multiplicity (48 times the
// number of pure translations), per spec §6's get_max_multiplicity.
func GetMaxMultiplicity(c cell.Cell, eps float64) int {
	return symmetry.MaxMultiplicity(c, eps)
}

// FindPrimitive extracts the minimal-volume primitive cell of c, per spec
// §4.5 and §6's find_primitive. It returns ok=false (PrimitiveNotFound)
// if no valid primitive cell can be identified at eps.
func FindPrimitive(c cell.Cell, eps float64) (cell.Cell, bool) {
	return primitive.Extract(c, eps)
}

// GetBravaisLattice returns the conventional Bravais lattice of lattice,
// per spec §4.3 and §6's get_bravais_lattice.
func GetBravaisLattice(lattice mat33.Mat, eps float64) mat33.Mat {
	return bravais.Reduce(lattice, eps).Lattice
}

// GetSmallestLattice returns the shortest, most-orthogonal basis spanning
// the same lattice as lattice, per spec §4.3's get_smallest_lattice.
func GetSmallestLattice(lattice mat33.Mat, eps float64) mat33.Mat {
	return bravais.SmallestLatticeVector(lattice, eps)
}

// classify runs the full Bravais → symmetry → space-group pipeline on c,
// per spec §3's stated control flow for "find space group".
func classify(c cell.Cell, eps float64) (spacegroup.SpaceGroup, bool) {
	br := bravais.Reduce(c.Lattice, eps)
	ops := symmetry.FindSymmetry(c, br, eps)
	return spacegroup.Classify(ops, br, eps)
}

// GetInternational returns the Hermann-Mauguin symbol and space-group
// number of c, per spec §6's get_international. A ClassificationFailure
// (spec §7) is reported as ("", 0).
func GetInternational(c cell.Cell, eps float64) (symbol string, number int) {
	sg, ok := classify(c, eps)
	if !ok {
		return "", 0
	}
	return sg.International(), sg.Number
}

// GetSchoenflies returns the Schoenflies symbol and space-group number of
// c, per spec §6's get_schoenflies. A ClassificationFailure (spec §7) is
// reported as ("", 0).
func GetSchoenflies(c cell.Cell, eps float64) (symbol string, number int) {
	sg, ok := classify(c, eps)
	if !ok {
		return "", 0
	}
	return sg.Schoenflies, sg.Number
}

// GetPointGroup returns the point-group classification of c's symmetry
// operations, per spec §4.6.
func GetPointGroup(c cell.Cell, eps float64) (pointgroup.PointGroup, bool) {
	ops := GetSymmetry(c, eps)
	rotations := make([]mat33.IMat, len(ops))
	for i, op := range ops {
		rotations[i] = op.R
	}
	return pointgroup.Classify(rotations)
}

// GetIrreducibleKpoints reduces an explicit list of k-points under c's
// symmetry, per spec §4.8's get_ir_kpoints.
func GetIrreducibleKpoints(kpoints []mat33.Frac, c cell.Cell, eps float64, timeReversal bool) (mapping []int, count int) {
	ops := GetSymmetry(c, eps)
	rotations := make([]mat33.IMat, len(ops))
	for i, op := range ops {
		rotations[i] = op.R
	}
	return kpoint.Irreducible(kpoints, rotations, timeReversal, eps)
}

// GetIrreducibleReciprocalMesh reduces a uniform mesh under c's symmetry,
// per spec §4.8's get_ir_reciprocal_mesh.
func GetIrreducibleReciprocalMesh(mesh, shift [3]int, c cell.Cell, eps float64, timeReversal bool) (grid []kpoint.GridPoint, mapping []int, count int) {
	ops := GetSymmetry(c, eps)
	rotations := make([]mat33.IMat, len(ops))
	for i, op := range ops {
		rotations[i] = op.R
	}
	return kpoint.ReciprocalMesh(mesh, shift, rotations, timeReversal, eps)
}

// GetStabilizedReciprocalMesh reduces a uniform mesh under the subgroup
// of rotations fixing every point of qpoints, per spec §4.8's
// get_stabilized_reciprocal_mesh. lattice is accepted for parity with the
// original buffer-based signature but is unused: rotations are already
// expressed in the fractional lattice basis, and qpoints/mesh are
// fractional, so no Cartesian conversion is needed for this reduction.
func GetStabilizedReciprocalMesh(mesh, shift [3]int, lattice mat33.Mat, rotations []mat33.IMat, qpoints []mat33.Frac, eps float64, timeReversal bool) (grid []kpoint.GridPoint, mapping []int, count int) {
	_ = lattice
	return kpoint.StabilizedReciprocalMesh(mesh, shift, rotations, qpoints, timeReversal, eps)
}

// GetTripletsReciprocalMesh enumerates momentum-conserving k-point
// triplets of a uniform mesh, per spec §4.8's get_triplets_reciprocal_mesh.
// lattice is accepted for parity with the original buffer-based signature
// but unused, for the same reason as GetStabilizedReciprocalMesh.
func GetTripletsReciprocalMesh(mesh [3]int, lattice mat33.Mat, rotations []mat33.IMat, eps float64, timeReversal bool, maxTriplets int) (triplets []kpoint.Triplet, weights []int, grid []kpoint.GridPoint, count int) {
	_ = lattice
	return kpoint.TripletsReciprocalMesh(mesh, rotations, timeReversal, maxTriplets, eps)
}
