// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kpoint reduces Brillouin-zone k-points and uniform meshes under
// a crystallographic rotation group, and enumerates momentum-conserving
// k-point triplets for a reduced mesh.
package kpoint

import (
	"math"

	"github.com/go-crystal/spg/mat33"
)

// GridPoint is a mesh index (g0, g1, g2), g_i in [0, mesh_i).
type GridPoint [3]int

// Triplet is a momentum-conserving triple of mesh-point indices
// (k1+k2+k3 in the reciprocal lattice).
type Triplet struct {
	K1, K2, K3 int
}

// reciprocalRotate returns the action of a direct-space rotation r (an
// integer matrix acting on fractional direct-space coordinates) on
// reciprocal-space fractional coordinates: (R^-1)^T, which is itself
// integer since r is unimodular.
func reciprocalRotate(r mat33.IMat) mat33.IMat {
	inv, ok := r.ToMat().Inv(1e-9)
	if !ok {
		return mat33.IIdentity()
	}
	t := inv.Transpose()
	var out mat33.IMat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = mat33.NearestInt(t[i][j])
		}
	}
	return out
}

func negate(r mat33.IMat) mat33.IMat {
	var out mat33.IMat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = -r[i][j]
		}
	}
	return out
}

// withTimeReversal appends -R for every R in rotations when timeReversal
// is set, since k ↦ -k is an additional symmetry of the Brillouin zone
// whenever the system has time-reversal invariance.
func withTimeReversal(rotations []mat33.IMat, timeReversal bool) []mat33.IMat {
	if !timeReversal {
		return rotations
	}
	out := make([]mat33.IMat, 0, 2*len(rotations))
	out = append(out, rotations...)
	for _, r := range rotations {
		out = append(out, negate(r))
	}
	return out
}

func fracAt(g, mesh, shift [3]int) mat33.Frac {
	var k mat33.Frac
	for i := 0; i < 3; i++ {
		k[i] = (float64(g[i]) + float64(shift[i])/2) / float64(mesh[i])
	}
	return k
}

func gridIndex(g, mesh [3]int) int {
	return g[2]*mesh[1]*mesh[0] + g[1]*mesh[0] + g[0]
}

func indexToGrid(n int, mesh [3]int) [3]int {
	g0 := n % mesh[0]
	rem := n / mesh[0]
	g1 := rem % mesh[1]
	g2 := rem / mesh[1]
	return [3]int{g0, g1, g2}
}

// gridIndexOfFrac snaps a reciprocal fractional point k to a mesh index
// under (mesh, shift), returning ok=false if k does not land exactly on
// the grid within eps.
func gridIndexOfFrac(k mat33.Frac, mesh, shift [3]int, eps float64) (int, bool) {
	var g [3]int
	for i := 0; i < 3; i++ {
		val := k[i]*float64(mesh[i]) - float64(shift[i])/2
		n := mat33.NearestInt(val)
		if math.Abs(val-float64(n)) > eps*float64(mesh[i])+1e-6 {
			return 0, false
		}
		g[i] = ((n % mesh[i]) + mesh[i]) % mesh[i]
	}
	return gridIndex(g, mesh), true
}

// imageIndex returns the mesh index of the image of grid point g under
// rotation r, or ok=false if the image does not land on an exact grid
// point (spec: "reject if any coordinate is non-integer after accounting
// for the shift").
func imageIndex(g, mesh, shift [3]int, r mat33.IMat, eps float64) (int, bool) {
	rr := reciprocalRotate(r)
	k := fracAt(g, mesh, shift)
	kp := rr.MulFrac(k)
	return gridIndexOfFrac(kp, mesh, shift, eps)
}

// Irreducible reduces an explicit list of reciprocal fractional k-points
// under rotations (and, if timeReversal, k ↦ −k), per spec §4.8's
// "Irreducible-k-points of an explicit list". mapping[i] is the index of
// the smallest j such that some rotation maps k_i onto k_j (mod the
// reciprocal lattice); mapping[i] == i marks a representative.
func Irreducible(kpoints []mat33.Frac, rotations []mat33.IMat, timeReversal bool, eps float64) (mapping []int, count int) {
	ops := withTimeReversal(rotations, timeReversal)
	mapping = make([]int, len(kpoints))
	for i, k := range kpoints {
		mapping[i] = i
		for j := 0; j < i; j++ {
			if mapping[j] != j {
				continue
			}
			if equivalentUnderGroup(k, kpoints[j], ops, eps) {
				mapping[i] = j
				break
			}
		}
		if mapping[i] == i {
			count++
		}
	}
	return mapping, count
}

func equivalentUnderGroup(k, ref mat33.Frac, ops []mat33.IMat, eps float64) bool {
	for _, r := range ops {
		rr := reciprocalRotate(r)
		img := mat33.Mod1(rr.MulFrac(k))
		if mat33.FracVecEqual(img, mat33.Mod1(ref), eps) {
			return true
		}
	}
	return false
}

// ReciprocalMesh reduces a uniform mesh (spec §4.8's "Uniform-mesh
// reduction"): grid[n] is the integer triple for mesh index n (row-major
// over (g2, g1, g0)), mapping[n] is the smallest index equivalent to n
// under rotations (and time reversal), and count is the number of
// distinct representatives.
func ReciprocalMesh(mesh, shift [3]int, rotations []mat33.IMat, timeReversal bool, eps float64) (grid []GridPoint, mapping []int, count int) {
	ops := withTimeReversal(rotations, timeReversal)
	m := mesh[0] * mesh[1] * mesh[2]
	mapping = make([]int, m)
	grid = make([]GridPoint, m)
	for n := 0; n < m; n++ {
		grid[n] = GridPoint(indexToGrid(n, mesh))
		best := n
		for _, r := range ops {
			np, ok := imageIndex(grid[n], mesh, shift, r, eps)
			if ok && np < n && mapping[np] < best {
				best = mapping[np]
			}
		}
		mapping[n] = best
		if best == n {
			count++
		}
	}
	return grid, mapping, count
}

// Stabilizer returns the subgroup of rotations that fixes every point in
// qpoints (mod the reciprocal lattice), the little group at {q_i} used
// by StabilizedReciprocalMesh and TripletsReciprocalMesh.
func Stabilizer(rotations []mat33.IMat, qpoints []mat33.Frac, eps float64) []mat33.IMat {
	var out []mat33.IMat
	for _, r := range rotations {
		rr := reciprocalRotate(r)
		fixesAll := true
		for _, q := range qpoints {
			img := mat33.Mod1(rr.MulFrac(q))
			if !mat33.FracVecEqual(img, mat33.Mod1(q), eps) {
				fixesAll = false
				break
			}
		}
		if fixesAll {
			out = append(out, r)
		}
	}
	return out
}

// StabilizedReciprocalMesh reduces a uniform mesh under only the
// rotations that fix every q-point of qpoints (spec §4.8's "Stabilized
// mesh"), otherwise identical to ReciprocalMesh.
func StabilizedReciprocalMesh(mesh, shift [3]int, rotations []mat33.IMat, qpoints []mat33.Frac, timeReversal bool, eps float64) (grid []GridPoint, mapping []int, count int) {
	stab := Stabilizer(rotations, qpoints, eps)
	return ReciprocalMesh(mesh, shift, stab, timeReversal, eps)
}

// TripletsReciprocalMesh enumerates momentum-conserving k-point triplets
// (k1, k2, k3) with k1+k2+k3 in the reciprocal lattice, per spec §4.8's
// "Triplet enumeration". k1 is pinned to the Γ point (grid index 0),
// whose stabilizer is the full supplied rotation group (plus its time
// reversal partners) — the convention used by triplet-folding call sites
// that process one k1 per call, matching the original C entry point's
// single-mesh (not single-q) argument list by fixing the one k1 every
// such mesh always contains exactly once, the origin.
// Weights sum to mesh[0]*mesh[1]*mesh[2] (spec §8 invariant 10); results
// are truncated at maxTriplets if the full count would exceed it.
func TripletsReciprocalMesh(mesh [3]int, rotations []mat33.IMat, timeReversal bool, maxTriplets int, eps float64) (triplets []Triplet, weights []int, grid []GridPoint, count int) {
	ops := withTimeReversal(rotations, timeReversal)
	m := mesh[0] * mesh[1] * mesh[2]
	grid = make([]GridPoint, m)
	for n := 0; n < m; n++ {
		grid[n] = GridPoint(indexToGrid(n, mesh))
	}
	shift := [3]int{0, 0, 0}
	k1 := fracAt(grid[0], mesh, shift)
	stab := Stabilizer(ops, []mat33.Frac{k1}, eps)

	idx3 := make([]int, m)
	for n := 0; n < m; n++ {
		k2 := fracAt(grid[n], mesh, shift)
		k3 := mat33.Mod1(mat33.Frac{-k1[0] - k2[0], -k1[1] - k2[1], -k1[2] - k2[2]})
		n3, ok := gridIndexOfFrac(k3, mesh, shift, eps)
		if !ok {
			n3 = n
		}
		idx3[n] = n3
	}

	orbitRep := make([]int, m)
	orbitSize := make([]int, m)
	for n := 0; n < m; n++ {
		best := n
		for _, r := range stab {
			np, ok := imageIndex(grid[n], mesh, shift, r, eps)
			if ok && np < best {
				best = np
			}
		}
		orbitRep[n] = best
	}
	for n := 0; n < m; n++ {
		orbitSize[orbitRep[n]]++
	}

	for n := 0; n < m; n++ {
		if orbitRep[n] != n {
			continue
		}
		if maxTriplets > 0 && len(triplets) >= maxTriplets {
			break
		}
		triplets = append(triplets, Triplet{K1: 0, K2: n, K3: idx3[n]})
		weights = append(weights, orbitSize[n])
		count++
	}
	return triplets, weights, grid, count
}
