// Copyright ©2026 The go-crystal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pointgroup classifies a set of rotation matrices as one of the
// 32 crystallographic point groups, per spec §4.6.
package pointgroup

import "github.com/go-crystal/spg/mat33"

// PointGroup is a classification record: international (Hermann-Mauguin)
// symbol, Schoenflies symbol, and holohedry (the crystal system of the
// point group's highest-symmetry realization).
type PointGroup struct {
	International string
	Schoenflies   string
	Holohedry     string
	Order         int
}

// counts is the multiset of rotation "types" present in a point group: the
// number of matrices whose (trace, det) pair identifies them as an
// n-fold proper rotation (N1..N6) or an n-fold improper rotoinversion
// (NM1..NM6), per the standard International-Tables trace/determinant
// identity described in spec §4.6 ("axis order n ... determined from
// matrix trace and determinant").
type counts struct {
	n1, n2, n3, n4, n6             int
	nm1, nm2, nm3, nm4, nm6        int
}

// rotationType returns the signed axis order of r: a positive n for a
// proper n-fold rotation (det=+1), or a negative code for an improper
// rotoinversion (det=-1), using -2 for a pure mirror. Returns (0, false)
// if r is not a valid crystallographic rotation (trace/det combination
// not in the standard table).
func rotationType(r mat33.IMat) (int, bool) {
	det := r.Det()
	trace := r[0][0] + r[1][1] + r[2][2]
	if det == 1 {
		switch trace {
		case 3:
			return 1, true
		case -1:
			return 2, true
		case 0:
			return 3, true
		case 1:
			return 4, true
		case 2:
			return 6, true
		}
	} else if det == -1 {
		switch trace {
		case -3:
			return -1, true
		case 1:
			return -2, true
		case 0:
			return -3, true
		case -1:
			return -4, true
		case -2:
			return -6, true
		}
	}
	return 0, false
}

func tally(rotations []mat33.IMat) counts {
	var c counts
	seen := make(map[mat33.IMat]bool)
	for _, r := range rotations {
		if seen[r] {
			continue
		}
		seen[r] = true
		t, ok := rotationType(r)
		if !ok {
			continue
		}
		switch t {
		case 1:
			c.n1++
		case 2:
			c.n2++
		case 3:
			c.n3++
		case 4:
			c.n4++
		case 6:
			c.n6++
		case -1:
			c.nm1++
		case -2:
			c.nm2++
		case -3:
			c.nm3++
		case -4:
			c.nm4++
		case -6:
			c.nm6++
		}
	}
	return c
}

var table = map[counts]PointGroup{
	{n1: 1}:                                           {"1", "C1", "triclinic", 1},
	{n1: 1, nm1: 1}:                                    {"-1", "Ci", "triclinic", 2},
	{n1: 1, n2: 1}:                                     {"2", "C2", "monoclinic", 2},
	{n1: 1, nm2: 1}:                                    {"m", "Cs", "monoclinic", 2},
	{n1: 1, n2: 1, nm1: 1, nm2: 1}:                      {"2/m", "C2h", "monoclinic", 4},
	{n1: 1, n2: 3}:                                      {"222", "D2", "orthorhombic", 4},
	{n1: 1, n2: 1, nm2: 2}:                              {"mm2", "C2v", "orthorhombic", 4},
	{n1: 1, n2: 3, nm1: 1, nm2: 3}:                      {"mmm", "D2h", "orthorhombic", 8},
	{n1: 1, n2: 1, n4: 2}:                               {"4", "C4", "tetragonal", 4},
	{n1: 1, n2: 1, nm4: 2}:                              {"-4", "S4", "tetragonal", 4},
	{n1: 1, n2: 1, n4: 2, nm1: 1, nm2: 1, nm4: 2}:        {"4/m", "C4h", "tetragonal", 8},
	{n1: 1, n2: 5, n4: 2}:                               {"422", "D4", "tetragonal", 8},
	{n1: 1, n2: 1, n4: 2, nm2: 4}:                        {"4mm", "C4v", "tetragonal", 8},
	{n1: 1, n2: 3, nm4: 2, nm2: 2}:                       {"-42m", "D2d", "tetragonal", 8},
	{n1: 1, n2: 5, n4: 2, nm1: 1, nm2: 5, nm4: 2}:        {"4/mmm", "D4h", "tetragonal", 16},
	{n1: 1, n3: 2}:                                      {"3", "C3", "trigonal", 3},
	{n1: 1, n3: 2, nm1: 1, nm3: 2}:                       {"-3", "C3i", "trigonal", 6},
	{n1: 1, n3: 2, n2: 3}:                                {"32", "D3", "trigonal", 6},
	{n1: 1, n3: 2, nm2: 3}:                               {"3m", "C3v", "trigonal", 6},
	{n1: 1, n3: 2, n2: 3, nm1: 1, nm3: 2, nm2: 3}:         {"-3m", "D3d", "trigonal", 12},
	{n1: 1, n2: 1, n3: 2, n6: 2}:                          {"6", "C6", "hexagonal", 6},
	{n1: 1, n3: 2, nm2: 1, nm6: 2}:                        {"-6", "C3h", "hexagonal", 6},
	{n1: 1, n2: 1, n3: 2, n6: 2, nm1: 1, nm2: 1, nm3: 2, nm6: 2}: {"6/m", "C6h", "hexagonal", 12},
	{n1: 1, n2: 7, n3: 2, n6: 2}:                          {"622", "D6", "hexagonal", 12},
	{n1: 1, n2: 1, n3: 2, n6: 2, nm2: 6}:                  {"6mm", "C6v", "hexagonal", 12},
	{n1: 1, n3: 2, n2: 3, nm2: 4, nm6: 2}:                 {"-6m2", "D3h", "hexagonal", 12},
	{n1: 1, n2: 7, n3: 2, n6: 2, nm1: 1, nm2: 7, nm3: 2, nm6: 2}: {"6/mmm", "D6h", "hexagonal", 24},
	{n1: 1, n2: 3, n3: 8}:                                 {"23", "T", "cubic", 12},
	{n1: 1, n2: 3, n3: 8, nm1: 1, nm2: 3, nm3: 8}:          {"m-3", "Th", "cubic", 24},
	{n1: 1, n2: 9, n3: 8, n4: 6}:                           {"432", "O", "cubic", 24},
	{n1: 1, n2: 3, n3: 8, nm4: 6, nm2: 6}:                  {"-43m", "Td", "cubic", 24},
	{n1: 1, n2: 9, n3: 8, n4: 6, nm1: 1, nm2: 9, nm3: 8, nm4: 6}: {"m-3m", "Oh", "cubic", 48},
}

// Classify classifies rotations as one of the 32 crystallographic point
// groups, per spec §4.6. It returns the zero PointGroup and false if the
// rotation set's type multiset does not match any of the 32 entries.
func Classify(rotations []mat33.IMat) (PointGroup, bool) {
	c := tally(rotations)
	pg, ok := table[c]
	return pg, ok
}
