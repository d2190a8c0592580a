/*
 * constants.go, part of goaev.
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package aev

import "fmt"

//Constants holds the symmetry-function hyperparameters and the species
//vocabulary for a Computer. EtaR/ShfR span the radial Gaussian grid and
//EtaA/Zeta/ShfA/ShfZ the angular one; every combination of grid values
//becomes one sub-feature. The order of Species fixes the layout of the
//descriptors, so it must be kept stable across runs.
//
//Parsing constants from whatever file format a dataset uses is the
//caller's problem; a Computer only sees the already-assembled values.
type Constants struct {
	Rcr     float64   //radial cutoff radius
	Rca     float64   //angular cutoff radius
	EtaR    []float64 //radial Gaussian widths
	ShfR    []float64 //radial Gaussian shifts
	EtaA    []float64 //angular Gaussian widths
	Zeta    []float64 //angular sharpness
	ShfA    []float64 //angular radial shifts
	ShfZ    []float64 //angular angle shifts
	Species []string  //the species vocabulary, in output order
}

//clone returns a deep copy, so later changes to the caller's slices
//can not alter a Computer already built from them.
func (cs *Constants) clone() Constants {
	cp := func(s []float64) []float64 { return append([]float64{}, s...) }
	return Constants{
		Rcr:     cs.Rcr,
		Rca:     cs.Rca,
		EtaR:    cp(cs.EtaR),
		ShfR:    cp(cs.ShfR),
		EtaA:    cp(cs.EtaA),
		Zeta:    cp(cs.Zeta),
		ShfA:    cp(cs.ShfA),
		ShfZ:    cp(cs.ShfZ),
		Species: append([]string{}, cs.Species...),
	}
}

func (cs *Constants) validate() error {
	if cs.Rcr <= 0 || cs.Rca <= 0 {
		return &CError{fmt.Sprintf("Cutoff radii must be positive, got Rcr=%v Rca=%v", cs.Rcr, cs.Rca), []string{"validate"}}
	}
	grids := map[string][]float64{"EtaR": cs.EtaR, "ShfR": cs.ShfR, "EtaA": cs.EtaA, "Zeta": cs.Zeta, "ShfA": cs.ShfA, "ShfZ": cs.ShfZ}
	for _, name := range []string{"EtaR", "ShfR", "EtaA", "Zeta", "ShfA", "ShfZ"} {
		if len(grids[name]) == 0 {
			return &CError{fmt.Sprintf("Constant grid %s is empty", name), []string{"validate"}}
		}
	}
	if len(cs.Species) == 0 {
		return &CError{"The species vocabulary is empty", []string{"validate"}}
	}
	seen := make(map[string]bool, len(cs.Species))
	for _, s := range cs.Species {
		if seen[s] {
			return &CError{fmt.Sprintf("Species %s appears twice in the vocabulary", s), []string{"validate"}}
		}
		seen[s] = true
	}
	return nil
}

//Defaults returns the rHCNO-5.2R_16-3.5A_a4-8 parameter set, the grid
//the original ANI network family ships as its built-in constants:
//16 radial shifts between 0.9 and 5.2 A with a single width, and a
//4x8 angular grid with shifts up to 3.5 A. Vocabulary order is
//H, C, N, O.
func Defaults() Constants {
	return Constants{
		Rcr:  5.2,
		Rca:  3.5,
		EtaR: []float64{16.0},
		ShfR: []float64{0.9, 1.16875, 1.4375, 1.70625, 1.975, 2.24375,
			2.5125, 2.78125, 3.05, 3.31875, 3.5875, 3.85625, 4.125,
			4.39375, 4.6625, 4.93125},
		EtaA: []float64{8.0},
		Zeta: []float64{32.0},
		ShfA: []float64{0.9, 1.55, 2.2, 2.85},
		ShfZ: []float64{0.19634954, 0.58904862, 0.9817477, 1.3744468,
			1.7671459, 2.1598449, 2.5525440, 2.9452431},
		Species: []string{"H", "C", "N", "O"},
	}
}
