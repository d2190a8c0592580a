/*
 * subaev.go, part of goaev.
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

import (
	"math"

	"github.com/viterin/vek"

	v3 "github.com/rmera/goaev/v3"
)

//radialSubAEV accumulates into out the radial symmetry functions of
//the center atom over the given neighbor list, for one conformation.
//out must have PerSpeciesRadialLen elements and be zeroed by the
//caller; an empty neighbor list leaves it untouched, which is exactly
//the required zero block. The layout runs ShfR fastest, EtaR slowest.
//
//The 0.25 coefficient is not in the symmetry-function paper, but the
//original NeuroChem implementation carries it; it must stay for
//numerical compatibility.
func (C *Computer) radialSubAEV(coord *v3.Matrix, center int, neigh []int, out []float64) {
	for _, j := range neigh {
		d := Distance(coord, center, j)
		fc := Cutoff(d, C.cs.Rcr)
		k := 0
		for _, eta := range C.cs.EtaR {
			for _, shf := range C.cs.ShfR {
				out[k] += 0.25 * math.Exp(-eta*(d-shf)*(d-shf)) * fc
				k++
			}
		}
	}
}

//angularSubAEV accumulates into out the angular symmetry functions of
//the center atom over the given neighbor-pair list, for one
//conformation. out must have PerSpeciesAngularLen elements and be
//zeroed by the caller. The layout runs ShfZ fastest, then ShfA, Zeta
//and EtaA.
//
//The 0.95 factor on the cosine keeps acos away from the +-1
//singularities at near-collinear geometries; it is a small deliberate
//bias inherited from the reference implementation. Rounding can still
//push the argument out of [-1,1] on degenerate input, so it is also
//clamped; no non-finite value can leave this function.
func (C *Computer) angularSubAEV(coord *v3.Matrix, center int, prs [][2]int, out []float64) {
	var va, vb [3]float64
	for _, p := range prs {
		displacement(coord, center, p[0], va[:])
		displacement(coord, center, p[1], vb[:])
		d1 := vek.Norm(va[:])
		d2 := vek.Norm(vb[:])
		if d1 == 0 || d2 == 0 {
			continue //coincident atoms define no angle
		}
		arg := 0.95 * vek.Dot(va[:], vb[:]) / (d1 * d2)
		if arg > 1 {
			arg = 1
		} else if arg < -1 {
			arg = -1
		}
		angle := math.Acos(arg)
		fc := Cutoff(d1, C.cs.Rca) * Cutoff(d2, C.cs.Rca)
		davg := (d1 + d2) / 2
		k := 0
		for _, eta := range C.cs.EtaA {
			for _, zeta := range C.cs.Zeta {
				for _, shfa := range C.cs.ShfA {
					gauss := math.Exp(-eta*(davg-shfa)*(davg-shfa)) * fc
					for _, shfz := range C.cs.ShfZ {
						out[k] += 2 * math.Pow((1+math.Cos(angle-shfz))/2, zeta) * gauss
						k++
					}
				}
			}
		}
	}
}
