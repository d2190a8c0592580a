/*
 * geometric.go, part of goaev.
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
	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/goaev/v3"
)

//Distance returns the Euclidean distance between the ith and jth
//vectors of coord. The self-distance Distance(coord,i,i) is 0; it is
//the neighbor selection, not this function, that keeps atoms out of
//their own environment.
func Distance(coord *v3.Matrix, i, j int) float64 {
	return vek.Distance(coord.RawRowView(i), coord.RawRowView(j))
}

//DistanceMatrix puts in dm the all-pairs distance matrix of coord.
//If dm is nil, or its size does not match, a new matrix is allocated.
//The (possibly new) matrix is returned.
func DistanceMatrix(coord *v3.Matrix, dm *mat.SymDense) *mat.SymDense {
	atoms := coord.NVecs()
	if dm == nil || dm.SymmetricDim() != atoms {
		dm = mat.NewSymDense(atoms, nil)
	}
	for i := 0; i < atoms; i++ {
		dm.SetSym(i, i, 0)
		ri := coord.RawRowView(i)
		for j := i + 1; j < atoms; j++ {
			dm.SetSym(i, j, vek.Distance(ri, coord.RawRowView(j)))
		}
	}
	return dm
}

//SomeDistances puts in dst the distances from the center atom to each
//atom whose index is in clist, in the order of clist, growing dst as
//needed. This is the restricted counterpart of DistanceMatrix, used to
//evaluate sub-AEVs against an already-selected neighbor list.
func SomeDistances(coord *v3.Matrix, center int, clist []int, dst []float64) []float64 {
	dst = dst[:0]
	ci := coord.RawRowView(center)
	for _, j := range clist {
		dst = append(dst, vek.Distance(ci, coord.RawRowView(j)))
	}
	return dst
}

//displacement puts the vector from atom i to atom j of coord (j minus
//i, neighbor minus center) in dst, which must have length 3.
func displacement(coord *v3.Matrix, i, j int, dst []float64) {
	ri := coord.RawRowView(i)
	rj := coord.RawRowView(j)
	for k := 0; k < 3; k++ {
		dst[k] = rj[k] - ri[k]
	}
}
