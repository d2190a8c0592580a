/*
 * neighbors.go, part of goaev.
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
	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/goaev/v3"
)

//selection holds everything about a batch that is shared, read-only,
//by all center atoms: the two adjacency relations and the vocabulary
//slot of each atom. It is built once per call and never written to
//afterwards, so concurrent workers can share it.
type selection struct {
	atoms int
	inRcr []bool //flattened atoms x atoms adjacency within Rcr
	inRca []bool //same, within Rca
	slot  []int  //per atom, its index in the vocabulary, -1 if unlisted
}

//adjacent reports whether j is a radial (rad==true) or angular
//neighbor of i.
func (sel *selection) adjacent(i, j int, rad bool) bool {
	if rad {
		return sel.inRcr[i*sel.atoms+j]
	}
	return sel.inRca[i*sel.atoms+j]
}

//buildSelection builds the selection for a batch. A pair (i,j) is marked
//adjacent if its distance is within the cutoff in at least one
//conformation of the batch: the union over conformations lets every
//conformation reuse one shared neighbor index list, and any neighbor
//that is actually out of range in a given conformation is erased there
//by the exact zero of Cutoff. Self pairs are never marked.
func (C *Computer) buildSelection(coords []*v3.Matrix, species []string, strict bool) (*selection, error) {
	atoms := coords[0].NVecs()
	sel := &selection{
		atoms: atoms,
		inRcr: make([]bool, atoms*atoms),
		inRca: make([]bool, atoms*atoms),
		slot:  make([]int, atoms),
	}
	for i, s := range species {
		pos, ok := C.slot[s]
		if !ok {
			if strict {
				return nil, &CError{"Unknown species: " + s, []string{"select"}}
			}
			pos = -1 //the atom contributes no neighbors of any known species
		}
		sel.slot[i] = pos
	}
	var dm *mat.SymDense
	for _, coord := range coords {
		dm = DistanceMatrix(coord, dm)
		for i := 0; i < atoms; i++ {
			for j := i + 1; j < atoms; j++ {
				d := dm.At(i, j)
				if d <= C.cs.Rcr {
					sel.inRcr[i*atoms+j] = true
					sel.inRcr[j*atoms+i] = true
				}
				if d <= C.cs.Rca {
					sel.inRca[i*atoms+j] = true
					sel.inRca[j*atoms+i] = true
				}
			}
		}
	}
	return sel, nil
}

//grouping is per-worker scratch: for the center atom currently being
//processed, the neighbor index lists of each vocabulary slot, for each
//of the two cutoffs, plus the neighbor-pair list of the species pair
//currently being evaluated. The inner slices are truncated and refilled
//for every center atom instead of reallocated.
type grouping struct {
	rad [][]int //radial neighbors, one list per vocabulary slot
	ang [][]int //angular neighbors, likewise
	prs [][2]int
}

func newGrouping(nspecies int) *grouping {
	return &grouping{
		rad: make([][]int, nspecies),
		ang: make([][]int, nspecies),
	}
}

//regroup fills g with the per-species neighbor lists of center atom i.
//Atoms whose species is not in the vocabulary (slot -1) are skipped,
//which is what makes the unlisted-species behavior a silent zero fill.
//A species with no atoms in the system simply keeps an empty list.
func (g *grouping) regroup(sel *selection, i int) {
	for s := range g.rad {
		g.rad[s] = g.rad[s][:0]
		g.ang[s] = g.ang[s][:0]
	}
	for j := 0; j < sel.atoms; j++ {
		s := sel.slot[j]
		if s < 0 {
			continue
		}
		if sel.adjacent(i, j, true) {
			g.rad[s] = append(g.rad[s], j)
		}
		if sel.adjacent(i, j, false) {
			g.ang[s] = append(g.ang[s], j)
		}
	}
}
