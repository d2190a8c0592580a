/*
 * aev.go, part of goaev.
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
	"fmt"

	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/goaev/v3"
)

//Computer evaluates AEVs for one fixed set of Constants. It keeps no
//per-call state, so a single Computer may serve concurrent calls from
//several goroutines, as long as each call gets its own inputs and
//outputs.
type Computer struct {
	cs     Constants
	slot   map[string]int //species symbol to vocabulary position
	prs    [][2]int       //species-slot pairs, in output order
	radLen int            //per-species radial sub-AEV length
	angLen int            //per-species-pair angular sub-AEV length
}

//New returns a Computer bound to cs. The constants are copied, so the
//caller's slices can be reused afterwards.
func New(cs Constants) (*Computer, error) {
	if err := cs.validate(); err != nil {
		errDecorate(err, "New")
		return nil, err
	}
	C := &Computer{
		cs:     cs.clone(),
		slot:   make(map[string]int, len(cs.Species)),
		prs:    speciesPairs(len(cs.Species)),
		radLen: len(cs.EtaR) * len(cs.ShfR),
		angLen: len(cs.EtaA) * len(cs.Zeta) * len(cs.ShfA) * len(cs.ShfZ),
	}
	for i, s := range cs.Species {
		C.slot[s] = i
	}
	return C, nil
}

//Species returns a copy of the vocabulary, in output order.
func (C *Computer) Species() []string {
	return append([]string{}, C.cs.Species...)
}

//PerSpeciesRadialLen returns the length of one radial sub-AEV block,
//i.e. len(EtaR)*len(ShfR).
func (C *Computer) PerSpeciesRadialLen() int { return C.radLen }

//PerSpeciesAngularLen returns the length of one angular sub-AEV block,
//i.e. len(EtaA)*len(Zeta)*len(ShfA)*len(ShfZ).
func (C *Computer) PerSpeciesAngularLen() int { return C.angLen }

//RadialLen returns the length of the full per-atom radial AEV: one
//block per species in the vocabulary, present in the system or not.
func (C *Computer) RadialLen() int { return len(C.cs.Species) * C.radLen }

//AngularLen returns the length of the full per-atom angular AEV: one
//block per unordered species pair with repetition, C(S+1,2) of them.
func (C *Computer) AngularLen() int {
	return len(C.prs) * C.angLen
}

//AEVs computes the radial and angular AEVs for a batch of
//conformations sharing one topology. coords holds the conformations,
//all with the same number of atoms, and species the per-atom species
//labels, shared by the whole batch. It returns one radial
//(atoms x RadialLen) and one angular (atoms x AngularLen) matrix per
//conformation. Atoms whose species is not in the vocabulary get their
//descriptors computed but contribute no neighbors of any known
//species; use AEVsStrict to reject them instead.
//
//Neighbor selection is done once for the whole batch, as the union
//over conformations of the pairs within each cutoff. Conformations
//where a unioned-in neighbor is out of range are unaffected, since
//such a neighbor's cutoff weight there is exactly zero; batched
//results are numerically identical to computing each conformation
//alone.
func (C *Computer) AEVs(coords []*v3.Matrix, species []string) (radial, angular []*mat.Dense, err error) {
	return C.aevs(coords, species, false)
}

//AEVsStrict is AEVs, except that a species label absent from the
//vocabulary is an error rather than a silent zero fill.
func (C *Computer) AEVsStrict(coords []*v3.Matrix, species []string) (radial, angular []*mat.Dense, err error) {
	return C.aevs(coords, species, true)
}

func (C *Computer) aevs(coords []*v3.Matrix, species []string, strict bool) ([]*mat.Dense, []*mat.Dense, error) {
	if err := C.check(coords, species); err != nil {
		errDecorate(err, "AEVs")
		return nil, nil, err
	}
	sel, err := C.buildSelection(coords, species, strict)
	if err != nil {
		errDecorate(err, "AEVs")
		return nil, nil, err
	}
	radial, angular := C.outputs(len(coords), sel.atoms)
	g := newGrouping(len(C.cs.Species))
	for i := 0; i < sel.atoms; i++ {
		C.atomAEV(coords, sel, g, i, radial, angular)
	}
	return radial, angular, nil
}

//atomAEV fills row i of every output matrix: the per-species radial
//blocks in vocabulary order, then the per-species-pair angular blocks
//in speciesPairs order. A freshly allocated output row is all zeros,
//so a species (or pair) with an empty neighbor list needs no work at
//all: the zero block is the sum over the empty set.
func (C *Computer) atomAEV(coords []*v3.Matrix, sel *selection, g *grouping, i int, radial, angular []*mat.Dense) {
	g.regroup(sel, i)
	for s := range C.cs.Species {
		off := s * C.radLen
		for b, coord := range coords {
			C.radialSubAEV(coord, i, g.rad[s], radial[b].RawRowView(i)[off:off+C.radLen])
		}
	}
	for pi, pr := range C.prs {
		g.prs = pairList(g.ang[pr[0]], g.ang[pr[1]], pr[0] == pr[1], g.prs)
		off := pi * C.angLen
		for b, coord := range coords {
			C.angularSubAEV(coord, i, g.prs, angular[b].RawRowView(i)[off:off+C.angLen])
		}
	}
}

//outputs allocates the zeroed result matrices, one pair per
//conformation.
func (C *Computer) outputs(conformations, atoms int) (radial, angular []*mat.Dense) {
	radial = make([]*mat.Dense, conformations)
	angular = make([]*mat.Dense, conformations)
	for b := range radial {
		radial[b] = mat.NewDense(atoms, C.RadialLen(), nil)
		angular[b] = mat.NewDense(atoms, C.AngularLen(), nil)
	}
	return radial, angular
}

//check verifies the call input contract: a non-empty batch of Nx3
//conformations with one shared atom count, matched by the species
//slice. Nothing is computed if it fails.
func (C *Computer) check(coords []*v3.Matrix, species []string) error {
	if len(coords) == 0 {
		return &CError{"Empty batch: no conformations given", []string{"check"}}
	}
	for b, coord := range coords {
		if coord == nil {
			return &CError{fmt.Sprintf("Conformation %d is nil", b), []string{"check"}}
		}
		r, c := coord.Dims()
		if c != 3 {
			return &CError{fmt.Sprintf("Conformation %d has %d columns, want 3", b, c), []string{"check"}}
		}
		if r0, _ := coords[0].Dims(); r != r0 {
			return &CError{fmt.Sprintf("Conformation %d has %d atoms, conformation 0 has %d", b, r, r0), []string{"check"}}
		}
	}
	if atoms, _ := coords[0].Dims(); len(species) != atoms {
		return &CError{fmt.Sprintf("Got %d species labels for %d atoms", len(species), atoms), []string{"check"}}
	}
	return nil
}

//errDecorate adds the caller's name to err if it carries the
//decoration facility of this library, and does nothing otherwise.
func errDecorate(err error, caller string) {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
}
