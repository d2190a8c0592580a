/*
 * conc.go, part of goaev.
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
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/goaev/v3"
)

//AEVsConc is AEVs with the work split over center atoms, which are
//mutually independent. Each worker goroutine gets its own scratch
//grouping and writes only its own output rows, so no synchronization
//is needed beyond waiting for them; the result is numerically
//identical to AEVs. gorut is the number of workers; if gorut[0] is
//absent or non-positive, runtime.NumCPU() workers are used.
func (C *Computer) AEVsConc(coords []*v3.Matrix, species []string, gorut ...int) (radial, angular []*mat.Dense, err error) {
	if err := C.check(coords, species); err != nil {
		errDecorate(err, "AEVsConc")
		return nil, nil, err
	}
	sel, err := C.buildSelection(coords, species, false)
	if err != nil {
		errDecorate(err, "AEVsConc")
		return nil, nil, err
	}
	workers := runtime.NumCPU()
	if len(gorut) > 0 && gorut[0] > 0 {
		workers = gorut[0]
	}
	if workers > sel.atoms {
		workers = sel.atoms
	}
	radial, angular = C.outputs(len(coords), sel.atoms)
	atomsc := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := newGrouping(len(C.cs.Species))
			for i := range atomsc {
				C.atomAEV(coords, sel, g, i, radial, angular)
			}
		}()
	}
	for i := 0; i < sel.atoms; i++ {
		atomsc <- i
	}
	close(atomsc)
	wg.Wait()
	return radial, angular, nil
}
