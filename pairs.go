/*
 * pairs.go, part of goaev.
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

//speciesPairs enumerates the unordered pairs, with repetition, of the
//vocabulary slots 0..nspecies-1: (0,0),(0,1),...,(0,n-1),(1,1),... The
//order is fixed and defines the block layout of the angular AEV.
func speciesPairs(nspecies int) [][2]int {
	prs := make([][2]int, 0, nspecies*(nspecies+1)/2)
	for j := 0; j < nspecies; j++ {
		for k := j; k < nspecies; k++ {
			prs = append(prs, [2]int{j, k})
		}
	}
	return prs
}

//pairList fills dst with the neighbor index pairs for one species pair
//of one center atom, reusing dst's storage. For a same-species pair it
//generates the 2-element combinations, without repetition or order, of
//the single list (so it needs at least 2 neighbors); for a cross pair,
//the cartesian product of both lists. An empty result is valid and
//means the species pair contributes a zero block: the sum over no
//pairs is zero without any special casing downstream.
func pairList(ja, ka []int, same bool, dst [][2]int) [][2]int {
	dst = dst[:0]
	if same {
		for x := 0; x < len(ja); x++ {
			for y := x + 1; y < len(ja); y++ {
				dst = append(dst, [2]int{ja[x], ja[y]})
			}
		}
		return dst
	}
	for _, x := range ja {
		for _, y := range ka {
			dst = append(dst, [2]int{x, y})
		}
	}
	return dst
}
