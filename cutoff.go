/*
 * cutoff.go, part of goaev.
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

import "math"

//Cutoff is the cosine cutoff function 0.5*cos(pi*r/rc)+0.5 for r<=rc,
//and exactly 0 beyond rc. It is 1 at r=0, decreases monotonically on
//[0,rc] and reaches 0 continuously at r=rc. The exact zero beyond the
//cutoff is what lets a union neighbor list over a batch stay correct:
//a neighbor carried in from another conformation contributes nothing
//here (see Computer.AEVs).
func Cutoff(r, rc float64) float64 {
	if r >= rc {
		return 0 //exact, no cos rounding at the boundary
	}
	return 0.5*math.Cos(math.Pi*r/rc) + 0.5
}
