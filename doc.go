/*
 * doc.go, part of goaev.
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

/*
Package aev computes atomic environment vectors (AEVs): fixed-length
descriptors of the local geometric and chemical environment of each atom
in a molecule, of the kind used as input features for neural-network
interatomic potentials (Behler-Parrinello/ANI-style symmetry functions,
https://arxiv.org/pdf/1610.08935.pdf).

A Computer is bound once to a set of Constants (cutoff radii, Gaussian
grids and the species vocabulary) and afterwards acts as a pure,
stateless transform: given a batch of conformations sharing one atom
topology, it returns, per conformation, a radial and an angular
descriptor matrix with one row per atom. The descriptor length depends
only on the vocabulary size and the grid sizes, never on how many
neighbors each atom actually has, so the output can feed a
fixed-topology network directly.

Conformations are given as v3.Matrix coordinate sets (one row per atom)
and batches as slices of them, the same shapes used for trajectory
frames in goChem.
*/
package aev
