/*
 * gocoords.go, part of goaev.
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

package v3

import (
	"fmt"
	"strings"

	"github.com/viterin/vek"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	m, _ := NewMatrix(f) //the slice length is hardcoded to be divisible by 3, no error possible
	return m
}

//METHODS

//NVecs returns the number of vecs in F. Panics if the receiver
//does not have 3 columns.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	for k := 0; k < 3; k++ {
		vi := F.At(i, k)
		F.Set(i, k, F.At(j, k))
		F.Set(j, k, vi)
	}
}

//SomeVecs puts in the receiver a matrix containing all the ith vectors of
//matrix A, where i are the numbers in clist. The vectors are in the same
//order as the clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr != len(clist) || ar < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		for j := 0; j < ac; j++ {
			F.Set(key, j, A.At(val, j))
		}
	}
}

//SomeVecsSafe does the same as SomeVecs, but returns an error
//instead of panicking. The return must stay named: the deferred
//recover writes to it after the panic has already abandoned the
//function body.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case PanicMsg:
				err = Error{string(e), []string{"SomeVecsSafe"}, true}
			default:
				panic(r)
			}
		}
	}()
	F.SomeVecs(A, clist)
	return err
}

//SetVecs sets the vectors with index n = each value on clist, in the
//receiver, to the n vector of A.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr < len(clist) || ar < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		for j := 0; j < ac; j++ {
			F.Set(val, j, A.At(key, j))
		}
	}
}

//AddVec adds the vector vec to each vector of the matrix A, putting
//the result on the receiver. Panics if matrices are mismatched. It will
//not work if A and vec reference the same Matrix.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		j := A.VecView(i)
		f := F.VecView(i)
		f.Add(j, vec)
	}
}

//SubVec subtracts the vector vec from each vector of the matrix A, putting
//the result on the receiver. Panics if matrices are mismatched. It will not
//work if A and vec reference the same Matrix.
func (F *Matrix) SubVec(A, vec *Matrix) {
	//the embedded Dense is passed explicitly: handing the wrapper to a
	//promoted gonum method makes its aliasing check see two distinct
	//matrices over one backing region, and panic.
	vec.Dense.Scale(-1, vec.Dense)
	F.AddVec(A, vec)
	vec.Dense.Scale(-1, vec.Dense)
}

//Cross puts the cross product of the first vecs of a and b in the first vec
//of F. Panics on error.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

//Dot returns the dot product between the first vecs of F and B.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() < 1 || B.NVecs() < 1 {
		panic(ErrNotEnoughElements)
	}
	return vek.Dot(F.RawRowView(0), B.RawRowView(0))
}

//VecNorm returns the Euclidean norm of the ith vec of F.
func (F *Matrix) VecNorm(i int) float64 {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return vek.Norm(F.RawRowView(i))
}

//VecDist returns the Euclidean distance between the ith and jth vecs of F.
func (F *Matrix) VecDist(i, j int) float64 {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return vek.Distance(F.RawRowView(i), F.RawRowView(j))
}

//Unit puts in the receiver the unit vector pointing in the same
//direction as the first vec of A.
func (F *Matrix) Unit(A *Matrix) {
	if A.Dense != F.Dense {
		F.Copy(A)
	}
	norm := 1.0 / F.VecNorm(0)
	F.Dense.Scale(norm, F.Dense) //see SubVec on why the embedded Dense
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		if i == 0 {
			v[i+1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
			continue
		} else if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
			continue
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}
