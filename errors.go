/*
 * errors.go, part of goaev.
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

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows to add and retrieve info from the
//error, without changing its type or wrapping it around something else.
//The decorate slice should contain a list of functions in the calling
//stack, plus, for each function, any relevant information, or nothing.
//If information is to be added to an element of the slice, it should be
//in this format: "FunctionName: Extra info". If passed an empty string,
//Decorate should just return the current value, not add the empty string
//to the slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete error type for the package. All computation in
//the package is pure and deterministic, so every CError is final: a
//retry would reproduce it.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
