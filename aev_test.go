/*
 * aev_test.go, part of goaev.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/goaev/v3"
)

//a small constant set with single-element grids, so expected values
//can be written in closed form.
func tinyConstants() Constants {
	return Constants{
		Rcr:     5.0,
		Rca:     5.0,
		EtaR:    []float64{16.0},
		ShfR:    []float64{1.0},
		EtaA:    []float64{1.0},
		Zeta:    []float64{4.0},
		ShfA:    []float64{0.5},
		ShfZ:    []float64{0.7},
		Species: []string{"H"},
	}
}

func coords(t *testing.T, data []float64) *v3.Matrix {
	m, err := v3.NewMatrix(data)
	require.NoError(t, err)
	return m
}

//methane, C-H distance about 1.089 A.
func methane(t *testing.T) (*v3.Matrix, []string) {
	c := coords(t, []float64{
		0, 0, 0,
		0.6287, 0.6287, 0.6287,
		-0.6287, -0.6287, 0.6287,
		-0.6287, 0.6287, -0.6287,
		0.6287, -0.6287, -0.6287,
	})
	return c, []string{"C", "H", "H", "H", "H"}
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name   string
		mangle func(*Constants)
	}{
		{"zero radial cutoff", func(cs *Constants) { cs.Rcr = 0 }},
		{"negative angular cutoff", func(cs *Constants) { cs.Rca = -1 }},
		{"empty EtaR", func(cs *Constants) { cs.EtaR = nil }},
		{"empty ShfZ", func(cs *Constants) { cs.ShfZ = []float64{} }},
		{"empty vocabulary", func(cs *Constants) { cs.Species = nil }},
		{"duplicated species", func(cs *Constants) { cs.Species = []string{"H", "C", "H"} }},
	}
	for _, c := range cases {
		cs := Defaults()
		c.mangle(&cs)
		_, err := New(cs)
		assert.Error(t, err, c.name)
	}
	_, err := New(Defaults())
	assert.NoError(t, err)
}

func TestLengths(t *testing.T) {
	C, err := New(Defaults())
	require.NoError(t, err)
	assert.Equal(t, 16, C.PerSpeciesRadialLen())
	assert.Equal(t, 32, C.PerSpeciesAngularLen())
	assert.Equal(t, 4*16, C.RadialLen())
	assert.Equal(t, 10*32, C.AngularLen()) //C(4+1,2)=10 species pairs
	assert.Equal(t, []string{"H", "C", "N", "O"}, C.Species())
}

//Output dimensions depend only on the vocabulary and grid sizes, never
//on the actual neighbor counts.
func TestOutputShapes(t *testing.T) {
	C, err := New(Defaults())
	require.NoError(t, err)
	m, sp := methane(t)
	batch := []*v3.Matrix{m, m, m}
	radial, angular, err := C.AEVs(batch, sp)
	require.NoError(t, err)
	require.Len(t, radial, 3)
	require.Len(t, angular, 3)
	for b := range batch {
		r, c := radial[b].Dims()
		assert.Equal(t, 5, r)
		assert.Equal(t, C.RadialLen(), c)
		r, c = angular[b].Dims()
		assert.Equal(t, 5, r)
		assert.Equal(t, C.AngularLen(), c)
	}
}

//Two H atoms 1.0 apart: the single radial sub-feature must equal
//0.25*exp(-16*(1-1)^2)*fc(1,5) = 0.25*fc(1,5).
func TestRadialClosedForm(t *testing.T) {
	C, err := New(tinyConstants())
	require.NoError(t, err)
	m := coords(t, []float64{0, 0, 0, 1, 0, 0})
	radial, angular, err := C.AEVs([]*v3.Matrix{m}, []string{"H", "H"})
	require.NoError(t, err)
	want := 0.25 * (0.5*math.Cos(math.Pi*1.0/5.0) + 0.5)
	assert.InDelta(t, want, radial[0].At(0, 0), 1e-12)
	assert.InDelta(t, want, radial[0].At(1, 0), 1e-12) //by symmetry
	//a single neighbor can not form an angular pair
	assert.Zero(t, angular[0].At(0, 0))
	assert.Zero(t, angular[0].At(1, 0))
}

//One center with two neighbors at 90 degrees, both 1.2 away: the
//angular sub-feature must match direct substitution into the formula.
func TestAngularClosedForm(t *testing.T) {
	cs := tinyConstants()
	C, err := New(cs)
	require.NoError(t, err)
	m := coords(t, []float64{
		0, 0, 0,
		1.2, 0, 0,
		0, 1.2, 0,
	})
	_, angular, err := C.AEVs([]*v3.Matrix{m}, []string{"H", "H", "H"})
	require.NoError(t, err)
	//dot product is 0, so the 0.95 factor drops out and the angle is
	//exactly pi/2
	fc := 0.5*math.Cos(math.Pi*1.2/cs.Rca) + 0.5
	want := 2 * math.Pow((1+math.Cos(math.Pi/2-cs.ShfZ[0]))/2, cs.Zeta[0]) *
		math.Exp(-cs.EtaA[0]*math.Pow((1.2+1.2)/2-cs.ShfA[0], 2)) * fc * fc
	assert.InDelta(t, want, angular[0].At(0, 0), 1e-12)
}

func TestCutoffBoundary(t *testing.T) {
	for _, rc := range []float64{0.5, 1, 3.5, 5.2} {
		assert.Equal(t, 0.0, Cutoff(rc, rc))
		assert.Equal(t, 0.0, Cutoff(rc+1, rc))
		assert.Equal(t, 1.0, Cutoff(0, rc))
	}
	//monotonically non-increasing on [0,rc]
	prev := 1.0
	for r := 0.0; r <= 5.0; r += 0.01 {
		fc := Cutoff(r, 5.0)
		assert.LessOrEqual(t, fc, prev)
		prev = fc
	}
}

//A species with no qualifying neighbor contributes an exact zero
//block, in both descriptors.
func TestZeroFill(t *testing.T) {
	cs := tinyConstants()
	cs.Species = []string{"H", "C"} //no carbon in the system
	C, err := New(cs)
	require.NoError(t, err)
	m := coords(t, []float64{0, 0, 0, 1, 0, 0, 0, 1, 0})
	radial, angular, err := C.AEVs([]*v3.Matrix{m}, []string{"H", "H", "H"})
	require.NoError(t, err)
	rl := C.PerSpeciesRadialLen()
	al := C.PerSpeciesAngularLen()
	for i := 0; i < 3; i++ {
		//the carbon radial block is slot 1
		for k := rl; k < 2*rl; k++ {
			assert.Zero(t, radial[0].At(i, k))
		}
		//angular pairs are (H,H),(H,C),(C,C); the two with carbon
		//must be zero blocks
		for k := al; k < 3*al; k++ {
			assert.Zero(t, angular[0].At(i, k))
		}
		//the H blocks are not zero
		assert.NotZero(t, radial[0].At(i, 0))
	}
	assert.NotZero(t, angular[0].At(0, 0)) //atom 0 sees an H,H pair
}

//Reordering same-species neighbors can not change the descriptor of
//the center atom: the sums are order independent.
func TestPermutationInvariance(t *testing.T) {
	C, err := New(Defaults())
	require.NoError(t, err)
	m, sp := methane(t)
	radial, angular, err := C.AEVs([]*v3.Matrix{m}, sp)
	require.NoError(t, err)
	m2, _ := methane(t)
	m2.SwapVecs(1, 3) //both hydrogens
	radial2, angular2, err := C.AEVs([]*v3.Matrix{m2}, sp)
	require.NoError(t, err)
	for k := 0; k < C.RadialLen(); k++ {
		assert.InDelta(t, radial[0].At(0, k), radial2[0].At(0, k), 1e-12)
	}
	for k := 0; k < C.AngularLen(); k++ {
		assert.InDelta(t, angular[0].At(0, k), angular2[0].At(0, k), 1e-12)
	}
}

//The key regression for the union neighbor list: a batch must
//reproduce, exactly, what each conformation gives when computed alone
//with its own exact neighbor list, even when the conformations have
//different in-range pairs.
func TestBatchingEquivalence(t *testing.T) {
	C, err := New(tinyConstants())
	require.NoError(t, err)
	sp := []string{"H", "H", "H"}
	near := coords(t, []float64{0, 0, 0, 1, 0, 0, 0, 1.1, 0})
	far := coords(t, []float64{0, 0, 0, 6, 0, 0, 0, 1.1, 0}) //atom 1 beyond both cutoffs
	radB, angB, err := C.AEVs([]*v3.Matrix{near, far}, sp)
	require.NoError(t, err)
	for b, single := range []*v3.Matrix{near, far} {
		radS, angS, err := C.AEVs([]*v3.Matrix{single}, sp)
		require.NoError(t, err)
		assert.True(t, mat.Equal(radS[0], radB[b]), "radial conformation %d", b)
		assert.True(t, mat.Equal(angS[0], angB[b]), "angular conformation %d", b)
	}
}

//A batch of B identical conformations is the single result B times.
func TestIdenticalBatch(t *testing.T) {
	C, err := New(Defaults())
	require.NoError(t, err)
	m, sp := methane(t)
	radS, angS, err := C.AEVs([]*v3.Matrix{m}, sp)
	require.NoError(t, err)
	radB, angB, err := C.AEVs([]*v3.Matrix{m, m, m, m}, sp)
	require.NoError(t, err)
	for b := 0; b < 4; b++ {
		assert.True(t, mat.Equal(radS[0], radB[b]))
		assert.True(t, mat.Equal(angS[0], angB[b]))
	}
}

func TestConcMatchesSerial(t *testing.T) {
	C, err := New(Defaults())
	require.NoError(t, err)
	m, sp := methane(t)
	batch := []*v3.Matrix{m, m}
	radS, angS, err := C.AEVs(batch, sp)
	require.NoError(t, err)
	for _, workers := range []int{1, 2, 3, 0} {
		radC, angC, err := C.AEVsConc(batch, sp, workers)
		require.NoError(t, err)
		for b := range batch {
			assert.True(t, mat.Equal(radS[b], radC[b]), "radial, %d workers", workers)
			assert.True(t, mat.Equal(angS[b], angC[b]), "angular, %d workers", workers)
		}
	}
}

//An unlisted species is a silent zero fill by default: the atom keeps
//its own descriptor rows but feeds no species group. Strict mode
//rejects it instead.
func TestUnknownSpecies(t *testing.T) {
	C, err := New(tinyConstants())
	require.NoError(t, err)
	m := coords(t, []float64{0, 0, 0, 1, 0, 0})
	radial, _, err := C.AEVs([]*v3.Matrix{m}, []string{"H", "X"})
	require.NoError(t, err)
	//atom 0 has only the unlisted neighbor, so its H block is zero
	assert.Zero(t, radial[0].At(0, 0))
	//atom 1 still gets its own environment, which contains an H
	assert.NotZero(t, radial[0].At(1, 0))

	_, _, err = C.AEVsStrict([]*v3.Matrix{m}, []string{"H", "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "X")
}

func TestShapeMismatch(t *testing.T) {
	C, err := New(tinyConstants())
	require.NoError(t, err)
	two := coords(t, []float64{0, 0, 0, 1, 0, 0})
	three := coords(t, []float64{0, 0, 0, 1, 0, 0, 0, 1, 0})
	_, _, err = C.AEVs(nil, nil)
	assert.Error(t, err, "empty batch")
	_, _, err = C.AEVs([]*v3.Matrix{two, three}, []string{"H", "H"})
	assert.Error(t, err, "mixed atom counts")
	_, _, err = C.AEVs([]*v3.Matrix{two}, []string{"H", "H", "H"})
	assert.Error(t, err, "species length")
	_, _, err = C.AEVs([]*v3.Matrix{two, nil}, []string{"H", "H"})
	assert.Error(t, err, "nil conformation")
}

func TestSpeciesPairOrder(t *testing.T) {
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 2}, {2, 2}}, speciesPairs(3))
	assert.Equal(t, [][2]int{{0, 0}}, speciesPairs(1))
}

func TestPairList(t *testing.T) {
	var scratch [][2]int
	scratch = pairList([]int{3, 5, 8}, nil, true, scratch)
	assert.Equal(t, [][2]int{{3, 5}, {3, 8}, {5, 8}}, scratch)
	scratch = pairList([]int{3}, nil, true, scratch)
	assert.Empty(t, scratch, "a same-species pair needs two neighbors")
	scratch = pairList([]int{1, 2}, []int{7}, false, scratch)
	assert.Equal(t, [][2]int{{1, 7}, {2, 7}}, scratch)
	scratch = pairList([]int{1, 2}, nil, false, scratch)
	assert.Empty(t, scratch)
}

func TestDistanceMatrix(t *testing.T) {
	m := coords(t, []float64{0, 0, 0, 3, 4, 0, 0, 0, 2})
	dm := DistanceMatrix(m, nil)
	assert.Equal(t, 0.0, dm.At(1, 1))
	assert.InDelta(t, 5.0, dm.At(0, 1), 1e-12)
	assert.InDelta(t, 5.0, dm.At(1, 0), 1e-12)
	assert.InDelta(t, 2.0, dm.At(0, 2), 1e-12)
	dst := SomeDistances(m, 0, []int{2, 1}, nil)
	assert.InDelta(t, 2.0, dst[0], 1e-12)
	assert.InDelta(t, 5.0, dst[1], 1e-12)
}

//Near-collinear geometry: the acos argument would graze 1 without the
//clamp; nothing non-finite may come out.
func TestDegenerateGeometryStaysFinite(t *testing.T) {
	C, err := New(tinyConstants())
	require.NoError(t, err)
	m := coords(t, []float64{
		0, 0, 0,
		1, 0, 0,
		2, 1e-9, 0, //almost collinear with the first neighbor
	})
	radial, angular, err := C.AEVs([]*v3.Matrix{m}, []string{"H", "H", "H"})
	require.NoError(t, err)
	for _, out := range []*mat.Dense{radial[0], angular[0]} {
		r, c := out.Dims()
		for i := 0; i < r; i++ {
			for k := 0; k < c; k++ {
				assert.False(t, math.IsNaN(out.At(i, k)))
				assert.False(t, math.IsInf(out.At(i, k), 0))
			}
		}
	}
}

func BenchmarkAEVs(b *testing.B) {
	C, err := New(Defaults())
	if err != nil {
		b.Fatal(err)
	}
	m, _ := v3.NewMatrix([]float64{
		0, 0, 0,
		0.6287, 0.6287, 0.6287,
		-0.6287, -0.6287, 0.6287,
		-0.6287, 0.6287, -0.6287,
		0.6287, -0.6287, -0.6287,
	})
	sp := []string{"C", "H", "H", "H", "H"}
	batch := []*v3.Matrix{m, m, m, m}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := C.AEVs(batch, sp)
		if err != nil {
			b.Fatal(err)
		}
	}
}
