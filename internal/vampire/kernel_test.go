// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package vampire

import "testing"

func TestSqrtFloor(t *testing.T) {
	cases := []struct {
		x     Vamp
		floor Fang
	}{
		{0, 0},
		{1, 1},
		{4, 2},
		{1260, 35},
		{1296, 36},
	}
	for _, c := range cases {
		if got := sqrtFloor(c.x); got != c.floor {
			t.Fatalf("sqrtFloor(%d) = %d, want %d", c.x, got, c.floor)
		}
	}
}

func TestDisqualifyMult(t *testing.T) {
	if !disqualifyMult(10) {
		t.Fatalf("disqualifyMult(10): 10%%9 == 1, expected disqualified")
	}
	if disqualifyMult(60) {
		t.Fatalf("disqualifyMult(60): 60%%9 == 6, expected not disqualified")
	}
}

func TestCongruenceCheckKnownPair(t *testing.T) {
	if congruenceCheck(60, 21) {
		t.Fatalf("congruenceCheck(60, 21) disqualified a genuine vampire factorization")
	}
}

func searchInterval(t *testing.T, min, max Vamp) []Vamp {
	t.Helper()
	part := NewPartitioner()
	width := part.CacheWidth(min, max)
	cache := NewDigitCache(width)

	var found []Vamp
	n := divRoof(DigitLength(max), 2)
	plan := part.Plan(n)
	fmax := Fang(PowV(n) - 1)

	kernel := NewKernel(cache, plan)
	buf := NewResultBuffer(8)
	kernel.Search(min, max, fmax, buf)
	found = append(found, buf.products...)
	return found
}

func TestSearchFindsKnownVampire(t *testing.T) {
	found := searchInterval(t, 1260, 1260)
	if len(found) != 1 || found[0] != 1260 {
		t.Fatalf("Search([1260, 1260]) = %v, want exactly one hit: 1260", found)
	}
}

func TestSearchExcludesNonVampireSingleton(t *testing.T) {
	found := searchInterval(t, 1261, 1261)
	if len(found) != 0 {
		t.Fatalf("Search([1261, 1261]) = %v, want no hits", found)
	}
}

func TestSearchFindsSecondFourDigitVampire(t *testing.T) {
	// 1395 = 15 * 93: digits {1,3,9,5} match {1,5} + {9,3}.
	found := searchInterval(t, 1395, 1395)
	if len(found) != 1 || found[0] != 1395 {
		t.Fatalf("Search([1395, 1395]) = %v, want exactly one hit: 1395", found)
	}
}

func TestSearchFourDigitRangeCount(t *testing.T) {
	// The four-digit vampire numbers are 1260, 1395, 1435, 1530, 1827,
	// 2187, 6880; each has exactly one fang pair, so the raw result buffer
	// holds each product once.
	found := searchInterval(t, 1000, 9999)
	want := map[Vamp]bool{1260: true, 1395: true, 1435: true, 1530: true, 1827: true, 2187: true, 6880: true}
	if len(found) != len(want) {
		t.Fatalf("Search([1000, 9999]) found %d distinct products, want %d: %v", len(found), len(want), found)
	}
	for _, v := range found {
		if !want[v] {
			t.Fatalf("Search([1000, 9999]) returned unexpected product %d", v)
		}
	}
}
