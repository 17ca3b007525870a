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

func TestPartWidthsSumsToLength(t *testing.T) {
	for _, length := range []Length{1, 2, 3, 4, 5, 10, 11} {
		for _, parts := range []int{1, 2, 3} {
			widths := partWidths(length, parts)
			if len(widths) != parts {
				t.Fatalf("partWidths(%d, %d): got %d widths, want %d", length, parts, len(widths), parts)
			}
			var sum Length
			for _, w := range widths {
				sum += w
			}
			if sum != length {
				t.Fatalf("partWidths(%d, %d): widths sum to %d, want %d", length, parts, sum, length)
			}
		}
	}
}

func TestDivRoof(t *testing.T) {
	cases := []struct{ a, b, want Length }{
		{4, 2, 2},
		{5, 2, 3},
		{1, 1, 1},
		{0, 3, 0},
	}
	for _, c := range cases {
		if got := divRoof(c.a, c.b); got != c.want {
			t.Fatalf("divRoof(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestPartitionerPlanMatchesLengthClass(t *testing.T) {
	p := NewPartitioner()
	plan := p.Plan(3)

	var fangSum, productSum Length
	for _, w := range plan.Fang {
		fangSum += w
	}
	for _, w := range plan.Product {
		productSum += w
	}
	if fangSum != 3 {
		t.Fatalf("fang widths sum to %d, want 3", fangSum)
	}
	if productSum != 6 {
		t.Fatalf("product widths sum to %d, want 6", productSum)
	}
}

func TestCacheWidthCoversEveryLengthClass(t *testing.T) {
	p := NewPartitioner()
	w := p.CacheWidth(1000, 999999)
	if w == 0 {
		t.Fatalf("CacheWidth returned 0 for a nonzero interval")
	}

	for n := Length(1); n <= 3; n++ {
		plan := p.Plan(n)
		if m := maxLength(plan.Fang); m > w {
			t.Fatalf("CacheWidth %d doesn't cover fang width %d for n=%d", w, m, n)
		}
		if m := maxLength(plan.Product); m > w {
			t.Fatalf("CacheWidth %d doesn't cover product width %d for n=%d", w, m, n)
		}
	}
}
