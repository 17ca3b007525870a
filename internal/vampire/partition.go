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

// Method selects one of the partitioner's window-sizing strategies. Only
// the default (semi-constant, semi-global) is implemented; the other four
// strategies named in spec.md §4.2 differ only in how per-part widths are
// laid out and are left as a documented extension point (see DESIGN.md).
type Method int

// MethodSemiConstantSemiGlobal is the default partitioning strategy: all
// but the last part of a split share a constant width, and that width is
// the maximum needed across both the multiplicand and product splits.
const MethodSemiConstantSemiGlobal Method = 0

// Partitioner computes digit-window widths so that the digit cache fits in
// cache-friendly memory and additive codec combination never overflows a
// bucket (§4.2).
type Partitioner struct {
	MultiplicandParts int
	ProductParts      int
	Method            Method
}

// NewPartitioner returns a partitioner configured with the defaults that
// the original implementation found fastest in practice: 2 multiplicand
// parts, 3 product parts.
func NewPartitioner() *Partitioner {
	return &Partitioner{
		MultiplicandParts: 2,
		ProductParts:      3,
		Method:            MethodSemiConstantSemiGlobal,
	}
}

// Plan is the set of partition widths for one length class: a fang of
// length n splits according to Fang (used for both the multiplier and the
// multiplicand, which share length n by construction), and a product of
// length 2n splits according to Product.
type Plan struct {
	Fang    []Length
	Product []Length
}

func divRoof(a, b Length) Length {
	return (a + b - 1) / b
}

// partWidths splits length into parts shares, all but the last equal to
// length/parts, with the remainder folded into the last share.
func partWidths(length Length, parts int) []Length {
	if parts <= 0 {
		return nil
	}
	widths := make([]Length, parts)
	share := length / Length(parts)
	for i := 0; i < parts-1; i++ {
		widths[i] = share
	}
	widths[parts-1] = length - Length(parts-1)*share
	return widths
}

// Plan returns the partition widths for fangs/products of a length class
// whose fangs are n digits long.
func (p *Partitioner) Plan(n Length) Plan {
	return Plan{
		Fang:    partWidths(n, p.MultiplicandParts),
		Product: partWidths(2*n, p.ProductParts),
	}
}

func maxLength(ws []Length) Length {
	var m Length
	for _, w := range ws {
		if w > m {
			m = w
		}
	}
	return m
}

// CacheWidth returns the widest digit-window needed across every length
// class touched while scanning [min, max], and thus the width the shared
// DigitCache must be built with (§3 lifecycle: the cache is built once per
// run, after interval resolution).
func (p *Partitioner) CacheWidth(min, max Vamp) Length {
	lo := DigitLength(min)
	if lo == 0 {
		lo = 1
	}
	hi := DigitLength(max)
	if hi == 0 {
		hi = 1
	}

	var w Length
	for i := lo; i <= hi; i++ {
		n := divRoof(i, 2)
		plan := p.Plan(n)
		if m := maxLength(plan.Fang); m > w {
			w = m
		}
		if m := maxLength(plan.Product); m > w {
			w = m
		}
	}
	return w
}
