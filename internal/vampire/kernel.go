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

// Kernel enumerates fang pairs for one sub-interval and decides vampirehood
// by comparing digit-multiset codecs (§4.4). It holds no mutable state
// shared with other workers: every field here is read-only (cache, plan)
// or owned exclusively by the calling worker (the result buffer it writes
// into).
type Kernel struct {
	cache *DigitCache
	plan  Plan
}

// NewKernel binds a read-only digit cache and the partition plan for one
// length class.
func NewKernel(cache *DigitCache, plan Plan) *Kernel {
	return &Kernel{cache: cache, plan: plan}
}

func notrailingzero(x Fang) bool {
	return x%Base != 0
}

func sqrtFloor(x Vamp) Fang {
	if x == 0 {
		return 0
	}
	root := x / 2
	if root > 0 {
		tmp := (root + x/root) / 2
		for tmp < root {
			root = tmp
			tmp = (root + x/root) / 2
		}
		return Fang(root)
	}
	return Fang(x)
}

func sqrtRoof(x Vamp) Fang {
	if x == 0 {
		return 0
	}
	root := sqrtFloor(x)
	if root == FangMax {
		return root
	}
	return Fang(x / Vamp(root))
}

// disqualifyMult discards multiplier residue classes that can never
// satisfy the digit-sum congruence a vampire factorization requires.
// Base-10 specific: the only surviving residue classes mod (Base-1) are
// those other than 1 (see spec.md §4.4 step 3).
func disqualifyMult(x Vamp) bool {
	return x%(Base-1) == 1
}

// congruenceCheck reports whether the pair (x, y) fails the digit-sum
// congruence a vampire factorization needs, x*y == x+y (mod Base-1): it
// returns true when the pair can be discarded.
func congruenceCheck(x, y Vamp) bool {
	return (x+y)%(Base-1) != (x*y)%(Base-1)
}

// codecOf decomposes v into the windows described by widths (each
// Base^width wide, processed from the least-significant window up) and
// sums their cached codecs. The codec is a homomorphism from digit
// concatenation to integer addition, so any consistent digit split of v
// yields the same total regardless of how the windows are laid out.
func codecOf(cache *DigitCache, widths []Length, v uint64) Digits {
	var sum Digits
	remaining := v
	for _, w := range widths {
		m := uint64(PowV(w))
		part := remaining % m
		remaining /= m
		sum += cache.Lookup(part)
	}
	return sum
}

// Search enumerates every fang pair (multiplier, multiplicand) whose
// product falls in [min, max] and appends each vampire product found to
// out. fmax is Base^n - 1, the largest n-digit fang for this length class.
func (k *Kernel) Search(min, max Vamp, fmax Fang, out *ResultBuffer) {
	if fmax == 0 {
		return
	}

	minSqrt := Vamp(sqrtRoof(min))
	maxSqrt := Vamp(sqrtFloor(max))
	if maxSqrt > Vamp(fmax) {
		maxSqrt = Vamp(fmax)
	}

	for multiplier := Vamp(fmax); multiplier >= minSqrt && multiplier >= 1; multiplier-- {
		if disqualifyMult(multiplier) {
			continue
		}

		multiplicand := ceilDiv(min, multiplier)
		if multiplicand < 1 {
			multiplicand = 1
		}
		multiplicandMax := multiplier
		if q := max / multiplier; q < multiplicandMax {
			multiplicandMax = q
		}

		// congruenceCheck(multiplier, y) is invariant as y steps by Base-1
		// (y mod (Base-1) is unchanged and multiplier*(Base-1) === 0 mod
		// (Base-1)), so advance one step at a time until the first
		// satisfying residue class is found, then the hot loop below can
		// skip straight to the next candidate in that class.
		for multiplicand <= multiplicandMax && congruenceCheck(multiplier, multiplicand) {
			multiplicand++
		}

		if multiplicand > multiplicandMax {
			if multiplier == 0 {
				break
			}
			continue
		}

		digMultiplier := codecOf(k.cache, k.plan.Fang, uint64(multiplier))

		for ; multiplicand <= multiplicandMax; multiplicand += Base - 1 {
			product := multiplier * multiplicand
			if product < min || product > max {
				continue
			}

			if !notrailingzero(Fang(multiplier)) && !notrailingzero(Fang(multiplicand)) {
				continue
			}

			digMultiplicand := codecOf(k.cache, k.plan.Fang, uint64(multiplicand))
			digProduct := codecOf(k.cache, k.plan.Product, uint64(product))

			if digMultiplier+digMultiplicand == digProduct {
				out.Append(product)
			}
		}

		if multiplier == 0 {
			break
		}
	}
}

// ceilDiv computes ceil(a/b) for b > 0 without overflowing.
func ceilDiv(a, b Vamp) Vamp {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}
