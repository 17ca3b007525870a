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

// BitsPerBucket is B = floor(WordBits / (Base-1)), the number of bits
// reserved per nonzero-digit bucket in a Digits word.
const BitsPerBucket = 64 / (Base - 1)

// DigBase is 2^BitsPerBucket, the per-bucket overflow boundary.
const DigBase Digits = 1 << BitsPerBucket

// Encode packs the nonzero-digit histogram of x into a single Digits word.
// Digit 0 is excluded from the histogram: a trailing zero digit never
// distinguishes two numbers with the same multiset of nonzero digits, since
// the partitioner's window choice already guarantees no bucket overflows
// DigBase for any value the kernel ever encodes (§4.1).
func Encode(x Fang) Digits {
	var counts [Base]Digits
	for x > 0 {
		counts[x%Base]++
		x /= Base
	}

	var ret Digits
	for i := Digit(Base - 1); i >= 1; i-- {
		ret = ret*DigBase + counts[i]
	}
	return ret
}

// Combine implements the additive closure codec(concat(x, y)) = codec(x) +
// codec(y): summing two digit-multiset codecs yields the codec of the
// concatenation of their digits, provided no bucket overflows.
func Combine(a, b Digits) Digits {
	return a + b
}
