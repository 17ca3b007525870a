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

// DigitCache holds the precomputed codec for every value in [0, Base^W),
// built once per run and read-only afterward (§4.3). It is shared by every
// worker without locking.
type DigitCache struct {
	dig   []Digits
	width Length
	size  uint64
}

// NewDigitCache builds the codec table for a window of the given width
// using the dynamic-programming recurrence dig[x] = dig[q] + dig[r] for
// x = q*window + r, seeded by direct bucket counting on [0, Base]. This
// avoids an O(size) sweep of modulo/division operations.
func NewDigitCache(width Length) *DigitCache {
	size := uint64(PowV(width))
	dig := make([]Digits, size)

	windowMin := uint64(0)
	windowMax := uint64(Base)
	quotient := uint64(1)
	remainder := uint64(1)

	var j uint64
	for ; j < size && j <= windowMax; j++ {
		dig[j] = Encode(Fang(j))
	}

	if j >= size {
		return &DigitCache{dig: dig, width: width, size: size}
	}

	digQuotient := dig[quotient]
	for ; j < size; j++ {
		if j > windowMax {
			windowMin = windowMax
			quotient = j / windowMin
			remainder = j % windowMin
			windowMax = saturatingSquare(windowMax)
		} else if remainder == windowMin {
			remainder = 0
			quotient++
			digQuotient = dig[quotient]
		}
		dig[j] = dig[remainder] + digQuotient
		remainder++
	}

	return &DigitCache{dig: dig, width: width, size: size}
}

// Lookup returns the precomputed codec for x. x must be < the cache's size;
// the kernel only ever queries partitions sized by the partitioner that
// produced this cache's width, so this never indexes out of range in
// correct use.
func (c *DigitCache) Lookup(x uint64) Digits {
	return c.dig[x]
}

// Width reports the digit-window width this cache was built for.
func (c *DigitCache) Width() Length { return c.width }

// Size reports Base^Width, the number of cached entries.
func (c *DigitCache) Size() uint64 { return c.size }

func saturatingSquare(v uint64) uint64 {
	if v != 0 && v > (^uint64(0))/v {
		return ^uint64(0)
	}
	return v * v
}
