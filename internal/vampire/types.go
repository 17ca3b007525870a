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

// Package vampire implements the fang-pair search engine: digit-multiset
// encoding, a windowed digit cache, a partitioner, the fang search kernel,
// and the task-board that drives parallel workers over a scanned interval.
package vampire

import "math/bits"

// Vamp is a candidate vampire number, wide enough to hold the product of
// two Fang values.
type Vamp = uint64

// Fang is a single factor of a vampire number. Base-10 vampire numbers up
// to the 20-digit interval ceiling require 10-digit fangs, which exceed a
// 32-bit range, so Fang shares Vamp's width rather than strictly halving
// it as spec.md's "≥ half the bits of vamp" floor would allow.
type Fang = uint64

// Digit is a single numeral in the configured radix.
type Digit = uint8

// Length counts digits of a number in the configured radix.
type Length = uint16

// Digits is the packed digit-multiset codec word (§4.1).
type Digits = uint64

// Base is the numeral system radix. The engine is specified for base 10;
// other bases between 2 and 10 are supported by the congruence pre-filter
// but only base 10 is exercised by this build.
const Base = 10

// MinFangPairs/MaxFangPairs bound the per-product pair-count buckets
// (§3, configuration_adv.h FANG_PAIRS_SIZE/COUNT_ARRAY_SIZE upstream).
const (
	MinFangPairs = 1
	MaxFangPairs = 10
)

// CountArraySize is the number of buckets a Task/TaskBoard tracks, plus one
// remainder slot for counts clipped at MaxFangPairs.
const CountArraySize = MaxFangPairs + 1

// CountRemainder is the index of the clipped/remainder bucket.
const CountRemainder = MaxFangPairs

// FangPairsSize is the number of cumulative "at least N pairs" ladder
// columns, excluding CountRemainder: the checkpoint format persists only
// these (configuration_adv.h FANG_PAIRS_SIZE upstream).
const FangPairsSize = MaxFangPairs - MinFangPairs + 1

// VampMax and FangMax are the largest representable values of Vamp/Fang.
const (
	VampMax = ^Vamp(0)
	FangMax = ^Fang(0)
)

// MaxTaskSize bounds the worst-case result-array size per task so that
// sorting never blows past available memory on a single sub-interval.
const MaxTaskSize = Vamp(99999999999)

// DigitLength returns the number of digits x has in Base, treating 0 as
// length 0.
func DigitLength(x Vamp) Length {
	if x == 0 {
		return 0
	}
	var n Length
	for x > 0 {
		x /= Base
		n++
	}
	return n
}

// PowV returns Base^n as a Vamp, saturating at VampMax on overflow.
func PowV(n Length) Vamp {
	var r Vamp = 1
	for i := Length(0); i < n; i++ {
		if r > VampMax/Base {
			return VampMax
		}
		r *= Base
	}
	return r
}

// bitLen64 is a thin readability wrapper around bits.Len64.
func bitLen64(x uint64) int {
	return bits.Len64(x)
}
