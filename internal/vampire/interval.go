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

import "fmt"

// Interval is the overall [Min, Max] range being scanned, normalized so
// every sub-range handed to a length class has an even digit count (no odd
// length class ever contains a vampire number, since a vampire's digit
// count must split evenly between its two fangs). Complete tracks the
// highest value already accounted for, so a restored checkpoint can resume
// mid-scan.
type Interval struct {
	Min      Vamp
	Max      Vamp
	Complete Vamp
}

// NewInterval normalizes [min, max] per §2: min is raised to the next
// even-length-class floor and max is lowered to the previous even-length-
// class ceiling when either falls in an odd-length class that can hold no
// vampire numbers.
func NewInterval(min, max Vamp) (*Interval, error) {
	if min > max {
		return nil, fmt.Errorf("vampire: invalid interval, min (%d) > max (%d)", min, max)
	}

	adjMin := clampMin(min, max)
	adjMax := clampMax(adjMin, max)

	iv := &Interval{Min: adjMin, Max: adjMax}
	if adjMin > 0 {
		iv.Complete = adjMin - 1
	}
	if DigitLength(adjMin)%2 == 1 {
		iv.Complete = adjMin
	}
	return iv, nil
}

// clampMin raises min to Base^len(min) when min falls in an odd length
// class shorter than max's length class; otherwise min is snapped up to
// max (the interval collapses to a single, unreachable point).
func clampMin(min, max Vamp) Vamp {
	if DigitLength(min)%2 != 1 {
		return min
	}
	minLen := DigitLength(min)
	if minLen < DigitLength(max) {
		return PowV(minLen)
	}
	return max
}

// clampMax mirrors clampMin from the top: lowers max to Base^(len(max)-1)-1
// when max falls in an odd length class longer than min's.
func clampMax(min, max Vamp) Vamp {
	if DigitLength(max)%2 != 1 {
		return max
	}
	maxLen := DigitLength(max)
	if maxLen > DigitLength(min) {
		return PowV(maxLen-1) - 1
	}
	return min
}

// SetComplete validates and records a checkpoint-restored completion
// boundary. It rejects a value that would either skip backward past
// already-recorded progress or regress below the previous checkpoint.
func (iv *Interval) SetComplete(complete Vamp) error {
	switch {
	case complete < iv.Min:
		if clampMin(complete+1, iv.Max) < iv.Min {
			return fmt.Errorf("vampire: checkpoint completion %d precedes interval minimum %d", complete, iv.Min)
		}
	case complete > iv.Max:
		return fmt.Errorf("vampire: checkpoint completion %d exceeds interval maximum %d", complete, iv.Max)
	case complete < iv.Complete:
		return fmt.Errorf("vampire: checkpoint completion %d regresses past recorded progress %d", complete, iv.Complete)
	}
	iv.Complete = complete
	return nil
}

// NDigitBounds returns the [min, max] bounds of the 2n-digit length class:
// vampire numbers with n-digit fangs always have exactly 2n digits.
func NDigitBounds(n int) (min, max Vamp) {
	if n <= 0 {
		return 0, 0
	}
	min = PowV(Length(2*n - 1))
	max = PowV(Length(2*n)) - 1
	return min, max
}

// NextLengthClass returns the next [lmin, lmax] sub-range to scan: lmin is
// the normalized successor of the last completed value, and lmax is the
// largest value sharing lmin's digit length (or iv.Max, whichever is
// smaller). Done reports whether the whole interval has been scanned.
func (iv *Interval) NextLengthClass() (lmin, lmax Vamp, done bool) {
	if iv.Complete >= iv.Max {
		return 0, 0, true
	}

	lmin = clampMin(iv.Complete+1, iv.Max)
	lmax = iv.Max
	if DigitLength(lmin) < DigitLength(VampMax) {
		if ceiling := PowV(DigitLength(lmin)) - 1; ceiling < iv.Max {
			lmax = ceiling
		}
	}
	return lmin, lmax, false
}
