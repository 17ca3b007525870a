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

import "sort"

// ResultBuffer collects vampire products found by one Kernel.Search call.
// It is owned exclusively by the worker running that search and is never
// touched concurrently, so it needs no locking of its own.
type ResultBuffer struct {
	products []Vamp
}

// NewResultBuffer preallocates a buffer sized for a task's worst case.
func NewResultBuffer(capacityHint int) *ResultBuffer {
	return &ResultBuffer{products: make([]Vamp, 0, capacityHint)}
}

// Append records one vampire product. Duplicates are expected (the same
// product can arise from more than one fang pair) and are resolved later
// by Task.Finalize.
func (r *ResultBuffer) Append(v Vamp) {
	r.products = append(r.products, v)
}

// Len reports how many products (including duplicates) have been recorded.
func (r *ResultBuffer) Len() int { return len(r.products) }

// Finding is one distinct vampire product together with how many fang
// pairs produced it.
type Finding struct {
	Product Vamp
	Pairs   int
}

// Task is one sub-interval of the overall scan, assigned atomically to a
// single worker (§5). lmin/lmax bound the sub-interval; Result accumulates
// raw (possibly duplicate) products during Search, and Findings holds the
// deduplicated, pair-counted output once Finalize has run.
type Task struct {
	Index int
	Lmin  Vamp
	Lmax  Vamp

	Result *ResultBuffer

	Findings []Finding
	Count    [CountArraySize]uint64

	Complete bool
}

// NewTask creates a task covering [lmin, lmax], preallocating its result
// buffer using the task-size estimate used to size the board's slices.
func NewTask(index int, lmin, lmax Vamp, capacityHint int) *Task {
	return &Task{
		Index:  index,
		Lmin:   lmin,
		Lmax:   lmax,
		Result: NewResultBuffer(capacityHint),
	}
}

// Finalize sorts the raw result buffer, collapses runs of equal products
// into Findings with a pair count, and accumulates Count: Count[j] is the
// number of products in this task with at least j+1 fang pairs, so a
// product with k pairs (clipped at MaxFangPairs) increments every bucket
// from MinFangPairs-1 up to the clipped count, and CountRemainder separately
// tallies products whose true pair count overflowed MaxFangPairs. Products
// below MinFangPairs are dropped. It is called exactly once per task, by
// the worker that produced its results.
func (t *Task) Finalize() {
	sort.Slice(t.Result.products, func(i, j int) bool {
		return t.Result.products[i] < t.Result.products[j]
	})

	products := t.Result.products
	t.Findings = t.Findings[:0]

	for i := 0; i < len(products); {
		j := i + 1
		for j < len(products) && products[j] == products[i] {
			j++
		}
		pairs := j - i

		if pairs >= MinFangPairs {
			t.Findings = append(t.Findings, Finding{Product: products[i], Pairs: pairs})

			clipped := pairs
			if clipped > MaxFangPairs {
				clipped = MaxFangPairs
				t.Count[CountRemainder]++
			}
			for k := MinFangPairs - 1; k < clipped; k++ {
				t.Count[k]++
			}
		}

		i = j
	}

	t.Complete = true
}
