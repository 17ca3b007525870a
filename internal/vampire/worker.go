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

import (
	"runtime"
	"sync"
)

// Pool runs a fixed number of workers pulling tasks off a TaskBoard until
// it is exhausted, each using its own Kernel bound to the shared, read-only
// DigitCache (§5). A pool size of 1 collapses to a plain synchronous loop
// rather than spinning up a goroutine, matching the single-connection
// fallback the original accept loop uses when concurrency isn't needed.
type Pool struct {
	Size  int
	Cache *DigitCache
	Plan  Plan
	Fmax  Fang
}

// NewPool returns a pool sized to size, or runtime.NumCPU() if size <= 0.
func NewPool(size int, cache *DigitCache, plan Plan, fmax Fang) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{Size: size, Cache: cache, Plan: plan, Fmax: fmax}
}

// Run drains board, calling afterTask (if non-nil) after each task
// finalizes so the caller can drain the board's completed prefix without
// waiting for the whole pool to finish.
func (p *Pool) Run(board *TaskBoard, afterTask func()) {
	if p.Size == 1 {
		p.runOne(board, afterTask)
		return
	}

	var wg sync.WaitGroup
	wg.Add(p.Size)
	for i := 0; i < p.Size; i++ {
		go func() {
			defer wg.Done()
			p.runOne(board, afterTask)
		}()
	}
	wg.Wait()
}

func (p *Pool) runOne(board *TaskBoard, afterTask func()) {
	kernel := NewKernel(p.Cache, p.Plan)
	for {
		t := board.GetTask()
		if t == nil {
			return
		}

		kernel.Search(t.Lmin, t.Lmax, p.Fmax, t.Result)
		board.outputMu.Lock()
		t.Finalize()
		board.outputMu.Unlock()

		if afterTask != nil {
			afterTask()
		}
	}
}
