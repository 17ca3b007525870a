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
	"fmt"
	"io"
	"sync"
)

// TaskBoard slices one length class's [lmin, lmax] interval into Tasks and
// hands them out to workers, then drains completed tasks strictly in index
// order regardless of which worker finishes which task first (§5). Two
// mutexes separate the two concerns so a worker claiming its next task
// never blocks behind another worker's checkpoint/report flush: intakeMu
// guards todo, outputMu guards done and every field Drain touches.
type TaskBoard struct {
	tasks []*Task

	intakeMu sync.Mutex
	todo     int

	outputMu sync.Mutex
	done     int

	Count   [CountArraySize]uint64
	OnDrain func(t *Task)
}

// PlanTaskSize picks a sub-interval width for splitting [lmin, lmax] across
// threads: (lmax-lmin)/(4*threads+2), at least 1 and capped at MaxTaskSize.
// A nonzero manual size replaces the heuristic and is capped at MaxTaskSize
// too (§5 slicing rule, helsing main.c's task-size heuristic).
func PlanTaskSize(lmin, lmax Vamp, threads int, manual Vamp) Vamp {
	if manual > 0 {
		if manual > MaxTaskSize {
			return MaxTaskSize
		}
		return manual
	}

	span := lmax - lmin
	divisor := Vamp(4*threads + 2)
	size := span / divisor
	if size < 1 {
		size = 1
	}
	if size > MaxTaskSize {
		size = MaxTaskSize
	}
	return size
}

// NewTaskBoard slices [lmin, lmax] into consecutive sub-intervals of width
// taskSize (the last one possibly narrower) and returns a board ready to
// hand them out.
func NewTaskBoard(lmin, lmax, taskSize Vamp) *TaskBoard {
	b := &TaskBoard{}
	if taskSize < 1 {
		taskSize = 1
	}

	idx := 0
	for cur := lmin; cur <= lmax; {
		end := cur + taskSize - 1
		if end > lmax || end < cur {
			end = lmax
		}
		b.tasks = append(b.tasks, NewTask(idx, cur, end, int(end-cur+1)))
		idx++
		if end == lmax {
			break
		}
		cur = end + 1
	}
	return b
}

// Len reports the total number of tasks on the board.
func (b *TaskBoard) Len() int { return len(b.tasks) }

// GetTask atomically claims the next unassigned task, or returns nil when
// every task has already been handed out.
func (b *TaskBoard) GetTask() *Task {
	b.intakeMu.Lock()
	defer b.intakeMu.Unlock()

	if b.todo >= len(b.tasks) {
		return nil
	}
	t := b.tasks[b.todo]
	b.todo++
	return t
}

// Drain merges every task that has finished Finalize, in strict index
// order, into the board's running totals and invokes OnDrain (if set) for
// each one — the hook a driver uses to write checkpoint lines and progress
// reports in the same order the interval was originally split, even though
// workers complete tasks out of order.
func (b *TaskBoard) Drain() {
	b.outputMu.Lock()
	defer b.outputMu.Unlock()

	for b.done < len(b.tasks) && b.tasks[b.done].Complete {
		t := b.tasks[b.done]
		for i, c := range t.Count {
			b.Count[i] += c
		}
		if b.OnDrain != nil {
			b.OnDrain(t)
		}
		b.done++
	}
}

// Done reports whether every task has been drained.
func (b *TaskBoard) Done() bool {
	b.outputMu.Lock()
	defer b.outputMu.Unlock()
	return b.done >= len(b.tasks)
}

// PrintSummary writes a breakdown of the board's counts to w. Count[j] is
// already the cumulative number of products with at least j+1 fang pairs,
// so the total vampire number count is Count[MinFangPairs-1] and every
// bucket above it is printed as its own "at least" line (taskboard_print_results
// in the original tool).
func (b *TaskBoard) PrintSummary(w io.Writer) {
	b.outputMu.Lock()
	defer b.outputMu.Unlock()

	fmt.Fprintf(w, "vampire numbers found: %d\n", b.Count[MinFangPairs-1])

	for k := MinFangPairs; k < CountArraySize-1; k++ {
		if b.Count[k] == 0 {
			continue
		}
		fmt.Fprintf(w, "  with at least %d fang pairs: %d\n", k+1, b.Count[k])
	}
}
