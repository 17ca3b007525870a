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

func TestTaskFinalizeDedupesAndCounts(t *testing.T) {
	task := NewTask(0, 1000, 9999, 8)
	// 1260 found once, 1395 found twice (two distinct fang pairs).
	task.Result.Append(1395)
	task.Result.Append(1260)
	task.Result.Append(1395)

	task.Finalize()

	if !task.Complete {
		t.Fatalf("Finalize() did not mark the task complete")
	}
	if len(task.Findings) != 2 {
		t.Fatalf("Findings = %v, want 2 distinct products", task.Findings)
	}
	if task.Findings[0].Product != 1260 || task.Findings[0].Pairs != 1 {
		t.Fatalf("Findings[0] = %+v, want {1260, 1}", task.Findings[0])
	}
	if task.Findings[1].Product != 1395 || task.Findings[1].Pairs != 2 {
		t.Fatalf("Findings[1] = %+v, want {1395, 2}", task.Findings[1])
	}
	// Count is cumulative: Count[0] is "at least 1 pair" (both products
	// qualify), Count[1] is "at least 2 pairs" (only 1395 qualifies).
	if task.Count[0] != 2 {
		t.Fatalf("Count[0] = %d, want 2", task.Count[0])
	}
	if task.Count[1] != 1 {
		t.Fatalf("Count[1] = %d, want 1", task.Count[1])
	}
}

func TestTaskFinalizeClipsAtMaxFangPairs(t *testing.T) {
	task := NewTask(0, 0, 0, 16)
	for i := 0; i < MaxFangPairs+3; i++ {
		task.Result.Append(42)
	}

	task.Finalize()

	if len(task.Findings) != 1 {
		t.Fatalf("Findings = %v, want exactly one product", task.Findings)
	}
	if task.Findings[0].Pairs != MaxFangPairs+3 {
		t.Fatalf("Findings[0].Pairs = %d, want %d", task.Findings[0].Pairs, MaxFangPairs+3)
	}
	if task.Count[CountRemainder] != 1 {
		t.Fatalf("Count[CountRemainder] = %d, want 1", task.Count[CountRemainder])
	}
}

func TestTaskFinalizeEmptyResult(t *testing.T) {
	task := NewTask(0, 0, 0, 4)
	task.Finalize()
	if !task.Complete {
		t.Fatalf("Finalize() on an empty result buffer did not mark complete")
	}
	if len(task.Findings) != 0 {
		t.Fatalf("Findings = %v, want none", task.Findings)
	}
}
