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
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Report is the final summary a Driver hands back to its caller: the
// cumulative per-bucket counts and, when Config.Output is OutputNumbers,
// every distinct product found across the whole run, in ascending order.
type Report struct {
	Count   [CountArraySize]uint64
	Numbers []Vamp
}

// Driver owns one end-to-end scan: it resolves the interval, builds the
// digit cache once, walks length classes, and fans each one out across a
// worker Pool, draining completed tasks strictly in submission order so
// checkpoint lines and (optionally) emitted numbers stay ordered even
// though workers race.
type Driver struct {
	cfg    Config
	min    Vamp
	max    Vamp
	digest *Digest
}

// NewDriver returns a Driver for [min, max] under cfg, with the running
// digest enabled when cfg.Output is OutputNumbers.
func NewDriver(cfg Config, min, max Vamp) *Driver {
	d := &Driver{cfg: cfg, min: min, max: max}
	if cfg.Output == OutputNumbers {
		d.digest = NewDigest()
	}
	return d
}

// Run scans [min, max] to completion (or resumes from a loaded interval's
// Complete marker) and returns the aggregated report.
func (d *Driver) Run(iv *Interval, resumeCount [CountArraySize]uint64) (Report, error) {
	if !d.cfg.Quiet {
		log.Println("scanning interval:", iv.Min, iv.Max)
	}

	part := NewPartitioner()
	cacheWidth := part.CacheWidth(iv.Min, iv.Max)
	cache := NewDigitCache(cacheWidth)
	if !d.cfg.Quiet {
		log.Println("digit cache width:", cacheWidth, "entries:", cache.Size())
	}

	report := Report{Count: resumeCount}

	if d.cfg.DryRun {
		color.Yellow("dry run: interval and cache resolved, no scan performed")
		return report, nil
	}

	manual, err := parseManualTaskSize(d.cfg.ManualTaskSize)
	if err != nil {
		return report, errors.Wrap(err, "vampire: resolving manual task size")
	}

	pool := NewPool(threadCount(d.cfg.Threads), cache, Plan{}, 0)
	threads := pool.Size

	for {
		lmin, lmax, done := iv.NextLengthClass()
		if done {
			break
		}

		n := divRoof(DigitLength(lmax), 2)
		plan := part.Plan(n)
		fmax := Fang(PowV(n) - 1)

		taskSize := PlanTaskSize(lmin, lmax, threads, manual)
		board := NewTaskBoard(lmin, lmax, taskSize)
		var appendErr error
		board.OnDrain = func(t *Task) {
			if d.cfg.Output == OutputNumbers {
				for _, f := range t.Findings {
					report.Numbers = append(report.Numbers, f.Product)
					if d.digest != nil {
						d.digest.Add(f.Product)
					}
				}
			}
			if d.cfg.Progress && !d.cfg.Quiet {
				fmt.Fprintf(os.Stderr, "task %d complete: [%d, %d]\n", t.Index, t.Lmin, t.Lmax)
			}
			if d.cfg.Checkpoint != "" && appendErr == nil {
				count := report.Count
				for i, c := range board.Count {
					count[i] += c
				}
				appendErr = Append(d.cfg.Checkpoint, t.Lmax, count, d.digest)
			}
		}

		pool.Cache, pool.Plan, pool.Fmax = cache, plan, fmax
		pool.Run(board, board.Drain)
		board.Drain()

		for i, c := range board.Count {
			report.Count[i] += c
		}

		if err := iv.SetComplete(lmax); err != nil {
			return report, errors.Wrap(err, "vampire: advancing interval")
		}
		if appendErr != nil {
			return report, appendErr
		}
	}

	return report, nil
}

func threadCount(n int) int {
	if n <= 0 {
		return 0
	}
	return n
}

func parseManualTaskSize(s string) (Vamp, error) {
	if s == "" {
		return 0, nil
	}
	var v Vamp
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return 0, errors.Wrapf(err, "invalid task size %q", s)
	}
	return v, nil
}
