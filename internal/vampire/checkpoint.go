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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Checkpoint is a strict, append-only resume file. The first line is
// "min max"; every line after that is "complete count_0 ... count_N
// [checksum]" (§7). Once touched, the program opens it only to read it
// (Load) or to append to it (Append), never truncates it, and never
// deletes it: that is the caller's call, not this package's.
type Checkpoint struct {
	Path string
}

// Touch creates a fresh checkpoint file recording the (possibly adjusted)
// scan interval. It refuses to overwrite an existing file, matching the
// original tool's "don't clobber a resumable run" guarantee.
func Touch(path string, min, max Vamp) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Errorf("checkpoint: %s already exists", path)
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "checkpoint: stat %s", path)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrapf(err, "checkpoint: create %s", path)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d %d\n", min, max); err != nil {
		return errors.Wrapf(err, "checkpoint: write header to %s", path)
	}
	return nil
}

// Append writes one progress line: the value completed through, the
// cumulative per-bucket counts (the FangPairsSize "at least N pairs"
// columns only — CountRemainder is never persisted, matching the
// original's save_checkpoint), and (if digest is non-nil) the running
// checksum in hex. The file is opened in append mode and never rewritten,
// so a crash mid-run loses only the tasks not yet drained, never history.
func Append(path string, complete Vamp, count [CountArraySize]uint64, digest *Digest) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrapf(err, "checkpoint: open %s for append", path)
	}
	defer f.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "%d", complete)
	for _, c := range count[:FangPairsSize] {
		fmt.Fprintf(&b, " %d", c)
	}
	if digest != nil {
		fmt.Fprintf(&b, " %s", digest.Hex())
	}
	b.WriteByte('\n')

	if _, err := f.WriteString(b.String()); err != nil {
		return errors.Wrapf(err, "checkpoint: append to %s", path)
	}
	return nil
}

// Load reads an existing checkpoint file, validating every line against
// the monotonicity rules in §7 (count_j is non-decreasing across lines,
// and non-increasing left-to-right within a single line's FangPairsSize
// columns), and returns the resolved interval and cumulative counts.
// CountRemainder is never persisted in the checkpoint, so the returned
// count's remainder slot is always zero.
func Load(path string) (iv *Interval, count [CountArraySize]uint64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, count, errors.Wrapf(err, "checkpoint: open %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0

	if !scanner.Scan() {
		return nil, count, errors.Errorf("checkpoint: %s is empty", path)
	}
	lineNo++
	header := strings.Fields(scanner.Text())
	if len(header) != 2 {
		return nil, count, errors.Errorf("checkpoint: %s line %d: expected \"min max\"", path, lineNo)
	}
	min, err := strconv.ParseUint(header[0], 10, 64)
	if err != nil {
		return nil, count, errors.Wrapf(err, "checkpoint: %s line %d: bad min", path, lineNo)
	}
	max, err := strconv.ParseUint(header[1], 10, 64)
	if err != nil {
		return nil, count, errors.Wrapf(err, "checkpoint: %s line %d: bad max", path, lineNo)
	}

	iv, err = NewInterval(min, max)
	if err != nil {
		return nil, count, errors.Wrapf(err, "checkpoint: %s line %d", path, lineNo)
	}

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) < 1+FangPairsSize {
			return nil, count, errors.Errorf("checkpoint: %s line %d: expected complete + %d counts", path, lineNo, FangPairsSize)
		}

		complete, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, count, errors.Wrapf(err, "checkpoint: %s line %d: bad completion value", path, lineNo)
		}

		firstDataLine := lineNo == 2
		if err := iv.SetComplete(complete); err != nil && !firstDataLine {
			return nil, count, errors.Wrapf(err, "checkpoint: %s line %d", path, lineNo)
		} else if err != nil {
			iv.Complete = complete
		}

		next := count
		for i := 0; i < FangPairsSize; i++ {
			v, err := strconv.ParseUint(fields[1+i], 10, 64)
			if err != nil {
				return nil, count, errors.Wrapf(err, "checkpoint: %s line %d: bad count column %d", path, lineNo, i)
			}
			if !firstDataLine && v < count[i] {
				return nil, count, errors.Errorf("checkpoint: %s line %d: count column %d regressed from %d to %d", path, lineNo, i, count[i], v)
			}
			if i > 0 && v > next[i-1] {
				return nil, count, errors.Errorf("checkpoint: %s line %d: count column %d (%d) exceeds column %d (%d)", path, lineNo, i, v, i-1, next[i-1])
			}
			next[i] = v
		}
		count = next
	}
	if err := scanner.Err(); err != nil {
		return nil, count, errors.Wrapf(err, "checkpoint: read %s", path)
	}

	return iv, count, nil
}
