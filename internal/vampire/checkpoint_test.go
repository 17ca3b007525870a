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
	"path/filepath"
	"testing"
)

func TestTouchCreatesHeaderAndRejectsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checkpoint.txt")

	if err := Touch(path, 0, 9999); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if err := Touch(path, 0, 9999); err == nil {
		t.Fatalf("Touch on an existing file succeeded, want an error")
	}
}

func TestAppendAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checkpoint.txt")

	if err := Touch(path, 0, 9999); err != nil {
		t.Fatalf("Touch: %v", err)
	}

	// count is cumulative ("at least j+1 pairs"), so each column must be
	// non-increasing left to right within a line and non-decreasing from
	// one line to the next.
	var count [CountArraySize]uint64
	count[0] = 10
	count[1] = 3
	if err := Append(path, 99, count, nil); err != nil {
		t.Fatalf("Append: %v", err)
	}
	count[0] = 15
	count[1] = 7
	count[2] = 1
	if err := Append(path, 9999, count, nil); err != nil {
		t.Fatalf("Append: %v", err)
	}

	iv, loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if iv.Min != 0 || iv.Max != 9999 {
		t.Fatalf("Load interval = [%d, %d], want [0, 9999]", iv.Min, iv.Max)
	}
	if iv.Complete != 9999 {
		t.Fatalf("Load Complete = %d, want 9999", iv.Complete)
	}
	if loaded[0] != 15 || loaded[1] != 7 || loaded[2] != 1 {
		t.Fatalf("Load counts = %v, want [15, 7, 1, ...]", loaded)
	}
}

func TestLoadRejectsRegressedCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checkpoint.txt")

	if err := Touch(path, 0, 9999); err != nil {
		t.Fatalf("Touch: %v", err)
	}

	var high, low [CountArraySize]uint64
	high[0] = 10
	low[0] = 3

	if err := Append(path, 99, high, nil); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := Append(path, 9999, low, nil); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if _, _, err := Load(path); err == nil {
		t.Fatalf("Load accepted a regressed count column, want an error")
	}
}

func TestAppendWithDigest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checkpoint.txt")

	if err := Touch(path, 0, 9999); err != nil {
		t.Fatalf("Touch: %v", err)
	}

	d := NewDigest()
	d.Add(1260)
	var count [CountArraySize]uint64
	count[0] = 1
	if err := Append(path, 9999, count, d); err != nil {
		t.Fatalf("Append: %v", err)
	}

	_, loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded[0] != 1 {
		t.Fatalf("loaded count[0] = %d, want 1", loaded[0])
	}
}
