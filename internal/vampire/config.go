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
	"encoding/json"
	"os"
)

// OutputMode selects how a run reports the vampire numbers it finds.
type OutputMode string

const (
	// OutputCounts reports only the per-bucket pair counts (the default;
	// cheapest, since it never needs to retain individual products).
	OutputCounts OutputMode = "counts"
	// OutputNumbers additionally streams every distinct vampire product
	// found, in ascending order.
	OutputNumbers OutputMode = "numbers"
)

// Config holds every resolved run parameter. The CLI fills it from
// defaults and then flags, and then overlays a JSON file (if given), so
// fields present in the file override the flag values, mirroring the
// server/client overlay used elsewhere in this family of tools.
type Config struct {
	Min            string     `json:"min"`
	Max            string     `json:"max"`
	NumDigits      int        `json:"digits"`
	Threads        int        `json:"threads"`
	ManualTaskSize string     `json:"tasksize"`
	Checkpoint     string     `json:"checkpoint"`
	Output         OutputMode `json:"output"`
	Progress       bool       `json:"progress"`
	DryRun         bool       `json:"dryrun"`
	Quiet          bool       `json:"quiet"`
	Log            string     `json:"log"`
}

// DefaultConfig returns the baseline configuration before any JSON overlay
// or CLI flag is applied.
func DefaultConfig() Config {
	return Config{
		Min:     "0",
		Threads: 0, // 0 means runtime.NumCPU() at resolution time
		Output:  OutputCounts,
	}
}

// parseJSONConfig overlays a JSON configuration file onto config, the same
// shape as this family's server/client config overlay: fields present in
// the file override config's current value; fields absent leave it alone.
func parseJSONConfig(config *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(config)
}

// LoadJSON is the exported entry point wrapping parseJSONConfig for
// callers outside this package.
func LoadJSON(config *Config, path string) error {
	return parseJSONConfig(config, path)
}
