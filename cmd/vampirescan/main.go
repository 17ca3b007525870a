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

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/xtaci/vampirescan/internal/vampire"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "vampirescan"
	myApp.Usage = "parallel vampire number fang-pair scanner"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "lower-bound, l",
			Value: "0",
			Usage: "lowest candidate vampire number to scan (inclusive)",
		},
		cli.StringFlag{
			Name:  "upper-bound, u",
			Usage: "highest candidate vampire number to scan (inclusive)",
		},
		cli.IntFlag{
			Name:  "n",
			Usage: "scan exactly the 2n-digit length class [10^(2n-1), 10^(2n)-1], overrides lower/upper-bound",
		},
		cli.IntFlag{
			Name:  "threads, t",
			Usage: "worker pool size, 0 selects runtime.NumCPU()",
		},
		cli.StringFlag{
			Name:  "manual-task-size, s",
			Usage: "fixed sub-interval width handed to each worker task, overrides the automatic heuristic",
		},
		cli.StringFlag{
			Name:  "checkpoint, c",
			Usage: "append-only resume file; created if absent, resumed if present",
		},
		cli.StringFlag{
			Name:  "output, o",
			Value: "counts",
			Usage: "counts (pair-count buckets only) or numbers (also emit every distinct product)",
		},
		cli.BoolFlag{
			Name:  "progress",
			Usage: "print a line per completed task as the scan runs",
		},
		cli.BoolFlag{
			Name:  "dry-run",
			Usage: "resolve the interval and digit cache, then exit without scanning",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "suppress informational logging",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "JSON configuration file overlaid after flags are applied; its fields override the flag values",
		},
		cli.StringFlag{
			Name:  "log",
			Usage: "redirect log output to this file instead of stderr",
		},
		cli.BoolFlag{
			Name:  "buildconf",
			Usage: "print the resolved configuration as key=value lines and exit, without scanning",
		},
	}

	myApp.Action = func(c *cli.Context) error {
		cfg := vampire.DefaultConfig()
		cfg.Min = c.String("lower-bound")
		cfg.Max = c.String("upper-bound")
		cfg.Threads = c.Int("threads")
		cfg.ManualTaskSize = c.String("manual-task-size")
		cfg.Checkpoint = c.String("checkpoint")
		cfg.Output = vampire.OutputMode(c.String("output"))
		cfg.Progress = c.Bool("progress")
		cfg.DryRun = c.Bool("dry-run")
		cfg.Quiet = c.Bool("quiet")
		cfg.Log = c.String("log")

		if path := c.String("config"); path != "" {
			if err := vampire.LoadJSON(&cfg, path); err != nil {
				checkError(err)
			}
		}

		if cfg.Log != "" {
			f, err := os.OpenFile(cfg.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
			checkError(err)
			defer f.Close()
			log.SetOutput(f)
		}

		if c.IsSet("n") {
			n := c.Int("n")
			min, max := vampire.NDigitBounds(n)
			cfg.Min = strconv.FormatUint(min, 10)
			cfg.Max = strconv.FormatUint(max, 10)
		}

		if c.Bool("buildconf") {
			return printBuildConf(cfg)
		}

		min, err := strconv.ParseUint(cfg.Min, 10, 64)
		checkError(err)
		if cfg.Max == "" {
			color.Yellow("no --upper-bound given, defaulting to maximum representable value")
			cfg.Max = strconv.FormatUint(vampire.VampMax, 10)
		}
		max, err := strconv.ParseUint(cfg.Max, 10, 64)
		checkError(err)

		var iv *vampire.Interval
		var resumeCount [vampire.CountArraySize]uint64

		if cfg.Checkpoint != "" {
			if _, err := os.Stat(cfg.Checkpoint); err == nil {
				iv, resumeCount, err = vampire.Load(cfg.Checkpoint)
				checkError(err)
			} else {
				iv, err = vampire.NewInterval(min, max)
				checkError(err)
				checkError(vampire.Touch(cfg.Checkpoint, iv.Min, iv.Max))
			}
		} else {
			iv, err = vampire.NewInterval(min, max)
			checkError(err)
		}

		if !cfg.Quiet {
			log.Println("version:", VERSION)
		}

		driver := vampire.NewDriver(cfg, iv.Min, iv.Max)
		report, err := driver.Run(iv, resumeCount)
		checkError(err)

		printReport(cfg, report)
		return nil
	}

	myApp.Run(os.Args)
}

func printBuildConf(cfg vampire.Config) error {
	part := vampire.NewPartitioner()
	fmt.Printf("lower-bound=%s\n", cfg.Min)
	fmt.Printf("upper-bound=%s\n", cfg.Max)
	fmt.Printf("threads=%d\n", cfg.Threads)
	fmt.Printf("checkpoint=%s\n", cfg.Checkpoint)
	fmt.Printf("output=%s\n", cfg.Output)
	fmt.Printf("base=%d\n", vampire.Base)
	fmt.Printf("min-fang-pairs=%d\n", vampire.MinFangPairs)
	fmt.Printf("max-fang-pairs=%d\n", vampire.MaxFangPairs)
	fmt.Printf("max-task-size=%d\n", vampire.MaxTaskSize)
	fmt.Printf("partition-method=%d\n", part.Method)
	fmt.Printf("multiplicand-parts=%d\n", part.MultiplicandParts)
	fmt.Printf("product-parts=%d\n", part.ProductParts)
	return nil
}

func printReport(cfg vampire.Config, report vampire.Report) {
	fmt.Fprintf(os.Stderr, "vampire numbers found: %d\n", report.Count[vampire.MinFangPairs-1])
	for i := vampire.MinFangPairs; i < vampire.CountArraySize-1; i++ {
		if report.Count[i] == 0 {
			continue
		}
		fmt.Fprintf(os.Stderr, "  with at least %d fang pairs: %d\n", i+1, report.Count[i])
	}
	if cfg.Output == vampire.OutputNumbers {
		for _, v := range report.Numbers {
			fmt.Println(v)
		}
	}
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
