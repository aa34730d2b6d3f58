// Tak benchmark.
//
// Run with no arguments, it computes Tak(24, 16, 8) once and prints the
// result. That is the whole benchmark, meant to be timed from outside
// (time(1), hyperfine) against the same program in other languages.
//
// Given any flag, it becomes a harness in the style of
// github.com/felixge/go-observability-bench: a workload runs for a fixed
// duration on some number of goroutines, optionally under the profiler, and
// every repetition prints one CSV record, intended to be concatenated together
// and fed straight into R, Pandas or SQLite.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/pkg/profile"
)

// ByteCounter discards what the CPU profiler writes and keeps only its size.
type ByteCounter int64

func (b *ByteCounter) Write(p []byte) (int, error) {
	*b += ByteCounter(len(p))
	return len(p), nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, Tak(Canonical.X, Canonical.Y, Canonical.Z))
		return 0
	}

	fs := flag.NewFlagSet("tak", flag.ContinueOnError)
	fs.SetOutput(stderr)
	duration := fs.String("duration", "1s", "length of benchmark (in Go time.Duration format)")
	benchmark := fs.String("benchmark", "tak", "name of benchmark: "+strings.Join(benchmarkNames(), ", "))
	input := fs.String("input", "canonical", "tak input: canonical, small, heavy or x,y,z")
	repeat := fs.Int("repeat", 1, "how many times to repeat benchmark")
	profiles := fs.String("profiles", "none", "semicolon-separated list of profiles")
	header := fs.Bool("header", true, "print CSV header")
	concurrency := fs.Int("concurrency", 1, "how many concurrent goroutines to run benchmark")
	ballast := fs.Int("ballast", 0, "> 1 to allocate some extra memory (for GC testing)")
	mem := fs.Bool("mem", false, "record memory profile")
	memstat := fs.Bool("memstat", false, "report memory stats at program exit")
	jsonFile := fs.String("json-file", "testdata/small.json", "input file for the json benchmark")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ballastch := make(chan []byte, 1)
	if *ballast > 0 {
		// The ballast keeps the live heap large so GC triggers less often.
		// It is received at the end so the memory sticks around.
		go func() {
			ballastch <- make([]byte, *ballast)
		}()
	}

	if len(os.Getenv("DISABLE_MEM_PROFILE")) > 0 {
		runtime.MemProfileRate = 0
	}
	if *mem {
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	newWorkload, ok := workloads[*benchmark]
	if !ok {
		fmt.Fprintf(stderr, "unrecognized test %s\n", *benchmark)
		return 2
	}
	opts := Options{JSONFile: *jsonFile}
	inputCol := ""
	if *benchmark == "tak" {
		in, err := ParseInput(*input)
		if err != nil {
			fmt.Fprintf(stderr, "bad input: %s\n", err)
			return 2
		}
		opts.Input = in
		inputCol = in.String()
	}
	w := newWorkload(opts)

	d, err := time.ParseDuration(*duration)
	if err != nil {
		fmt.Fprintf(stderr, "bad time format: %s\n", err)
		return 2
	}

	enabledProfs := strings.Split(*profiles, ";")
	sort.Strings(enabledProfs)
	*profiles = strings.Join(enabledProfs, ";")

	if *header {
		fmt.Fprintln(stdout, csvHeader)
	}
	for i := 0; i < *repeat; i++ {
		bc := new(ByteCounter)
		cpuStarted, cpuFailed := false, false
		for _, prof := range enabledProfs {
			switch prof {
			case "cpu":
				if err := pprof.StartCPUProfile(bc); err != nil {
					fmt.Fprintf(stderr, "discarding test, cpu profile not started: %s\n", err)
					cpuFailed = true
					continue
				}
				cpuStarted = true
			}
		}
		if cpuFailed {
			continue
		}

		res, err := ConcurrentRunner(w, *benchmark, d, *concurrency)

		if cpuStarted {
			pprof.StopCPUProfile()
		}
		if err != nil {
			fmt.Fprintf(stderr, "discarding failed test: %s\n", err)
			continue
		}
		res.Profiles = *profiles
		res.ProfileBytes = int64(*bc)
		res.Input = inputCol
		fmt.Fprintln(stdout, strings.Join(res.ToRecord(), ","))
	}

	if *memstat {
		var mstat runtime.MemStats
		runtime.ReadMemStats(&mstat)
		fmt.Fprintf(stderr, "pause-ns: %+v, total-alloc: %v, num-gc: %v\n", mstat.PauseTotalNs, mstat.TotalAlloc, mstat.NumGC)
		fmt.Fprintf(stderr, "max-rss: %d\n", MaxRSS())
	}
	if *ballast > 0 {
		s := <-ballastch
		fmt.Fprintln(stderr, "ballast size:", len(s))
	}
	return 0
}
