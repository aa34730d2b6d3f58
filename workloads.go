package main

import (
	"sort"

	"github.com/felixge/go-observability-bench/workload"
)

// Options carries the flag values a workload constructor may need.
type Options struct {
	Input    Input
	JSONFile string
}

var workloads = map[string]func(Options) workload.Workload{
	"tak": func(o Options) workload.Workload {
		return &TakWorkload{Input: o.Input}
	},
	// http and json are the observability-bench workloads, kept for
	// comparing Tak's profiler overhead against allocation-heavy code.
	"http": func(Options) workload.Workload {
		return &workload.HTTP{}
	},
	"json": func(o Options) workload.Workload {
		return &workload.JSON{File: o.JSONFile}
	},
}

func benchmarkNames() []string {
	names := make([]string, 0, len(workloads))
	for name := range workloads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
