package main

import (
	"strconv"
	"time"
)

// set by cgotraceback.go when built with -tags cgotraceback
var usingCgotraceback bool

// csvHeader names the columns of Result.ToRecord.
const csvHeader = "name,iters,ns,cpu-ns,profiles,profile-bytes,concurrency,input,using-cgotraceback"

// Result is one repetition of a benchmark: every goroutine's iterations
// added together.
type Result struct {
	// Name is the -benchmark value.
	Name string
	// N counts completed Run calls.
	N int
	// T is time spent inside Run, summed across goroutines, so it exceeds
	// wall time when Concurrency > 1.
	T time.Duration
	// CPUTime is process user+system time over the repetition.
	CPUTime time.Duration
	// Profiles is the sorted -profiles list, ';'-joined.
	Profiles string
	// ProfileBytes is the size of the CPU profile written during the run.
	ProfileBytes int64
	Concurrency  int
	// Input is the Tak argument triple as x;y;z. Empty for other benchmarks.
	Input string
}

// ToRecord returns the fields in csvHeader order.
func (r Result) ToRecord() []string {
	return []string{
		r.Name,
		strconv.FormatInt(int64(r.N), 10),
		strconv.FormatInt(r.T.Nanoseconds(), 10),
		strconv.FormatInt(r.CPUTime.Nanoseconds(), 10),
		r.Profiles,
		strconv.FormatInt(r.ProfileBytes, 10),
		strconv.FormatInt(int64(r.Concurrency), 10),
		r.Input,
		strconv.FormatBool(usingCgotraceback),
	}
}
