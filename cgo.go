//go:build cgo
// +build cgo

package main

/*
int busywork(int iterations) {
	int x = 0xdeadbeef;
	for (int i = 0; i < iterations; i++) {
		x ^= i;
		x *= 42;
		x += x % 1234567;
		x = (x << 3) | (x >> 7);
	}
	return x;
}
*/
import "C"

import (
	"github.com/felixge/go-observability-bench/workload"
	"github.com/pkg/errors"
)

// CGo spends its time in a C loop, so a profile of it is all cgo frames.
type CGo struct {
	Iters int
}

const DefaultCGoIters = 4_000_000

func init() {
	workloads["cgo"] = func(Options) workload.Workload {
		return &CGo{Iters: DefaultCGoIters}
	}
}

func (c *CGo) Setup() error {
	if c.Iters <= 0 {
		return errors.Errorf("cgo: bad iteration count %d", c.Iters)
	}
	return nil
}

func (c *CGo) Run() error {
	C.busywork(C.int(c.Iters))
	return nil
}
