package main

import (
	"time"

	"github.com/felixge/go-observability-bench/workload"
	"github.com/pkg/errors"
)

// ConcurrentRunner repeatedly calls w.Run() until the given duration has
// elapsed. Returns a result with the timing and iteration information
// populated
func ConcurrentRunner(w workload.Workload, name string, duration time.Duration, concurrency int) (res Result, err error) {
	if concurrency < 1 {
		return res, errors.Errorf("concurrency must be at least 1, got %d", concurrency)
	}
	done := make(chan struct{})
	timer := time.AfterFunc(duration, func() { close(done) })
	defer timer.Stop()

	type runInfo struct {
		iters   int
		elapsed time.Duration
		err     error
	}
	ch := make(chan runInfo, concurrency)
	run := func() {
		var info runInfo
		if err := w.Setup(); err != nil {
			info.err = errors.Wrap(err, "setup")
			ch <- info
			return
		}
		for {
			start := time.Now()
			if err := w.Run(); err != nil {
				info.err = errors.Wrapf(err, "iteration %d", info.iters)
				ch <- info
				return
			}
			info.elapsed += time.Since(start)
			info.iters++
			select {
			case <-done:
				ch <- info
				return
			default:
			}
		}
	}
	before := CPURusage()
	for i := 0; i < concurrency; i++ {
		go run()
	}
	res = Result{
		Name:        name,
		Concurrency: concurrency,
	}
	for i := 0; i < concurrency; i++ {
		info := <-ch
		res.N += info.iters
		res.T += info.elapsed
		if info.err != nil && err == nil {
			err = errors.Wrap(info.err, name)
		}
	}
	res.CPUTime = CPURusage() - before

	return res, err
}
