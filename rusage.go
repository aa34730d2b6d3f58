package main

import (
	"syscall"
	"time"
)

// CPURusage is the user plus system time the process has used so far.
func CPURusage() time.Duration {
	var r syscall.Rusage
	syscall.Getrusage(syscall.RUSAGE_SELF, &r)
	return timevalDuration(r.Utime) + timevalDuration(r.Stime)
}

// MaxRSS is the process's peak resident set size as getrusage reports it
// (KiB on Linux, bytes on macOS).
func MaxRSS() int64 {
	var r syscall.Rusage
	syscall.Getrusage(syscall.RUSAGE_SELF, &r)
	return int64(r.Maxrss)
}

func timevalDuration(tv syscall.Timeval) time.Duration {
	return time.Duration(tv.Nano())
}
