package main

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type countingWorkload struct {
	setups int32
	runs   int32
	failAt int32
	setErr error
}

func (c *countingWorkload) Setup() error {
	atomic.AddInt32(&c.setups, 1)
	return c.setErr
}

func (c *countingWorkload) Run() error {
	n := atomic.AddInt32(&c.runs, 1)
	if c.failAt > 0 && n >= c.failAt {
		return errors.New("boom")
	}
	time.Sleep(time.Millisecond)
	return nil
}

func TestConcurrentRunner(t *testing.T) {
	w := &countingWorkload{}
	res, err := ConcurrentRunner(w, "counting", 20*time.Millisecond, 3)
	require.NoError(t, err)
	require.Equal(t, "counting", res.Name)
	require.Equal(t, 3, res.Concurrency)
	require.EqualValues(t, 3, atomic.LoadInt32(&w.setups))
	require.EqualValues(t, atomic.LoadInt32(&w.runs), res.N)
	require.GreaterOrEqual(t, res.N, 3)
	require.Greater(t, int64(res.T), int64(0))
}

func TestConcurrentRunnerTak(t *testing.T) {
	res, err := ConcurrentRunner(&TakWorkload{Input: Input{18, 12, 6}}, "tak", 10*time.Millisecond, 2)
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.N, 2)
}

func TestConcurrentRunnerRunError(t *testing.T) {
	w := &countingWorkload{failAt: 2}
	_, err := ConcurrentRunner(w, "counting", time.Second, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "counting: iteration 1: boom")
}

func TestConcurrentRunnerSetupError(t *testing.T) {
	w := &countingWorkload{setErr: errors.New("no data")}
	res, err := ConcurrentRunner(w, "counting", time.Second, 2)
	require.Error(t, err)
	require.True(t, strings.HasSuffix(err.Error(), "setup: no data"), err.Error())
	require.Zero(t, res.N)
	require.Zero(t, atomic.LoadInt32(&w.runs))
}

func TestConcurrentRunnerBadConcurrency(t *testing.T) {
	_, err := ConcurrentRunner(&countingWorkload{}, "counting", time.Millisecond, 0)
	require.Error(t, err)
}

func TestResultToRecord(t *testing.T) {
	r := Result{
		Name:         "tak",
		N:            10,
		T:            2 * time.Second,
		CPUTime:      1500 * time.Millisecond,
		Profiles:     "cpu",
		ProfileBytes: 1234,
		Concurrency:  2,
		Input:        "24;16;8",
	}
	rec := r.ToRecord()
	require.Len(t, rec, len(strings.Split(csvHeader, ",")))
	require.Equal(t, []string{"tak", "10", "2000000000", "1500000000", "cpu", "1234", "2", "24;16;8"}, rec[:8])
}

func TestByteCounter(t *testing.T) {
	bc := new(ByteCounter)
	n, err := bc.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	bc.Write([]byte("!"))
	require.EqualValues(t, 6, *bc)
}
