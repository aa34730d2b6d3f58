package main

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Tak is the Takeuchi function. It does no useful work; the point is the
// number of calls it makes.
//
//go:noinline
func Tak(x, y, z int) int {
	if y >= x {
		return z
	}
	return Tak(Tak(x-1, y, z), Tak(y-1, z, x), Tak(z-1, x, y))
}

// Input is an argument triple for Tak.
type Input struct {
	X, Y, Z int
}

// Canonical is the standard benchmark input. Tak(Canonical) is 9.
var Canonical = Input{24, 16, 8}

var presets = map[string]Input{
	"canonical": Canonical,
	"small":     {18, 12, 6},
	"heavy":     {30, 20, 10},
}

func (in Input) String() string {
	return strconv.Itoa(in.X) + ";" + strconv.Itoa(in.Y) + ";" + strconv.Itoa(in.Z)
}

// ParseInput accepts either a preset name or three comma-separated integers.
func ParseInput(s string) (Input, error) {
	if in, ok := presets[s]; ok {
		return in, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Input{}, errors.Errorf("input %q: want a preset or x,y,z", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Input{}, errors.Wrapf(err, "input %q", s)
		}
		v[i] = n
	}
	return Input{v[0], v[1], v[2]}, nil
}

// sink keeps the compiler from discarding Tak calls whose result is unused.
var sink int64

// TakWorkload runs Tak once per iteration and checks the answer. One
// TakWorkload may be shared by all of the runner's goroutines.
type TakWorkload struct {
	Input Input

	// Want is computed by the first Setup call.
	Want int

	once sync.Once
}

func (t *TakWorkload) Setup() error {
	t.once.Do(func() {
		t.Want = Tak(t.Input.X, t.Input.Y, t.Input.Z)
	})
	return nil
}

func (t *TakWorkload) Run() error {
	got := Tak(t.Input.X, t.Input.Y, t.Input.Z)
	atomic.StoreInt64(&sink, int64(got))
	if got != t.Want {
		return errors.Errorf("tak(%d, %d, %d) = %d, want %d", t.Input.X, t.Input.Y, t.Input.Z, got, t.Want)
	}
	return nil
}
