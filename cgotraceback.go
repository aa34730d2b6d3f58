//go:build cgo && cgotraceback
// +build cgo,cgotraceback

package main

// Symbolizes C frames in CPU profiles of the cgo workload.
import _ "github.com/nsrip-dd/cgotraceback"

func init() {
	usingCgotraceback = true
}
