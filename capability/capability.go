// Package capability reports host SIMD feature availability for
// diagnostic display. It has no effect on codec behavior: block.Encode
// and block.Decode run the same scalar algorithm on every host, so
// output stays bit-exact regardless of what the machine could
// accelerate with; this package only tells a caller what that would
// have been.
package capability

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// Features describes the SIMD instruction sets available on the
// current host.
type Features struct {
	SSE2   bool
	SSE41  bool
	AVX2   bool
	AVX512 bool
	NEON   bool
	GOARCH string
	numCPU int
}

var (
	detectOnce sync.Once
	features   Features
)

// Detect returns the host's SIMD feature set. The underlying probe
// runs once per process.
func Detect() Features {
	detectOnce.Do(func() {
		features.GOARCH = runtime.GOARCH
		features.numCPU = runtime.NumCPU()
		detectFeaturesImpl()
	})
	return features
}

// String renders a short human-readable summary, e.g.
// "amd64 (8 cpus): sse2 sse4.1 avx2".
func (f Features) String() string {
	var set []string
	if f.SSE2 {
		set = append(set, "sse2")
	}
	if f.SSE41 {
		set = append(set, "sse4.1")
	}
	if f.AVX2 {
		set = append(set, "avx2")
	}
	if f.AVX512 {
		set = append(set, "avx512")
	}
	if f.NEON {
		set = append(set, "neon")
	}
	if len(set) == 0 {
		set = []string{"none"}
	}
	return fmt.Sprintf("%s (%d cpus): %s", f.GOARCH, f.numCPU, strings.Join(set, " "))
}
