//go:build amd64
// +build amd64

package capability

import "golang.org/x/sys/cpu"

// detectFeaturesImpl fills in the amd64-specific feature flags.
func detectFeaturesImpl() {
	features.SSE2 = cpu.X86.HasSSE2
	features.SSE41 = cpu.X86.HasSSE41
	features.AVX2 = cpu.X86.HasAVX2
	features.AVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
}
