//go:build !amd64 && !arm64
// +build !amd64,!arm64

package capability

// detectFeaturesImpl is the fallback for architectures with no
// detected SIMD feature set.
func detectFeaturesImpl() {}
