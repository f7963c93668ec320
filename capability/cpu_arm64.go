//go:build arm64
// +build arm64

package capability

// detectFeaturesImpl fills in the arm64-specific feature flags. Every
// arm64 target Go supports has NEON.
func detectFeaturesImpl() {
	features.NEON = true
}
