//go:build darwin && arm64

package triple

// Host is the well-known triple for the platform this code was compiled
// for.
var Host = Arm64MacOS
