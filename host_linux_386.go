//go:build linux && 386

package triple

// Host is the well-known triple for the platform this code was compiled
// for.
var Host = I686Linux
