//go:build windows && amd64

package triple

// Host is the well-known triple for the platform this code was compiled
// for.
var Host = X8664Windows
