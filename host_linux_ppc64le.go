//go:build linux && ppc64le

package triple

// Host is the well-known triple for the platform this code was compiled
// for.
var Host = PPC64LELinux
