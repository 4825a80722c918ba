//go:build linux && s390x

package triple

// Host is the well-known triple for the platform this code was compiled
// for.
var Host = S390XLinux
