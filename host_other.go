//go:build !(darwin && (amd64 || arm64)) && !(linux && (amd64 || arm64 || arm || 386 || ppc64le || s390x)) && !(windows && amd64)

package triple

// Host falls back to x86_64 Linux on platforms without a dedicated
// selection above.
var Host = X8664Linux
