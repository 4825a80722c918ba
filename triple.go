// Package triple parses platform identifiers of the form
// <arch>-<vendor>-<os>[-<abi>], eg. "x86_64-apple-macosx10.10", into a
// structured description of a target platform.
//
// Build logic uses the parsed Triple to decide which OS, architecture and
// ABI specific behaviour applies.
package triple

import (
	"strings"

	"github.com/cashapp/triple/errors"
)

// Classification failures surfaced by Parse. Match with errors.Is().
var (
	ErrBadFormat           = errors.New("triple must have 3 or 4 fields")
	ErrUnknownArchitecture = errors.New("unknown architecture")
	ErrUnknownOS           = errors.New("unknown operating system")
)

// Arch is a CPU instruction-set family.
type Arch string

// Recognised architectures. The architecture field must match one of these
// exactly.
const (
	ArchX8664     Arch = "x86_64"
	ArchI686      Arch = "i686"
	ArchPPC64LE   Arch = "powerpc64le"
	ArchS390X     Arch = "s390x"
	ArchArm64     Arch = "aarch64"
	ArchArmV7     Arch = "armv7"
	ArchThumbV7M  Arch = "thumbv7m"
	ArchThumbV7EM Arch = "thumbv7em"
	ArchArm       Arch = "arm"
)

var archs = []Arch{
	ArchX8664, ArchI686, ArchPPC64LE, ArchS390X, ArchArm64,
	ArchArmV7, ArchThumbV7M, ArchThumbV7EM, ArchArm,
}

// Vendor is the organisation associated with a platform.
type Vendor string

// Recognised vendors. An unrecognised vendor field degrades to
// VendorUnknown rather than failing the parse.
const (
	VendorUnknown Vendor = "unknown"
	VendorApple   Vendor = "apple"
)

var vendors = []Vendor{VendorApple}

// OS is an operating system.
type OS string

// Recognised operating systems.
const (
	OSDarwin  OS = "darwin"
	OSMacOS   OS = "macosx"
	OSLinux   OS = "linux"
	OSWindows OS = "windows"
	OSNone    OS = "none"
)

// OS candidates in matching priority order. The OS field is matched by
// prefix and the first match wins, which is how "macosx10.10" resolves to
// OSMacOS while keeping the version suffix in the original string. The
// order must not change.
var osOrder = []OS{OSDarwin, OSMacOS, OSLinux, OSWindows, OSNone}

// ABI is an application binary interface variant.
type ABI string

// Recognised ABIs. An absent or unrecognised ABI field degrades to
// ABIUnknown rather than failing the parse.
const (
	ABIUnknown ABI = "unknown"
	ABIAndroid ABI = "android"
	ABIEABI    ABI = "eabi"
)

// Triple identifies a target platform.
//
// A Triple is immutable once constructed and is safe to share between
// goroutines. Name always round-trips to the exact string given to Parse.
type Triple struct {
	Name   string `json:"triple"`
	Arch   Arch   `json:"arch"`
	Vendor Vendor `json:"vendor"`
	OS     OS     `json:"os"`
	ABI    ABI    `json:"abi"`
}

// Parse classifies a platform identifier into a Triple.
//
// The identifier is split on "-" into non-empty fields, of which there must
// be exactly 3 or 4. The architecture field must match a known architecture
// exactly. The vendor field matches known vendors exactly, degrading to
// VendorUnknown. The OS field is matched by prefix in osOrder. A 4th field
// is matched by prefix against ABIAndroid only, degrading to ABIUnknown.
func Parse(name string) (Triple, error) {
	var fields []string
	for _, field := range strings.Split(name, "-") {
		if field != "" {
			fields = append(fields, field)
		}
	}
	if len(fields) != 3 && len(fields) != 4 {
		return Triple{}, errors.Wrapf(ErrBadFormat, "%q", name)
	}

	arch, ok := matchArch(fields[0])
	if !ok {
		return Triple{}, errors.Wrapf(ErrUnknownArchitecture, "%q", fields[0])
	}

	vendor := VendorUnknown
	for _, candidate := range vendors {
		if fields[1] == string(candidate) {
			vendor = candidate
			break
		}
	}

	os, ok := matchOS(fields[2])
	if !ok {
		return Triple{}, errors.Wrapf(ErrUnknownOS, "%q", fields[2])
	}

	abi := ABIUnknown
	if len(fields) == 4 && strings.HasPrefix(fields[3], string(ABIAndroid)) {
		abi = ABIAndroid
	}

	return Triple{
		Name:   name,
		Arch:   arch,
		Vendor: vendor,
		OS:     os,
		ABI:    abi,
	}, nil
}

func matchArch(field string) (Arch, bool) {
	for _, arch := range archs {
		if field == string(arch) {
			return arch, true
		}
	}
	return "", false
}

func matchOS(field string) (OS, bool) {
	for _, os := range osOrder {
		if strings.HasPrefix(field, string(os)) {
			return os, true
		}
	}
	return "", false
}

func (t Triple) String() string {
	return t.Name
}

// IsAndroid returns true for Linux platforms with the Android ABI.
func (t Triple) IsAndroid() bool {
	return t.OS == OSLinux && t.ABI == ABIAndroid
}

// IsDarwin returns true for Apple or Darwin-family platforms. An Apple
// vendor counts regardless of OS, and a Darwin-family OS counts regardless
// of vendor.
func (t Triple) IsDarwin() bool {
	return t.Vendor == VendorApple || t.OS == OSMacOS || t.OS == OSDarwin
}

// IsLinux returns true for Linux platforms.
func (t Triple) IsLinux() bool {
	return t.OS == OSLinux
}

// IsWindows returns true for Windows platforms.
func (t Triple) IsWindows() bool {
	return t.OS == OSWindows
}

// WithPlatformVersion returns the original identifier with version appended
// verbatim. It is only valid on Darwin platforms; calling it on anything
// else is a bug in the caller and panics.
func (t Triple) WithPlatformVersion(version string) string {
	if !t.IsDarwin() {
		panic("WithPlatformVersion called on non-Darwin triple " + t.Name)
	}
	return t.Name + version
}
