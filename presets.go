package triple

// MustParse parses a platform identifier and panics if it is invalid. For
// static initialisation of well-known triples, where a failure is a defect
// in the literal rather than bad input.
func MustParse(name string) Triple {
	t, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Well-known triples for commonly targeted platforms.
var (
	MacOS        = MustParse("x86_64-apple-macosx")
	Arm64MacOS   = MustParse("aarch64-apple-macosx")
	X8664Linux   = MustParse("x86_64-unknown-linux")
	I686Linux    = MustParse("i686-unknown-linux")
	PPC64LELinux = MustParse("powerpc64le-unknown-linux")
	S390XLinux   = MustParse("s390x-unknown-linux")
	Arm64Linux   = MustParse("aarch64-unknown-linux")
	ArmLinux     = MustParse("armv7-unknown-linux-gnueabihf")
	ArmAndroid   = MustParse("armv7-unknown-linux-androideabi")
	Arm64Android = MustParse("aarch64-unknown-linux-android")
	X8664Windows = MustParse("x86_64-unknown-windows")
)

// Known lists every well-known triple.
var Known = []Triple{
	MacOS,
	Arm64MacOS,
	X8664Linux,
	I686Linux,
	PPC64LELinux,
	S390XLinux,
	Arm64Linux,
	ArmLinux,
	ArmAndroid,
	Arm64Android,
	X8664Windows,
}
