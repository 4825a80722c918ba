package triple

// File extension conventions per OS. Each lookup covers every OS value
// explicitly; a value outside the enumeration is a programming error.

// DynamicLibraryExtension returns the extension dynamic libraries carry on
// the OS, including the leading dot.
func (os OS) DynamicLibraryExtension() string {
	switch os {
	case OSDarwin, OSMacOS:
		return ".dylib"
	case OSLinux, OSNone:
		return ".so"
	case OSWindows:
		return ".dll"
	}
	panic("unrecognised OS " + string(os))
}

// ExecutableExtension returns the extension executables carry on the OS.
// Empty everywhere except Windows.
func (os OS) ExecutableExtension() string {
	switch os {
	case OSDarwin, OSMacOS, OSLinux, OSNone:
		return ""
	case OSWindows:
		return ".exe"
	}
	panic("unrecognised OS " + string(os))
}

// BundleExtension returns the extension resource bundles carry on the OS.
func (os OS) BundleExtension() string {
	switch os {
	case OSDarwin, OSMacOS:
		return ".bundle"
	case OSLinux, OSNone, OSWindows:
		return ".resources"
	}
	panic("unrecognised OS " + string(os))
}
