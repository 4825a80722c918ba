package triple

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestExtensions(t *testing.T) {
	cases := []struct {
		os      OS
		dynamic string
		exe     string
		bundle  string
	}{
		{OSDarwin, ".dylib", "", ".bundle"},
		{OSMacOS, ".dylib", "", ".bundle"},
		{OSLinux, ".so", "", ".resources"},
		{OSNone, ".so", "", ".resources"},
		{OSWindows, ".dll", ".exe", ".resources"},
	}
	for _, tt := range cases {
		t.Run(string(tt.os), func(t *testing.T) {
			assert.Equal(t, tt.dynamic, tt.os.DynamicLibraryExtension())
			assert.Equal(t, tt.exe, tt.os.ExecutableExtension())
			assert.Equal(t, tt.bundle, tt.os.BundleExtension())
		})
	}
}

func TestExecutableExtensionWindowsOnly(t *testing.T) {
	for _, os := range osOrder {
		if os == OSWindows {
			assert.Equal(t, ".exe", os.ExecutableExtension())
		} else {
			assert.Equal(t, "", os.ExecutableExtension())
		}
	}
}

func TestExtensionsRejectUnknownOS(t *testing.T) {
	assert.Panics(t, func() { OS("beos").DynamicLibraryExtension() })
	assert.Panics(t, func() { OS("beos").ExecutableExtension() })
	assert.Panics(t, func() { OS("beos").BundleExtension() })
}
