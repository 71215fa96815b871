package hwloc

import (
	"fmt"

	"github.com/numalab/hwloc-go/internal/bindings"
)

// Version is the wrapper version, populated at build time via ldflags. In
// development it defaults to v0.0.0-dev.
var Version = "v0.0.0-dev"

// WrapperVersion returns the version of these bindings.
func WrapperVersion() string {
	return Version
}

// APIVersion returns the native hwloc API version split into major, minor
// and patch. All zero when the native bindings are not built.
func APIVersion() (major, minor, patch int) {
	v := bindings.GetAPIVersion()
	return v >> 16, (v >> 8) & 0xff, v & 0xff
}

// APIVersionString renders the native API version as "major.minor.patch".
func APIVersionString() string {
	major, minor, patch := APIVersion()
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
