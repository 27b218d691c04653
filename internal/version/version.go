// Package version reports build information for the binary.
package version

import (
	"runtime"
	"runtime/debug"
)

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

// Get returns the module version recorded in the build, or "(devel)".
func Get() Info {
	info := Info{Version: "(devel)", GoVersion: runtime.Version()}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		info.Version = bi.Main.Version
	}
	return info
}
