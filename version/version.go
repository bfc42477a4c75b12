// Package version derives a human-readable version string from the build
// information stamped into the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

func FromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unavailable"
	}

	var revision, ts string

	for i := range info.Settings {
		switch info.Settings[i].Key {
		case "vcs.revision":
			revision = info.Settings[i].Value
		case "vcs.time":
			ts = info.Settings[i].Value
		}
	}

	if revision == "" {
		return info.Main.Version
	}

	if len(revision) > 12 {
		revision = revision[:12]
	}

	if ts == "" {
		return fmt.Sprintf("%s (revision %s)", info.Main.Version, revision)
	}

	return fmt.Sprintf("%s (revision %s, built at %s)", info.Main.Version, revision, ts)
}
