// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (Git commit, state) to the CLI.
package version

import (
	"runtime/debug"
)

// Version may be set at build time via -ldflags "-X .../version.Version=v1.2.3".
// When empty, the VCS revision from build info is used instead.
var Version string

// GetVersion returns the release version when set, otherwise the VCS
// revision (suffixed with "(dirty)" if the tree was modified), and "dev"
// when no build info is available.
func GetVersion() string {
	if Version != "" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return revision + " (dirty)"
	}
	return revision
}
