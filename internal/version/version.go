// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report a release tag when stamped, otherwise the VCS revision from build info.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version is stamped at release time with -ldflags "-X .../internal/version.Version=v1.2.3".
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns, in order of preference: the stamped Version, the module
// version of an installed binary, the short VCS revision (with "(dirty)" for a
// modified tree), or "dev".
func GetVersion() string {
	if v := strings.TrimSpace(Version); v != "" {
		return v
	}
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
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
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
