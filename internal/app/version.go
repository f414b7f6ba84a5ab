package app

import (
	"fmt"
	"runtime/debug"
)

// Build metadata stamped into cmd/server and cmd/wortgen release builds:
//
//	go build -ldflags "-X github.com/heartmarshall/wortschatz-backend/internal/app.Version=v1.2.0 \
//	  -X github.com/heartmarshall/wortschatz-backend/internal/app.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/heartmarshall/wortschatz-backend/internal/app.BuildTime=$(date -u +%FT%TZ)" ./cmd/...
//
// Unstamped builds report the VCS revision the toolchain embeds, if any.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is the version shown in startup logs, /health and wortgen --version.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, debug.ReadBuildInfo)
}

func formatVersion(version, commit, built string, readInfo func() (*debug.BuildInfo, bool)) string {
	if commit == "" || built == "" {
		if info, ok := readInfo(); ok {
			for _, s := range info.Settings {
				switch {
				case s.Key == "vcs.revision" && commit == "":
					commit = shortRevision(s.Value)
				case s.Key == "vcs.time" && built == "":
					built = s.Value
				}
			}
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
