package app

import "fmt"

// Build metadata, stamped at link time:
//
//	-ldflags "-X github.com/heartmarshall/lifelog-timeline/internal/app.Version=1.4.0
//	          -X github.com/heartmarshall/lifelog-timeline/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version line the server logs at startup and /health
// reports. Local builds print just "dev".
func BuildVersion() string {
	if Commit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s+%s (%s)", Version, Commit, BuildTime)
}
