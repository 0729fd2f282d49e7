package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build metadata, set with -ldflags "-X github.com/idahoesports/site/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = ""
	BuildDate = ""
)

// Info is the build information reported by the version command and the
// health check.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func Get() Info {
	return Info{
		Version:   GetVersion(),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// GetVersion prefers the ldflags version and falls back to the module version
// recorded by go install.
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	return "dev"
}

// GetShortVersion appends the abbreviated commit when one is known.
func GetShortVersion() string {
	v := GetVersion()
	if len(GitCommit) >= 7 {
		return fmt.Sprintf("%s-%s", v, GitCommit[:7])
	}
	return v
}

// UserAgent identifies the site in outbound API calls.
func UserAgent() string {
	return "idahoesports-site/" + GetShortVersion()
}
