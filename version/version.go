// Package version exposes build metadata of the streamguard binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// Branch is the git branch, set via ldflags.
	Branch string
	// BuildUser is the user who built the binary, set via ldflags.
	BuildUser string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the git commit revision.
	Revision = getRevision()
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
	// GoOS is the operating system target.
	GoOS = runtime.GOOS
	// GoArch is the architecture target.
	GoArch = runtime.GOARCH
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string `json:"version"    yaml:"version"`
	Revision  string `json:"revision"   yaml:"revision"`
	Branch    string `json:"branch"     yaml:"branch"`
	BuildUser string `json:"build_user" yaml:"build_user"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform"   yaml:"platform"`
}

// Get returns the current build metadata. Unset values are reported as
// "unknown".
func Get() Info {
	return Info{
		Version:   orUnknown(Version),
		Revision:  orUnknown(Revision),
		Branch:    orUnknown(Branch),
		BuildUser: orUnknown(BuildUser),
		BuildDate: orUnknown(BuildDate),
		GoVersion: GoVersion,
		Platform:  GoOS + "/" + GoArch,
	}
}

// String formats i as a short multi-line report.
func (i Info) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "streamguard %s (revision %s, branch %s)\n", i.Version, i.Revision, i.Branch)
	fmt.Fprintf(&sb, "  built by %s on %s\n", i.BuildUser, i.BuildDate)
	fmt.Fprintf(&sb, "  %s %s\n", i.GoVersion, i.Platform)

	return sb.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}

	return s
}

func getRevision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
