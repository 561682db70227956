// Package version provides build version information for seclog.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the semantic version (set by build flags)
	Version = "0.1.0-dev"
	// Commit is the git commit hash (set by build flags)
	Commit = ""
	// BuildDate is the build date (set by build flags)
	BuildDate = ""
)

// Info contains version and build information
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit,omitempty" yaml:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty" yaml:"build_date,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the version information. Without a stamped commit it falls
// back to the VCS settings recorded by the Go toolchain.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if info.Commit != "" {
		return info
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Commit = s.Value
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			}
		}
	}
	return info
}

// String returns a formatted version string
func (i Info) String() string {
	return i.Version
}

// Full returns a detailed version string with all known build information
func (i Info) Full() string {
	commit := i.Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}

	var build string
	switch {
	case commit != "" && i.BuildDate != "":
		build = fmt.Sprintf(" (%s, %s)", commit, i.BuildDate)
	case commit != "":
		build = fmt.Sprintf(" (%s)", commit)
	}
	return fmt.Sprintf("%s%s %s %s", i.Version, build, i.GoVersion, i.Platform)
}
