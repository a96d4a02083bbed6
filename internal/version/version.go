// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version provides build-time version information.
package version

import "fmt"

// Info contains build-time version information injected via ldflags.
type Info struct {
	Version   string `json:"version"`    // Semantic version from git tags (e.g., "v1.2.3")
	GitCommit string `json:"git_commit"` // Short git commit hash (e.g., "abc1234")
	BuildTime string `json:"build_time"` // Build timestamp in RFC3339 format
}

// New returns Info with "dev" and "unknown" standing in for values the
// build did not inject.
func New(version, commit, buildTime string) Info {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if buildTime == "" {
		buildTime = "unknown"
	}
	return Info{Version: version, GitCommit: commit, BuildTime: buildTime}
}

// String formats the version for `quillfolio version`.
func (i Info) String() string {
	return fmt.Sprintf("quillfolio %s (commit %s, built %s)", i.Version, i.GitCommit, i.BuildTime)
}
