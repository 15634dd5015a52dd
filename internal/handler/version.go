package handler

import (
	"net/http"
	"os"
	"runtime"

	"github.com/osse101/GrowRoom_Go/internal/domain"
)

// Set with -ldflags "-X github.com/osse101/GrowRoom_Go/internal/handler.Version=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// VersionInfo describes the running binary and the save format it writes
type VersionInfo struct {
	Version       string `json:"version"`
	GoVersion     string `json:"go_version"`
	BuildTime     string `json:"build_time,omitempty"`
	GitCommit     string `json:"git_commit,omitempty"`
	SchemaVersion int    `json:"save_schema_version"`
}

// HandleVersion reports build information
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:       VersionString(),
			GoVersion:     runtime.Version(),
			BuildTime:     BuildTime,
			GitCommit:     GitCommit,
			SchemaVersion: domain.StateSchemaVersion,
		})
	}
}

// VersionString prefers the linked version, then $VERSION
func VersionString() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
