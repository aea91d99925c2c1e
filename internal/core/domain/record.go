package domain

import "time"

// BuildRecord is the persisted summary of the last successful build in an
// output directory. It lets clean locate what to remove and lets watch mode
// report what was produced, without re-deriving anything from the file system.
type BuildRecord struct {
	ConfigDigest string    `json:"config_digest"`
	Strategy     string    `json:"strategy"`
	Artifacts    []string  `json:"artifacts"`
	BuildDir     string    `json:"build_dir,omitempty"`
	FinishedAt   time.Time `json:"finished_at"`
	DurationMS   int64     `json:"duration_ms"`
}
