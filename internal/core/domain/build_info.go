package domain

import "time"

// PackageRecord is the history entry written for each produced package.
type PackageRecord struct {
	Package   string    `json:"package,omitzero"`
	Path      string    `json:"path,omitzero"`
	Digest    string    `json:"digest,omitzero"`
	Items     []string  `json:"items,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
