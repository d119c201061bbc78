package domain

import "time"

// InstallInfo is the persisted record for one tracked package. The state
// store keeps one entry per package so update mode knows what was installed,
// from where, and at which revision.
type InstallInfo struct {
	Package      string    `json:"package"`
	URL          string    `json:"url"`
	Branch       string    `json:"branch"`
	Revision     string    `json:"revision,omitzero"`
	ManifestHash string    `json:"manifest_hash,omitzero"`
	Timestamp    time.Time `json:"timestamp,omitzero"`
}
