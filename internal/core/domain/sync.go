package domain

import "time"

// SyncResult reports one collection copied into the local mirror.
type SyncResult struct {
	Kind     ContentKind   `json:"kind"`
	Stored   int           `json:"stored"`
	Rejected int           `json:"rejected"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// OK reports whether the collection synced without error.
func (r SyncResult) OK() bool {
	return r.Err == nil
}
