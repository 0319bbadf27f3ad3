package schema

import "time"

// CacheStatus represents the status of the local pending cache.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// RemoteStatus represents the status of the remote score store.
type RemoteStatus struct {
	Backend     string           `json:"backend"`
	Connected   bool             `json:"connected"`
	LastUpdated time.Time        `json:"last_updated"`
	TableSizes  map[string]int64 `json:"table_sizes"`
}

// SyncStatus is the session status held next to the pending data.
type SyncStatus struct {
	IsSyncing    bool       `json:"isSyncing"`
	LastSyncTime *time.Time `json:"lastSyncTime"`
	Error        string     `json:"error,omitempty"`
	PendingCount int        `json:"pendingCount"`
}

// SyncResult reports the outcome of a save.
type SyncResult struct {
	Success  bool      `json:"success"`
	Source   string    `json:"source,omitempty"`
	Count    int       `json:"count"`
	Comments int       `json:"comments"`
	SyncedAt time.Time `json:"syncedAt,omitzero"`
}
