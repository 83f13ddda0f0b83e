// Package ui provides the Bubble Tea TUI for atlascope.
package ui

import (
	"time"

	"atlascope/internal/country"
)

// DatasetLoaded is sent when the country dataset has been loaded, either
// from the remote cache or from the offline snapshot fallback.
type DatasetLoaded struct {
	Countries    []country.Country
	Err          error
	FromSnapshot bool
	SnapshotAt   time.Time
}

// DatasetRefreshed is sent by the background refresh coordinator when a
// re-warm of the cache completed.
type DatasetRefreshed struct {
	Countries []country.Country
	Err       error
}
