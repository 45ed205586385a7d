package capture

import "time"

// LoaderStats summarises load activity for instrumentation.
type LoaderStats struct {
	Requests     uint64
	Dropped      uint64
	Failures     uint64
	AvgLoad      time.Duration
	LastLoad     time.Time
	LastSequence uint64
}
