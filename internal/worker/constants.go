package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgQueueFull         = "Worker queue full, dropping job"
	LogMsgPoolStopped       = "Worker pool stopped, dropping job"
)

// ============================================================================
// Log Messages - Catalog Refresh
// ============================================================================

// Log messages for catalog refresh jobs
const (
	LogMsgCatalogRefreshStarting  = "Catalog refresh starting"
	LogMsgCatalogRefreshCompleted = "Catalog refresh completed"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 30 * time.Second

// DefaultQueueSize is the pool queue length used when none is given
const DefaultQueueSize = 16
