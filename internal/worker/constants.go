package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, dropping job"
)

// ============================================================================
// Log Messages - Autosave Worker
// ============================================================================

// Log messages for autosave worker operations
const (
	LogMsgAutosaveScheduled     = "Profile save scheduled"
	LogMsgAutosaveRescheduled   = "Profile save rescheduled after new change"
	LogMsgAutosaveFired         = "Debounce window elapsed, queueing profile save"
	LogMsgAutosavePersisted     = "Profile saved"
	LogMsgAutosaveFailed        = "Failed to save profile"
	LogMsgAutosaveFlushing      = "Flushing pending profile saves"
	LogMsgAutosaveAfterShutdown = "Ignoring profile save scheduled after shutdown"
)

// ============================================================================
// Defaults
// ============================================================================

const (
	// DefaultJobTimeout bounds a single job's Process call
	DefaultJobTimeout = 30 * time.Second

	// DefaultAutosaveDelay is the debounce window between the last change and the write
	DefaultAutosaveDelay = time.Second

	autosaveWorkerName = "autosave worker"
)
