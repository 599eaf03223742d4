package bootstrap

// Log messages for startup
const (
	LogMsgStarting            = "Starting plot planner"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgStorageMemory       = "Profiles kept in memory, nothing survives a restart"
	LogMsgStoragePostgres     = "Profiles stored in PostgreSQL"
	LogMsgCatalogReloadJob    = "catalog-reload"
)

// Error messages for startup
const (
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrate         = "failed to migrate database"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgFlushingProfiles     = "Flushing pending profile saves..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgAutosaveFlushFailed  = "Autosave flush failed"
	LogMsgAutosaveStopFailed   = "Autosave worker shutdown failed"
)
