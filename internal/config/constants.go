package config

import "time"

// Storage backends
const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

// Defaults applied when an environment variable is unset or unparsable
const (
	DefaultPort                  = 8080
	DefaultLogLevel              = "info"
	DefaultLogFormat             = "text"
	DefaultEnvironment           = "dev"
	DefaultServiceName           = "plotplanner"
	DefaultVersion               = "dev"
	DefaultDataDir               = "data"
	DefaultStorageBackend        = StorageBackendMemory
	DefaultDBUser                = "postgres"
	DefaultDBPassword            = "postgres"
	DefaultDBHost                = "localhost"
	DefaultDBPort                = "5432"
	DefaultDBName                = "plotplanner"
	DefaultDBMaxConns            = 20
	DefaultDBMaxConnIdleTime     = 5 * time.Minute
	DefaultDBMaxConnLifetime     = 30 * time.Minute
	DefaultAutosaveDelay         = time.Second
	DefaultCatalogReloadInterval = 0
	DefaultStrategyCacheSize     = 256
	DefaultStrategyCacheTTL      = 10 * time.Minute
	DefaultWorkerCount           = 2
	DefaultWorkerQueueSize       = 64
	DefaultMaxRequestBytes       = 1 << 20
)
