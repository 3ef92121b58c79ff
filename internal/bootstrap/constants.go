package bootstrap

// File system permissions
const (
	DirPermission     = 0o755
	LogFilePermission = 0o644
)

// Log file rotation
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is how many earlier session logs survive startup
	LogFileRetentionCount = 9
)

// Startup and shutdown log messages
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting IdleMiner"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"

	LogMsgDatabaseConnected = "Database connected"
	LogMsgItemsWarmed       = "Item cache warmed"
	LogMsgLootSeeded        = "Loot roller seeded"

	LogMsgShuttingDownServer   = "Shutting down server"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgServerStopped        = "Server stopped"
)
