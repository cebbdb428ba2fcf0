package messages

// Application data directory messages.
const (
	// AppDataRootRequired indicates Init was called without a root.
	AppDataRootRequired    = "appdata root path is required"
	AppDataCreateDirFmt    = "create %s: %w"
	AppDataDeleteFailed    = "Error while deleting path"
	AppDataDeletingExisted = "Deleting existing application data directory (config, database, etc.)"
	AppDataInitializing    = "Initializing new application data directory..."

	// LoggingOpenFmt formats log file open errors.
	LoggingOpenFmt = "open log file %s: %w"
)
