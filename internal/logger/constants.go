package logger

// Log level string values
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Log format string values
const (
	FormatJSON = "json"
	FormatText = "text"
)

const (
	DefaultServiceName = "refuge"
	DefaultVersion     = "dev"
)

// Attribute keys
const (
	AttrService     = "service"
	AttrVersion     = "version"
	AttrEnvironment = "environment"
	AttrSessionID   = "session_id"
)
