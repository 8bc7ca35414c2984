package config

// Environment variable names
const (
	EnvResultsPath      = "REFUGE_RESULTS_PATH"
	EnvDefaultName      = "REFUGE_DEFAULT_NAME"
	EnvSeed             = "REFUGE_SEED"
	EnvVariance         = "REFUGE_VARIANCE"
	EnvTelemetry        = "REFUGE_TELEMETRY"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvVersion          = "VERSION"
	EnvHoneycombAPIKey  = "HONEYCOMB_REFUGE_API_KEY"
	EnvHoneycombDataset = "HONEYCOMB_REFUGE_DATASET"
)

// Defaults
const (
	DefaultResultsPath = "game_results.txt"
	DefaultPlayerName  = "Steve"
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultDataset     = "refuge"
)

// allEnvVars is used by tests to start from a clean environment.
var allEnvVars = []string{
	EnvResultsPath,
	EnvDefaultName,
	EnvSeed,
	EnvVariance,
	EnvTelemetry,
	EnvLogLevel,
	EnvLogFormat,
	EnvEnvironment,
	EnvVersion,
	EnvHoneycombAPIKey,
	EnvHoneycombDataset,
}
