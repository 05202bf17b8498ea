package config

const (
	EnvPrefix = "quoter"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv        = "QUOTER_APP_ENV"
	EnvAppPort       = "QUOTER_APP_PORT"
	EnvLogLevel      = "QUOTER_LOG_LEVEL"
	EnvQuoteTTL      = "QUOTER_QUOTE_TTL"
	EnvSweepInterval = "QUOTER_SWEEP_INTERVAL"
)
