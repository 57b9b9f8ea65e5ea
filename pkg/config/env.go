package config

// EnvPrefix is the envconfig prefix shared by every setting.
const EnvPrefix = "AURA"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, error
// messages).
const (
	EnvAppEnv     = "AURA_APP_ENV"
	EnvPort       = "AURA_APP_PORT"
	EnvDBDSN      = "AURA_DB_DSN"
	EnvDBHost     = "AURA_DB_HOST"
	EnvDBUser     = "AURA_DB_USER"
	EnvDBName     = "AURA_DB_NAME"
	EnvRedisURL   = "AURA_REDIS_URL"
	EnvJWTSecret  = "AURA_JWT_SECRET"
	EnvJWTIssuer  = "AURA_JWT_ISSUER"
	EnvJWTExpMins = "AURA_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
