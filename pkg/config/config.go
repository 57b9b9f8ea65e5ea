package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Admin        AdminConfig
	Advisor      AdvisorConfig
	Checkout     CheckoutConfig
	FeatureFlags FeatureFlagsConfig
	CORS         CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AURA_APP_ENV" required:"true"`
	Port         string `envconfig:"AURA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"AURA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AURA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"AURA_DB_DSN"`
	Driver string `envconfig:"AURA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"AURA_DB_HOST"`
	LegacyPort     int    `envconfig:"AURA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"AURA_DB_USER"`
	LegacyPassword string `envconfig:"AURA_DB_PASSWORD"`
	LegacyName     string `envconfig:"AURA_DB_NAME"`
	LegacySSLMode  string `envconfig:"AURA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"AURA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AURA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AURA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AURA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"AURA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"AURA_REDIS_ADDR"`
	Password     string        `envconfig:"AURA_REDIS_PASSWORD"`
	DB           int           `envconfig:"AURA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AURA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AURA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AURA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AURA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AURA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"AURA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"AURA_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"AURA_JWT_EXPIRATION_MINUTES" required:"true"`
	SessionTTLMinutes int    `envconfig:"AURA_SESSION_TTL_MINUTES" default:"43200"`
}

// SessionTTL returns the refresh session TTL configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

// AdminConfig seeds the admin-console account at startup. Leaving the email
// empty disables seeding.
type AdminConfig struct {
	Email    string `envconfig:"AURA_ADMIN_EMAIL"`
	Name     string `envconfig:"AURA_ADMIN_NAME" default:"Store Admin"`
	Password string `envconfig:"AURA_ADMIN_PASSWORD"`
}

type PasswordConfig struct {
	MinLength        int `envconfig:"AURA_PASSWORD_MIN_LENGTH" default:"6"`
	ArgonMemoryKB    int `envconfig:"AURA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"AURA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"AURA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"AURA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"AURA_ARGON_KEY_LEN" default:"32"`
}

type AdvisorConfig struct {
	APIKey      string        `envconfig:"AURA_ADVISOR_API_KEY"`
	BaseURL     string        `envconfig:"AURA_ADVISOR_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	Model       string        `envconfig:"AURA_ADVISOR_MODEL" default:"gemini-3-flash-preview"`
	Temperature float64       `envconfig:"AURA_ADVISOR_TEMPERATURE" default:"0.7"`
	TopK        int           `envconfig:"AURA_ADVISOR_TOP_K" default:"40"`
	TopP        float64       `envconfig:"AURA_ADVISOR_TOP_P" default:"0.95"`
	Timeout     time.Duration `envconfig:"AURA_ADVISOR_TIMEOUT" default:"30s"`
}

type CheckoutConfig struct {
	// DecrementStock toggles inventory decrement at order placement. The
	// storefront historically never decremented stock; keep it off unless
	// inventory is reconciled through the admin console.
	DecrementStock bool          `envconfig:"AURA_INVENTORY_DECREMENT_ON_ORDER" default:"false"`
	CartTTL        time.Duration `envconfig:"AURA_CART_TTL" default:"720h"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"AURA_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"AURA_CORS_ALLOWED_ORIGINS" default:"*"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
