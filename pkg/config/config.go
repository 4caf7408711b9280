package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "CANTINA"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "CANTINA_DB_DSN"
	EnvDBHost = "CANTINA_DB_HOST"
	EnvDBUser = "CANTINA_DB_USER"
	EnvDBName = "CANTINA_DB_NAME"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	CORS    CORSConfig
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
	Env          string `envconfig:"CANTINA_APP_ENV" required:"true"`
	Port         string `envconfig:"CANTINA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CANTINA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CANTINA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CANTINA_DB_DSN"`
	Driver string `envconfig:"CANTINA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CANTINA_DB_HOST"`
	LegacyPort     int    `envconfig:"CANTINA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CANTINA_DB_USER"`
	LegacyPassword string `envconfig:"CANTINA_DB_PASSWORD"`
	LegacyName     string `envconfig:"CANTINA_DB_NAME"`
	LegacySSLMode  string `envconfig:"CANTINA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CANTINA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CANTINA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CANTINA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CANTINA_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	AutoMigrate bool `envconfig:"CANTINA_DB_AUTO_MIGRATE" default:"false"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CANTINA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"CANTINA_REDIS_ADDR"`
	Password     string        `envconfig:"CANTINA_REDIS_PASSWORD"`
	DB           int           `envconfig:"CANTINA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CANTINA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CANTINA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CANTINA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CANTINA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CANTINA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CatalogConfig struct {
	CacheTTL time.Duration `envconfig:"CANTINA_CATALOG_CACHE_TTL" default:"5m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CANTINA_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	// sqlite deployments point at a file, not a server
	if strings.EqualFold(db.Driver, DriverSQLite) {
		return fmt.Errorf("%s is required when the sqlite driver is selected", EnvDBDSN)
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
