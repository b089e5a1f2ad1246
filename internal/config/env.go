package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	ModeDatabase = "database"
	ModeSearch   = "search"

	// DefaultJWTSecret is only meant for local development.
	DefaultJWTSecret = "innstay-dev-secret-change-me"
)

type Env struct {
	AppAddr  string
	AppMode  string
	GinMode  string
	LogLevel string

	CORSOrigins []string

	DB DBEnv

	JWTSecret string
	JWTTTL    time.Duration

	UploadDir     string
	PublicBaseURL string

	AdminName     string
	AdminEmail    string
	AdminPassword string

	Amadeus AmadeusEnv

	SearchCacheSize int
	SearchCacheTTL  time.Duration
	Redis           RedisEnv
}

type DBEnv struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

type AmadeusEnv struct {
	APIKey    string
	APISecret string
	BaseURL   string
	Timeout   time.Duration
}

type RedisEnv struct {
	Addr     string
	Password string
	DB       int
}

// LoadEnv reads .env (when present) and the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	mode := strings.ToLower(getenv("APP_MODE", ModeDatabase))
	if mode != ModeSearch {
		mode = ModeDatabase
	}

	return Env{
		AppAddr:     getenv("APP_ADDR", ":5000"),
		AppMode:     mode,
		GinMode:     getenv("GIN_MODE", ""),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		DB: DBEnv{
			DSN:          resolveMySQLDSN(),
			MaxOpenConns: getenvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getenvInt("DB_MAX_IDLE_CONNS", 25),
		},
		JWTSecret:     getenv("JWT_SECRET", DefaultJWTSecret),
		JWTTTL:        getenvDuration("JWT_TTL", 24*time.Hour),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		PublicBaseURL: strings.TrimRight(getenv("PUBLIC_BASE_URL", ""), "/"),
		AdminName:     getenv("ADMIN_NAME", "Administrator"),
		AdminEmail:    getenv("ADMIN_EMAIL", ""),
		AdminPassword: getenv("ADMIN_PASSWORD", ""),
		Amadeus: AmadeusEnv{
			APIKey:    getenv("AMADEUS_API_KEY", ""),
			APISecret: getenv("AMADEUS_API_SECRET", ""),
			BaseURL:   strings.TrimRight(getenv("AMADEUS_BASE_URL", "https://test.api.amadeus.com"), "/"),
			Timeout:   getenvDuration("AMADEUS_TIMEOUT", 10*time.Second),
		},
		SearchCacheSize: getenvInt("SEARCH_CACHE_SIZE", 100),
		SearchCacheTTL:  getenvDuration("SEARCH_CACHE_TTL", 30*time.Minute),
		Redis: RedisEnv{
			Addr:     getenv("REDIS_ADDR", ""),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getenvInt("REDIS_DB", 0),
		},
	}
}

// UsesDefaultJWTSecret reports whether JWT_SECRET was left unset.
func (e Env) UsesDefaultJWTSecret() bool {
	return e.JWTSecret == DefaultJWTSecret
}

// resolveMySQLDSN accepts MYSQL_URL / DATABASE_URL as either a mysql:// URL
// or a driver DSN, and falls back to the DB_* variables.
func resolveMySQLDSN() string {
	for _, key := range []string{"MYSQL_URL", "DATABASE_URL"} {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "mysql://") {
			if dsn, ok := dsnFromURL(raw); ok {
				return dsn
			}
			continue
		}
		if dsn, ok := normalizeDSN(raw); ok {
			return dsn
		}
	}

	cfg := baseMySQLConfig()
	cfg.User = getenv("DB_USER", "root")
	cfg.Passwd = os.Getenv("DB_PASS")
	cfg.Addr = getenv("DB_HOST", "127.0.0.1") + ":" + getenv("DB_PORT", "3306")
	cfg.DBName = getenv("DB_NAME", "innstay")
	return cfg.FormatDSN()
}

func dsnFromURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	cfg := baseMySQLConfig()
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}
	cfg.Addr = u.Host
	if u.Port() == "" {
		cfg.Addr = u.Host + ":3306"
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	return cfg.FormatDSN(), true
}

// normalizeDSN forces parseTime on a driver DSN so DATETIME columns scan
// into time.Time. An explicit loc is kept; otherwise local time is used.
func normalizeDSN(raw string) (string, bool) {
	cfg, err := mysql.ParseDSN(raw)
	if err != nil {
		return "", false
	}
	cfg.ParseTime = true
	if !strings.Contains(raw, "loc=") {
		cfg.Loc = time.Local
	}
	return cfg.FormatDSN(), true
}

func baseMySQLConfig() *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Timeout = 5 * time.Second
	cfg.ReadTimeout = 30 * time.Second
	cfg.WriteTimeout = 30 * time.Second
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg
}

// parseCORSOrigins keeps "*" and http(s) origins. Entries without a scheme
// get http://; anything else is dropped.
func parseCORSOrigins(raw string) []string {
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		if o = normalizeOrigin(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func normalizeOrigin(o string) string {
	o = strings.TrimRight(strings.TrimSpace(o), "/")
	if o == "" || o == "*" {
		return o
	}
	if !strings.Contains(o, "://") {
		o = "http://" + o
	}
	u, err := url.Parse(o)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
