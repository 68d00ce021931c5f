package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AuthMode
// - dev: sin verifier, el usuario llega por X-Debug-User-ID.
// - jwt: Authorization: Bearer <token> firmado con JWT_SECRET.
// - remote: el token se valida contra el proveedor de identidad (AUTH_REMOTE_URL).
type AuthMode string

const (
	AuthModeDev    AuthMode = "dev"
	AuthModeJWT    AuthMode = "jwt"
	AuthModeRemote AuthMode = "remote"
)

type RemoteAuthConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

type Config struct {
	Env  string
	Port string

	// DBDSN vacío = storage in-memory.
	DBDSN string

	AuthMode  AuthMode
	JWTSecret string
	JWTIssuer string
	Remote    RemoteAuthConfig

	Redis     RedisConfig
	RateLimit RateLimitConfig

	// RabbitMQURL vacío = notificaciones deshabilitadas (notify.Noop).
	RabbitMQURL string
	NotifyQueue string

	Log LogConfig
}

// Load lee .env (si existe) y luego el entorno. Las variables de entorno ganan sobre .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("AUTH_MODE", string(AuthModeDev))
	v.SetDefault("AUTH_REMOTE_TIMEOUT", "5s")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_REQUESTS", 10)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")
	v.SetDefault("NOTIFY_QUEUE", "access_requests.events")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "venture-hub")
	return v
}

// FromViper arma y valida la Config desde una instancia de viper (tests usan v.Set).
func FromViper(v *viper.Viper) (Config, error) {
	c := Config{
		Env:       strings.TrimSpace(v.GetString("APP_ENV")),
		Port:      strings.TrimSpace(v.GetString("PORT")),
		DBDSN:     strings.TrimSpace(v.GetString("DB_DSN")),
		AuthMode:  AuthMode(strings.ToLower(strings.TrimSpace(v.GetString("AUTH_MODE")))),
		JWTSecret: v.GetString("JWT_SECRET"),
		JWTIssuer: strings.TrimSpace(v.GetString("JWT_ISSUER")),
		Remote: RemoteAuthConfig{
			URL:     strings.TrimSpace(v.GetString("AUTH_REMOTE_URL")),
			APIKey:  strings.TrimSpace(v.GetString("AUTH_REMOTE_API_KEY")),
			Timeout: v.GetDuration("AUTH_REMOTE_TIMEOUT"),
		},
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(v.GetString("REDIS_ADDR")),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:  v.GetBool("RATE_LIMIT_ENABLED"),
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		RabbitMQURL: strings.TrimSpace(v.GetString("RABBITMQ_URL")),
		NotifyQueue: strings.TrimSpace(v.GetString("NOTIFY_QUEUE")),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			App:    v.GetString("APP_NAME"),
		},
	}

	switch c.AuthMode {
	case AuthModeDev:
		if c.Env == "prod" {
			return Config{}, errors.New("AUTH_MODE=dev is not allowed when APP_ENV=prod")
		}
	case AuthModeJWT:
		if strings.TrimSpace(c.JWTSecret) == "" {
			return Config{}, errors.New("JWT_SECRET is required when AUTH_MODE=jwt")
		}
	case AuthModeRemote:
		if c.Remote.URL == "" || c.Remote.APIKey == "" {
			return Config{}, errors.New("AUTH_REMOTE_URL and AUTH_REMOTE_API_KEY are required when AUTH_MODE=remote")
		}
	default:
		return Config{}, fmt.Errorf("invalid AUTH_MODE %q: must be dev, jwt or remote", c.AuthMode)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Requests <= 0 {
			return Config{}, errors.New("RATE_LIMIT_REQUESTS must be > 0")
		}
		if c.RateLimit.Window <= 0 {
			return Config{}, errors.New("RATE_LIMIT_WINDOW must be a positive duration")
		}
	}
	return c, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
