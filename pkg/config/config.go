package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del portal (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	API       APIConfig
	Session   SessionConfig
	Redis     RedisConfig
	HTTP      HTTPConfig
	Analytics AnalyticsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// APIConfig configuración del backend REST del marketplace.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
	RateLimit      float64 // peticiones por segundo; 0 = sin límite
}

// Timeout devuelve el timeout de red como time.Duration.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Backends de sesión soportados.
const (
	SessionBackendFile   = "file"
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// SessionConfig configuración del almacén de sesión (token + usuario cacheado).
type SessionConfig struct {
	Backend string // file, memory, redis
	Path    string // ruta del archivo de sesión (backend file)
	Secret  string // si no está vacío, el archivo se guarda sellado
}

// RedisConfig configuración de Redis para SESSION_BACKEND=redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// HTTPConfig configuración del servidor BFF local.
type HTTPConfig struct {
	Host        string
	Port        int
	GuardWaitMS int    // tiempo máximo que el guard espera a que la sesión se resuelva
	SwaggerFile string // swagger.json servido en /docs; vacío = sin documentación
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GuardWait devuelve la espera del guard como time.Duration.
func (c HTTPConfig) GuardWait() time.Duration {
	return time.Duration(c.GuardWaitMS) * time.Millisecond
}

// Modos del servicio de analítica.
const (
	AnalyticsModeMock   = "mock"
	AnalyticsModeRemote = "remote"
)

// AnalyticsConfig selecciona entre el payload de ejemplo y el endpoint remoto.
type AnalyticsConfig struct {
	Mode string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_URL, SESSION_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "vendor-portal"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:        strings.TrimSuffix(getString(v, "API_URL", "http://localhost:5000/api"), "/"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 30),
			RateLimit:      getFloat(v, "API_RATE_LIMIT", 0),
		},
		Session: SessionConfig{
			Backend: strings.ToLower(getString(v, "SESSION_BACKEND", SessionBackendFile)),
			Path:    getString(v, "SESSION_PATH", defaultSessionPath()),
			Secret:  getString(v, "SESSION_SECRET", ""),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			Prefix:   getString(v, "REDIS_PREFIX", "vendor-portal"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "127.0.0.1"),
			Port:        getInt(v, "HTTP_PORT", 8090),
			GuardWaitMS: getInt(v, "GUARD_WAIT_MS", 3000),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		Analytics: AnalyticsConfig{
			Mode: strings.ToLower(getString(v, "ANALYTICS_MODE", AnalyticsModeMock)),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Backend {
	case SessionBackendFile, SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("config: SESSION_BACKEND inválido %q (usar file, memory o redis)", c.Session.Backend)
	}
	switch c.Analytics.Mode {
	case AnalyticsModeMock, AnalyticsModeRemote:
	default:
		return fmt.Errorf("config: ANALYTICS_MODE inválido %q (usar mock o remote)", c.Analytics.Mode)
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("config: API_URL vacío")
	}
	return nil
}

// defaultSessionPath ubica la sesión en el directorio de configuración del usuario,
// el equivalente al localStorage del navegador.
func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".vendor-portal", "session.json")
	}
	return filepath.Join(dir, "vendor-portal", "session.json")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(v.GetString(key), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}
