// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config: корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv), опционально из .env.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	Auth      AuthConfig      `yaml:"auth"`
	DB        DBConfig        `yaml:"db"`
	Redis     RedisConfig     `yaml:"redis"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Assistant AssistantConfig `yaml:"assistant"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
}

// TimeoutConfig: таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// HTTPConfig: сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host           string   `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port           string   `yaml:"port" env:"HTTP_PORT" env-default:"5000"`
	BasePath       string   `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:"/api"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// AuthConfig содержит параметры выпуска и валидации токенов
// и параметры сессий в Redis.
type AuthConfig struct {
	AccessSecret    string        `yaml:"access_secret" env:"JWT_ACCESS_SECRET" env-required:"true"`
	RefreshSecret   string        `yaml:"refresh_secret" env:"JWT_REFRESH_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"2m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"168h"`
	Issuer          string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"bank-api"`

	// Скользящая сессия: каждое успешное обращение продлевает sliding:{jti}.
	// Флаг инвертирован: cleanenv подставляет env-default поверх нулевого
	// значения из YAML, и "false" отключить бы её не смог.
	DisableSliding bool          `yaml:"disable_sliding" env:"DISABLE_SLIDING_SESSION"`
	SlidingTTL     time.Duration `yaml:"sliding_ttl" env:"SLIDING_TTL" env-default:"20s"`

	RefreshCookie  string `yaml:"refresh_cookie" env:"REFRESH_COOKIE_NAME" env-default:"refresh_token"`
	CookieSecure   bool   `yaml:"cookie_secure" env:"COOKIE_SECURE" env-default:"false"`
	LoginRateLimit int    `yaml:"login_rate_limit" env:"LOGIN_RATE_LIMIT" env-default:"10"`
}

// SlidingEnabled сообщает, нужно ли вести sliding-записи.
func (a AuthConfig) SlidingEnabled() bool {
	return !a.DisableSliding && a.SlidingTTL > 0
}

// ErrSameSecrets: access и refresh подписываются одним ключом.
var ErrSameSecrets = errors.New("access and refresh secrets must differ")

// Validate проверяет инварианты, которые cleanenv выразить не может.
func (a AuthConfig) Validate() error {
	if a.AccessSecret == a.RefreshSecret {
		return ErrSameSecrets
	}

	if a.AccessTokenTTL <= 0 || a.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}

	return nil
}

// DBConfig: настройки подключения к базе данных.
type DBConfig struct {
	DatabaseURL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
}

// RedisConfig: хранилище сессий и чёрного списка токенов.
type RedisConfig struct {
	RedisURL  string `yaml:"redis_url" env:"REDIS_URL" env-required:"true"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:""`
}

// RabbitMQConfig: публикация событий жизненного цикла счетов.
// Пустой URL отключает публикацию.
type RabbitMQConfig struct {
	URL      string `yaml:"url" env:"RABBITMQ_URL"`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"account_events"`
}

// AssistantConfig: прокси к LLM (Ollama-совместимый /api/chat).
type AssistantConfig struct {
	Enabled        bool          `yaml:"enabled" env:"ASSISTANT_ENABLED" env-default:"false"`
	BaseURL        string        `yaml:"base_url" env:"OLLAMA_URL" env-default:"http://localhost:11434"`
	Model          string        `yaml:"model" env:"OLLAMA_MODEL" env-default:"llama3.1"`
	MaxToolRounds  int           `yaml:"max_tool_rounds" env:"ASSISTANT_MAX_TOOL_ROUNDS" env-default:"4"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"ASSISTANT_TIMEOUT" env-default:"60s"`
}

// MustLoad: обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV (+ .env).
// После чтения файла ENV-переменные накладываются поверх значений из YAML.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Auth.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return cfg, nil
}

func load(path string) (*Config, error) {
	var cfg Config

	readFile := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	if path != "" {
		return readFile(path)
	}

	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return readFile(envPath)
	}

	if _, err := os.Stat("local.yaml"); err == nil {
		return readFile("local.yaml")
	}

	// .env необязателен; уже выставленные переменные он не перетирает.
	_ = godotenv.Load()

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
