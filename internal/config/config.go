package config

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Загрузка конфигурации из config.yaml через cleanenv

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko"`
	Loader    LoaderConfig    `yaml:"loader"`
	Proxy     ProxyConfig     `yaml:"proxy"`
	Exchange  ExchangeConfig  `yaml:"exchange"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	SQLite    SQLiteConfig    `yaml:"sqlite"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Logger    LoggerConfig    `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	// HandlerTimeout - таймаут обработки одного запроса к прокси
	HandlerTimeout time.Duration `yaml:"handler_timeout" env-default:"15s"`
}

type CoinGeckoConfig struct {
	BaseURL   string        `yaml:"base_url" env:"COINGECKO_BASE_URL" env-default:"https://api.coingecko.com/api/v3"`
	APIKey    string        `yaml:"api_key" env:"COINGECKO_API_KEY"`
	Timeout   time.Duration `yaml:"timeout" env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env-default:"coin-tracker/1.0"`
}

// LoaderConfig - параметры загрузчика полного списка монет.
type LoaderConfig struct {
	TargetTotal int           `yaml:"target_total" env-default:"500"`
	PerPage     int           `yaml:"per_page" env-default:"25"`
	TTL         time.Duration `yaml:"ttl" env-default:"60s"`
	PageDelay   time.Duration `yaml:"page_delay" env-default:"1s"`
	BackoffBase time.Duration `yaml:"backoff_base" env-default:"3s"`
	MaxAttempts int           `yaml:"max_attempts" env-default:"3"`
}

type ProxyConfig struct {
	ChartTTL           time.Duration `yaml:"chart_ttl" env-default:"2m"`
	ChartCacheCapacity int           `yaml:"chart_cache_capacity" env-default:"512"`
}

type ExchangeConfig struct {
	BaseURL  string        `yaml:"base_url" env:"EXCHANGE_BASE_URL" env-default:"https://open.er-api.com/v6/latest"`
	Timeout  time.Duration `yaml:"timeout" env-default:"10s"`
	CacheTTL time.Duration `yaml:"cache_ttl" env-default:"10m"`
}

type StorageConfig struct {
	Driver      string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"` // memory|sqlite|postgres
	AutoMigrate bool   `yaml:"auto_migrate" env-default:"true"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host" env-default:"localhost"`
	Port            int           `yaml:"port" env-default:"5432"`
	User            string        `yaml:"user" env-default:"postgres"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName          string        `yaml:"dbname" env-default:"coins"`
	SSLMode         string        `yaml:"sslmode" env-default:"disable"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	MaxConns        int32         `yaml:"max_conns" env-default:"10"`
	MinConns        int32         `yaml:"min_conns" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"30m"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"coin-tracker.db"`
}

// SchedulerConfig - прогрев кэша списка монет. Schedule: длительность ("5m") или cron-выражение.
type SchedulerConfig struct {
	Enabled    bool     `yaml:"enabled" env-default:"false"`
	Schedule   string   `yaml:"schedule" env-default:"5m"`
	Currencies []string `yaml:"currencies" env-default:"usd"`
}

type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled" env-default:"false"`
	Token    string `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
	Currency string `yaml:"currency" env-default:"usd"`
	PageSize int    `yaml:"page_size" env-default:"10"`
}

type LoggerConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL" env-default:"info"` // debug|info|warn|error
	Format string `yaml:"format" env-default:"text"`                 // text|json
}

func LoadConfig() (*Config, error) {
	return LoadFromPath(fetchConfigPath())
}

// LoadFromPath - читает yaml (если путь задан), затем переменные окружения.
func LoadFromPath(configPath string) (*Config, error) {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{}
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// Read from environment variables
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
