package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Mail       Mail       `yaml:"mail"`
	Notifier   Notifier   `yaml:"notifier"`
	Rabbit     Rabbit     `yaml:"rabbit"`
	RateLimit  RateLimit  `yaml:"rate_limit"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:5000"`
	Timeout         time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173,http://localhost:3000"`
}

type Storage struct {
	Driver   string   `yaml:"driver" env:"STORAGE_DRIVER" env-default:"mongo"`
	Mongo    Mongo    `yaml:"mongo"`
	Database Database `yaml:"postgres"`
}

type Mongo struct {
	URI            string        `yaml:"uri" env:"MONGODB_URI" env-default:"mongodb://localhost:27017"`
	Database       string        `yaml:"database" env:"MONGODB_DATABASE" env-default:"elevate-dev-club"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env-default:"10s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"elevate"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

// Mail holds SMTP credentials. With an empty User or Password mails are only logged.
type Mail struct {
	Host     string `yaml:"host" env:"EMAIL_HOST" env-default:"smtp.gmail.com"`
	Port     int    `yaml:"port" env:"EMAIL_PORT" env-default:"587"`
	User     string `yaml:"user" env:"EMAIL_USER"`
	Password string `yaml:"password" env:"EMAIL_PASS"`
	From     string `yaml:"from" env:"EMAIL_FROM" env-default:"Elevate Dev Club <noreply@elevatedevclub.com>"`
	Admin    string `yaml:"admin" env:"ADMIN_EMAIL" env-default:"admin@elevatedevclub.com"`
}

type Notifier struct {
	Workers     int           `yaml:"workers" env:"NOTIFIER_WORKERS" env-default:"2"`
	Buffer      int           `yaml:"buffer" env:"NOTIFIER_BUFFER" env-default:"64"`
	SendTimeout time.Duration `yaml:"send_timeout" env-default:"30s"`
}

// Rabbit switches notifications to a RabbitMQ queue when URL is set.
type Rabbit struct {
	URL   string `yaml:"url" env:"RABBIT_URL"`
	Queue string `yaml:"queue" env:"RABBIT_QUEUE" env-default:"elevate.notifications"`
}

type RateLimit struct {
	General Limit `yaml:"general"`
	Form    Limit `yaml:"form"`
	// TrustProxy keys limits on X-Forwarded-For and friends. Enable only behind a reverse proxy.
	TrustProxy bool `yaml:"trust_proxy" env:"RATE_LIMIT_TRUST_PROXY" env-default:"false"`
}

// Limit allows Requests per Window for a single client IP. Zero values fall back to env defaults.
type Limit struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

// MustLoad reads the config file named by CONFIG_PATH.
func MustLoad() *Config {
	return MustLoadPath(ResolvePath(""))
}

// ResolvePath picks the config file: an explicit flag value wins over CONFIG_PATH.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	return os.Getenv("CONFIG_PATH")
}

func MustLoadPath(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	// .env is optional, the process environment wins over it
	_ = godotenv.Load()

	if configPath == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}

	switch c.Storage.Driver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return nil
}

// Limits returns the general and form rate limits, filling unset values with the
// defaults for the current environment.
func (c *Config) Limits() (general, form Limit) {
	general, form = Limit{Requests: 1000, Window: 5 * time.Minute}, Limit{Requests: 50, Window: 10 * time.Minute}
	if c.Env == EnvProd {
		general, form = Limit{Requests: 100, Window: 15 * time.Minute}, Limit{Requests: 5, Window: time.Hour}
	}

	return c.RateLimit.General.or(general), c.RateLimit.Form.or(form)
}

func (l Limit) or(def Limit) Limit {
	if l.Requests <= 0 {
		l.Requests = def.Requests
	}
	if l.Window <= 0 {
		l.Window = def.Window
	}

	return l
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProd
}
