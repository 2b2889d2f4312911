package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type Config struct {
	Env      string         `yaml:"env"`
	Server   ServerConfig   `yaml:"http_server"`
	Storage  StorageConfig  `yaml:"storage"`
	Pg       PgConfig       `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Reminder ReminderConfig `yaml:"reminder"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Calendar CalendarConfig `yaml:"calendar"`
}

type ServerConfig struct {
	Host        string          `yaml:"host"`
	Port        int             `yaml:"port"`
	Timeout     time.Duration   `yaml:"timeout"`
	CORSOrigins []string        `yaml:"cors_origins"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig - per client IP token bucket, RPS 0 disables limiting
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type StorageConfig struct {
	Driver     string `yaml:"driver"`
	SQLitePath string `yaml:"sqlite_path"`
}

type PgConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	Db             string `yaml:"db"`
	SSLMode        string `yaml:"sslmode"`
	MigrationsPath string `yaml:"migrations_path"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ReminderConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Lead        time.Duration `yaml:"lead"`
	Queue       string        `yaml:"queue"`
	Concurrency int           `yaml:"concurrency"`
}

type CatalogConfig struct {
	// Path of a companies JSON file, empty means the embedded dataset
	Path string `yaml:"path"`
}

type CalendarConfig struct {
	Dir         string        `yaml:"dir"`
	Duration    time.Duration `yaml:"duration"`
	AlarmOffset time.Duration `yaml:"alarm_offset"`
}

// DSN builds the postgres connection string
func (p PgConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:   p.Db,
	}
	if p.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {p.SSLMode}}.Encode()
	}
	return u.String()
}

func resolvePath(cwd, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return p
	}
	if up, ok := findUp(cwd, p, 8); ok { // поиск вверх от cwd, не глубже 8 уровней
		return up
	}
	return filepath.Join(cwd, p) // относительно cwd
}

func findUp(start, rel string, max int) (string, bool) {
	dir := start
	for i := 0; i <= max; i++ {
		p := filepath.Join(dir, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// LoadConfig reads the env file named by ENV_FILE and the YAML file named by CONFIG_PATH,
// falling back to .env/local_pg.env and configs/local.yaml found upwards from the working directory.
func LoadConfig() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working dir: %w", err)
	}

	envPath := os.Getenv("ENV_FILE")
	if envPath == "" {
		if up, ok := findUp(cwd, ".env/local_pg.env", 8); ok {
			envPath = up
		}
	} else {
		envPath = resolvePath(cwd, envPath)
	}
	if envPath != "" {
		if err := godotenv.Overload(envPath); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		up, ok := findUp(cwd, "configs/local.yaml", 8)
		if !ok {
			return nil, errors.New("CONFIG_PATH not set and configs/local.yaml not found")
		}
		path = up
	} else {
		path = resolvePath(cwd, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(raw)
}

// Parse expands ${VAR} references, decodes the YAML document and fills unset fields with defaults
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	expanded := os.ExpandEnv(string(raw))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Env == "" {
		c.Env = "local"
	}
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Timeout <= 0 {
		c.Server.Timeout = 5 * time.Second
	}
	if c.Server.RateLimit.RPS > 0 && c.Server.RateLimit.Burst <= 0 {
		c.Server.RateLimit.Burst = int(c.Server.RateLimit.RPS) + 1
	}

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageSQLite
	}
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = "data/subscriptions.db"
	}

	if c.Pg.Host == "" {
		c.Pg.Host = "localhost"
	}
	if c.Pg.Port == 0 {
		c.Pg.Port = 5432
	}
	if c.Pg.SSLMode == "" {
		c.Pg.SSLMode = "disable"
	}
	if c.Pg.MigrationsPath == "" {
		c.Pg.MigrationsPath = "migrations"
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}

	if c.Reminder.Lead <= 0 {
		c.Reminder.Lead = 24 * time.Hour
	}
	if c.Reminder.Queue == "" {
		c.Reminder.Queue = "reminders"
	}
	if c.Reminder.Concurrency <= 0 {
		c.Reminder.Concurrency = 5
	}

	if c.Calendar.Dir == "" {
		c.Calendar.Dir = "data/calendar"
	}
	if c.Calendar.Duration <= 0 {
		c.Calendar.Duration = time.Hour
	}
	if c.Calendar.AlarmOffset == 0 {
		c.Calendar.AlarmOffset = -24 * time.Hour
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageSQLite, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid http port %d", c.Server.Port)
	}
	if c.Server.RateLimit.RPS < 0 {
		return fmt.Errorf("invalid rate limit %v", c.Server.RateLimit.RPS)
	}
	return nil
}
