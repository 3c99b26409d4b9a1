package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Store      StoreConfig      `yaml:"store"`
	Database   DatabaseConfig   `yaml:"database"`
	Navigation NavigationConfig `yaml:"navigation"`
	Dashboard  DashboardConfig  `yaml:"dashboard"`
	DemoSeed   bool             `yaml:"demo_seed"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ServerConfig struct {
	Port      int    `yaml:"port"`
	PublicURL string `yaml:"public_url"` // external base URL for locally served uploads
}

// StoreConfig selects the document-store backend. "rest" targets a hosted
// data API with Backendless-style URLs and RFC 3339 timestamps, "gorm" a
// self-hosted MySQL, "memory" keeps everything in process (demos, tests).
type StoreConfig struct {
	Driver    string `yaml:"driver"`
	BaseURL   string `yaml:"base_url"`
	AppID     string `yaml:"app_id"`
	APIKey    string `yaml:"api_key"`
	UploadDir string `yaml:"upload_dir"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type NavigationConfig struct {
	File      string `yaml:"file"`       // visited-pages JSON file, used when redis_addr is empty
	RedisAddr string `yaml:"redis_addr"` // optional redis backend
	RedisDB   int    `yaml:"redis_db"`
}

type DashboardConfig struct {
	RefreshEnabled  bool   `yaml:"refresh_enabled"`
	RefreshSchedule string `yaml:"refresh_schedule"` // cron spec, e.g. "@every 30s"
}

func Load(configFile string) *Config {
	c := &Config{
		Server:     ServerConfig{Port: 9820, PublicURL: "http://localhost:9820"},
		Log:        LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Store:      StoreConfig{Driver: "rest", BaseURL: "https://api.backendless.com", UploadDir: "uploads"},
		Database:   DatabaseConfig{Host: "localhost", Port: 3306, Name: "ltg_admin"},
		Navigation: NavigationConfig{File: "data/visited_pages.json"},
		Dashboard:  DashboardConfig{RefreshEnabled: true, RefreshSchedule: "@every 30s"},
	}

	paths := []string{"etc/config-dev.yaml", "/etc/ltg-admin/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Store.Driver, "STORE_DRIVER")
	envOverride(&c.Store.BaseURL, "BACKENDLESS_BASE_URL")
	envOverride(&c.Store.AppID, "BACKENDLESS_APP_ID")
	envOverride(&c.Store.APIKey, "BACKENDLESS_API_KEY")
	envOverride(&c.Database.Host, "DB_HOST")
	envOverride(&c.Database.User, "DB_USER")
	envOverride(&c.Database.Password, "DB_PASS")
	envOverride(&c.Database.Name, "DB_NAME")
	envOverride(&c.Navigation.RedisAddr, "REDIS_ADDR")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Database.Port, "DB_PORT")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) OpenGormDB() (*gorm.DB, error) {
	cfg := gomysql.NewConfig()
	cfg.User = c.Database.User
	cfg.Passwd = c.Database.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	cfg.DBName = c.Database.Name
	cfg.ParseTime = true

	connector, err := gomysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	sqlDB := sql.OpenDB(connector)
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return gorm.Open(mysql.New(mysql.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func (c *Config) NewRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: c.Navigation.RedisAddr,
		DB:   c.Navigation.RedisDB,
	})
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
