package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

type Config struct {
	Env             string         `mapstructure:"env"`
	Port            string         `mapstructure:"port"`
	Storage         string         `mapstructure:"storage"`
	ShutdownTimeout time.Duration  `mapstructure:"shutdown_timeout"`
	Database        DatabaseConfig `mapstructure:"database"`
	Kafka           KafkaConfig    `mapstructure:"kafka"`
	CORS            CORSConfig     `mapstructure:"cors"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string
	DBname   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN renders the libpq keyword/value connection string understood by
// both lib/pq and pgx.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBname, c.SSLMode)
}

type KafkaConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Brokers []string
	Topic   string `mapstructure:"topic"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Init reads the YAML file at path. Values from a .env file in the working
// directory are exported first so that secrets can live outside the config.
func Init(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file, err = %s", err.Error())
	}

	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file, path = %s, err = %s", path, err.Error())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cfg: %w", err)
	}

	switch cfg.Storage {
	case StorageMemory:
	case StoragePostgres:
		if err := readDatabaseSecrets(&cfg.Database); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	if cfg.Kafka.Enabled {
		if err := readKafkaBrokers(&cfg.Kafka); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "prod")
	v.SetDefault("port", ":8080")
	v.SetDefault("storage", StoragePostgres)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("kafka.topic", "notifications")
	v.SetDefault("cors.allow_origins", []string{"*"})
}

func readDatabaseSecrets(dbCfg *DatabaseConfig) error {
	if dbCfg.Driver != DriverPostgres && dbCfg.Driver != DriverPgx {
		return fmt.Errorf("unknown database driver %q", dbCfg.Driver)
	}

	dbPassword := os.Getenv("POSTGRES_PASSWORD")
	if dbPassword == "" {
		return fmt.Errorf("failed to read POSTGRES_PASSWORD env variable")
	}

	dbCfg.Password = dbPassword
	return nil
}

func readKafkaBrokers(kCfg *KafkaConfig) error {
	kafkaHost := os.Getenv("KAFKA_HOST")
	if kafkaHost == "" {
		return fmt.Errorf("failed to read KAFKA_HOST env variable")
	}

	kCfg.Brokers = strings.Split(kafkaHost, ",")
	return nil
}
