package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all sparktriage configuration.
type Config struct {
	Databricks DatabricksConfig
	Storage    StorageConfig
	Engine     EngineConfig
	Output     OutputConfig
	LogLevel   string
}

// DatabricksConfig holds workspace API settings.
type DatabricksConfig struct {
	Host  string
	Token string
}

// StorageConfig holds cluster log delivery settings.
type StorageConfig struct {
	Region    string
	Bucket    string
	Prefix    string
	MaxFileMB int
	MaxFiles  int
}

// EngineConfig holds analysis engine settings.
type EngineConfig struct {
	MaxTokenLimit int
	ChunkSize     int
	CatalogPath   string // optional YAML pattern catalog overlay
}

// OutputConfig holds report destination settings.
type OutputConfig struct {
	Destination string // "stdout" or "file"
	Path        string // file destination only
	Format      string // "json" or "text"
	Pretty      bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Databricks: DatabricksConfig{
			Host:  os.Getenv("SPARKTRIAGE_DATABRICKS_HOST"),
			Token: os.Getenv("SPARKTRIAGE_DATABRICKS_TOKEN"),
		},
		Storage: StorageConfig{
			Region:    getenv("SPARKTRIAGE_AWS_REGION", "us-west-2"),
			Bucket:    os.Getenv("SPARKTRIAGE_LOGS_BUCKET"),
			Prefix:    getenv("SPARKTRIAGE_LOGS_PREFIX", "databrickslogs"),
			MaxFileMB: getenvInt("SPARKTRIAGE_MAX_FILE_MB", 20),
			MaxFiles:  getenvInt("SPARKTRIAGE_MAX_FILES", 10),
		},
		Engine: EngineConfig{
			MaxTokenLimit: getenvInt("SPARKTRIAGE_MAX_TOKEN_LIMIT", 100000),
			ChunkSize:     getenvInt("SPARKTRIAGE_CHUNK_SIZE", 10000),
			CatalogPath:   os.Getenv("SPARKTRIAGE_CATALOG_PATH"),
		},
		Output: OutputConfig{
			Destination: getenv("SPARKTRIAGE_OUTPUT", "stdout"),
			Path:        os.Getenv("SPARKTRIAGE_OUTPUT_PATH"),
			Format:      getenv("SPARKTRIAGE_OUTPUT_FORMAT", "json"),
			Pretty:      getenvBool("SPARKTRIAGE_OUTPUT_PRETTY", false),
		},
		LogLevel: getenv("SPARKTRIAGE_LOG_LEVEL", "info"),
	}
}

// Validate reports the settings required for workspace and storage access.
func (c Config) Validate() error {
	if c.Databricks.Host == "" {
		return fmt.Errorf("config: SPARKTRIAGE_DATABRICKS_HOST is required")
	}
	if c.Databricks.Token == "" {
		return fmt.Errorf("config: SPARKTRIAGE_DATABRICKS_TOKEN is required")
	}
	if c.Storage.Bucket == "" {
		return fmt.Errorf("config: SPARKTRIAGE_LOGS_BUCKET is required")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
