// Package config parses the YAML config file and applies env overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AvatarSize is the pixel size requested from the avatar service.
const AvatarSize = 256

// Store backends.
const (
	BackendMemory = "memory"
	BackendDir    = "dir"
	BackendMySQL  = "mysql"
)

// StoreSection selects the blob-store backend.
type StoreSection struct {
	// Backend is one of "memory", "dir" or "mysql". Defaults to "dir".
	Backend string `yaml:"backend"`

	// Dir is the data directory for the "dir" backend.
	Dir string `yaml:"dir"`

	// DSN is the MySQL connection string for the "mysql" backend.
	DSN string `yaml:"dsn"`
}

type ServerSection struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// FileConfig represents a feedbook config file.
type FileConfig struct {
	// Version is the config file format version (optional, currently always 1)
	Version int `yaml:"version,omitempty"`

	Store  StoreSection  `yaml:"store"`
	Server ServerSection `yaml:"server"`
}

// Load reads the config at path, fills defaults and applies env overrides.
// A missing file is not an error; defaults plus env apply.
func Load(path string) (*FileConfig, error) {
	cfg := &FileConfig{}
	blob, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config %v: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(blob, cfg); err != nil {
			return nil, fmt.Errorf("parse config %v: %w", path, err)
		}
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (cfg *FileConfig) applyEnv() {
	if backend := os.Getenv("STORE_BACKEND"); backend != "" {
		cfg.Store.Backend = backend
	}
	if dir := os.Getenv("STORE_DIR"); dir != "" {
		cfg.Store.Dir = dir
	}
	if dsn := os.Getenv("STORE_DSN"); dsn != "" {
		cfg.Store.DSN = dsn
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
	if origins := os.Getenv("FE_ORIGINS"); origins != "" {
		cfg.Server.CORSOrigins = strings.Split(origins, ";")
	}
}

func (cfg *FileConfig) applyDefaults() {
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendDir
	}
	if cfg.Store.Dir == "" {
		cfg.Store.Dir = "./data"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
}

// Validate rejects combinations the binary can't start with.
func (cfg *FileConfig) Validate() error {
	switch cfg.Store.Backend {
	case BackendMemory, BackendDir:
		return nil
	case BackendMySQL:
		if cfg.Store.DSN == "" {
			return errors.New("store.dsn must be set for the mysql backend")
		}
		return nil
	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
