package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultKey is the storage key the list is saved under.
	DefaultKey = "todos-v1"

	DriverDiskv  = "diskv"
	DriverSQLite = "sqlite"
)

// Config locates and shapes the durable storage.
type Config interface {
	BasePath() string
	Driver() string
	Key() string
	SeedPath() string
}

// LoadConfig reads .todo.yaml (from $TODO_CONFIG_PATH or the working
// directory) and TODO_* environment variables on top of the defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.todo.db")
	viper.SetDefault("driver", DriverDiskv)
	viper.SetDefault("key", DefaultKey)
	viper.SetDefault("seed", "")
	viper.SetConfigName(".todo") // .yaml is implicit
	viper.SetEnvPrefix("TODO")
	viper.AutomaticEnv()

	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	seed, err := homedir.Expand(viper.GetString("seed"))
	if err != nil {
		return nil, fmt.Errorf("store: expand seed path: %w", err)
	}

	return &fileConfig{
		Path:   path,
		Kind:   viper.GetString("driver"),
		Name:   viper.GetString("key"),
		Markup: seed,
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Kind   string `json:"driver"`
	Name   string `json:"key"`
	Markup string `json:"seed,omitempty"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) Driver() string   { return f.Kind }
func (f *fileConfig) Key() string      { return f.Name }
func (f *fileConfig) SeedPath() string { return f.Markup }
