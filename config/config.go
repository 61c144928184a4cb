// Package config resolves where oboegaki keeps its files and reads the
// optional config.yaml next to them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	AppName     = "oboegaki"
	StoreFile   = "commands.json"
	HistoryFile = "history.db"
	ConfigFile  = "config.yaml"
	dirPerm     = 0750
)

type Config struct {
	// Store overrides the location of commands.json. "~/" is expanded.
	Store string `yaml:"store,omitempty"`

	// History controls run/copy recording. Nil means enabled.
	History *bool `yaml:"history,omitempty"`

	// Shell runs commands through "sh -c" instead of splitting on whitespace.
	Shell bool `yaml:"shell,omitempty"`
}

func (c Config) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// Dir returns $XDG_CONFIG_HOME/oboegaki, falling back to $HOME/.config/oboegaki.
func Dir() (string, error) {
	root := os.Getenv("XDG_CONFIG_HOME")
	if root == "" {
		home := os.Getenv("HOME")
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("could not get user home directory: %w", err)
			}
		}
		root = filepath.Join(home, ".config")
	}
	return filepath.Join(root, AppName), nil
}

func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	return dir, nil
}

// Load reads config.yaml. A missing file yields the zero Config.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	path := filepath.Join(dir, ConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) StorePath() (string, error) {
	if c.Store != "" {
		return ResolvePath(c.Store)
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StoreFile), nil
}

func (c Config) HistoryPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HistoryFile), nil
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}
	return filepath.Join(homeDir, path[2:]), nil
}
