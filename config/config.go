// filepath: git_shortcuts/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrParse marks configuration files that exist but do not parse,
// as opposed to files that could not be read at all.
var ErrParse = errors.New("failed to parse config file")

// DefaultRemote is used whenever the configuration file is absent or
// does not name a remote.
const DefaultRemote = "origin"

// DefaultFileName is looked up in the user's home directory when no
// explicit config path is given.
const DefaultFileName = ".gsh.yml"

// PullRequest holds pull-request related defaults.
type PullRequest struct {
	Base string `yaml:"base,omitempty"`
}

// Configuration represents the optional YAML configuration file structure.
// The tool only ever reads it; nothing is written back.
type Configuration struct {
	Remote      string              `yaml:"remote,omitempty"`
	Aliases     map[string][]string `yaml:"aliases,omitempty"`
	PullRequest PullRequest         `yaml:"pull_request,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Configuration {
	return &Configuration{Remote: DefaultRemote}
}

// DefaultPath returns the default config file path in the user's home
// directory, or an empty string when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}

// ReadConfig reads and parses the configuration file. A missing file is
// not an error: the defaults are returned instead.
func ReadConfig(configPath string) (*Configuration, error) {
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if config.Remote == "" {
		config.Remote = DefaultRemote
	}

	return &config, nil
}
