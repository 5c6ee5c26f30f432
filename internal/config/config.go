// Package config resolves the credentials and folder the inventory runs
// against from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Config holds the values needed to talk to the compute API.
type Config struct {
	IAMToken string `mapstructure:"iam_token"`
	FolderID string `mapstructure:"folder_id"`
	LogLevel string `mapstructure:"log_level"`
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// setting describes a config field sourced from environment variables. The
// first non-empty variable wins.
type setting struct {
	key  string
	vars []string
	hint string
}

const DefaultLogLevel = "WARN"

var settings = []setting{
	{
		key:  "iam_token",
		vars: []string{"TF_VAR_yc_iam_token", "YC_TOKEN"},
		hint: "Please set TF_VAR_yc_iam_token variable. `export TF_VAR_yc_iam_token=$(yc iam create-token)`",
	},
	{
		key:  "folder_id",
		vars: []string{"TF_VAR_yc_folder_id", "YC_FOLDER_ID"},
		hint: "Please set TF_VAR_yc_folder_id variable. `export TF_VAR_yc_folder_id=$(yc config get folder-id)`",
	},
	{
		key:  "log_level",
		vars: []string{"YC_INVENTORY_LOG"},
	},
}

// FromEnv loads and validates the configuration from the process environment.
func FromEnv() (*Config, error) {
	return Load(os.LookupEnv)
}

// Load resolves every setting through lookup and validates the result.
func Load(lookup LookupFunc) (*Config, error) {
	raw := make(map[string]interface{}, len(settings))
	for _, s := range settings {
		if v := firstNonEmpty(lookup, s.vars); v != "" {
			raw[s.key] = v
		}
	}

	var cfg Config
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate returns an AuthError naming the first missing credential.
func (c *Config) Validate() error {
	if c.IAMToken == "" {
		return newAuthError("iam_token")
	}
	if c.FolderID == "" {
		return newAuthError("folder_id")
	}
	return nil
}

// AuthError reports a missing credential along with how to obtain it.
type AuthError struct {
	Variables []string
	Hint      string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("none of %v is set. %s", e.Variables, e.Hint)
}

func newAuthError(key string) *AuthError {
	for _, s := range settings {
		if s.key == key {
			return &AuthError{Variables: s.vars, Hint: s.hint}
		}
	}
	return &AuthError{Variables: []string{key}}
}

func firstNonEmpty(lookup LookupFunc, vars []string) string {
	for _, name := range vars {
		if v, ok := lookup(name); ok && v != "" {
			return v
		}
	}
	return ""
}
