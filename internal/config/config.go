/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package config loads the operator's configuration from a layered set of
// sources: an explicit file path, a handful of OS-standard default
// locations, and environment variables prefixed CLEVER_OPERATOR_.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/CleverCloud/clever-operator/internal/credentials"
)

const envPrefix = "CLEVER_OPERATOR"

// Configuration is the operator's resolved, layered configuration.
type Configuration struct {
	API      credentials.Credentials `mapstructure:"api"`
	Operator OperatorConfiguration   `mapstructure:"operator"`
}

// OperatorConfiguration holds settings outside the PaaS credentials.
type OperatorConfiguration struct {
	// Listen is the socket address the HTTP health/metrics server binds to.
	Listen string `mapstructure:"listen"`
}

// defaultListen is used when operator.listen is unset.
const defaultListen = "0.0.0.0:8080"

// Load resolves the configuration. path, if non-empty, is an explicit file
// (the -c flag) and the only file read; it is an error for path to not exist.
// Absent path, the default locations are searched in order and the first one
// holding a "config" file is read; later locations are not read or merged, and
// finding none is not an error. CLEVER_OPERATOR_ environment variables
// override file values in both cases.
func Load(path string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("operator.listen", defaultListen)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read configuration file %s", path)
		}
	} else {
		for _, dir := range defaultSearchPaths() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, errors.Wrap(err, "failed to read configuration file")
			}
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}
	if cfg.Operator.Listen == "" {
		cfg.Operator.Listen = defaultListen
	}
	return &cfg, nil
}

// defaultSearchPaths returns, in priority order, every directory Load
// searches for a "config" file absent an explicit -c path.
func defaultSearchPaths() []string {
	paths := []string{
		filepath.Join("/usr/share", packageName, "config"),
		filepath.Join("/etc", packageName, "config"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", packageName, "config"),
			filepath.Join(home, ".local", "share", packageName, "config"),
		)
	}
	paths = append(paths, "./config")
	return paths
}

const packageName = "clever-operator"

// Healthy reports whether cfg carries the minimum needed to sign requests:
// a non-empty API endpoint and, for OAuth1, a consumer key. It backs the
// CLI's -t/--check smoke test.
func (cfg *Configuration) Healthy() error {
	if cfg.API.Endpoint == "" {
		return fmt.Errorf("api.endpoint is not configured")
	}
	if cfg.API.EffectiveKind() == credentials.KindOAuth1 && cfg.API.ConsumerKey == "" {
		return fmt.Errorf("api.consumer-key is not configured")
	}
	return nil
}
