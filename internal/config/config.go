/*
 * config.go, part of chemdex.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package config reads the chemdex settings from a YAML file and
//CHEMDEX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rmera/chemdex/internal/logging"
	"github.com/spf13/viper"
)

//EnvPrefix is the prefix of the environment variables that override the
//configuration file, e.g. CHEMDEX_SERVER_ADDR for server.addr.
const EnvPrefix = "CHEMDEX"

type Config struct {
	Catalog CatalogConfig  `mapstructure:"catalog"`
	Depict  DepictConfig   `mapstructure:"depict"`
	Profile ProfileConfig  `mapstructure:"profile"`
	Server  ServerConfig   `mapstructure:"server"`
	Log     logging.Config `mapstructure:"log"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"` //empty means the embedded catalog
}

//DepictConfig contains the image settings.
type DepictConfig struct {
	Width         int     `mapstructure:"width"`
	Height        int     `mapstructure:"height"`
	Margin        float64 `mapstructure:"margin"`
	MaxBondPixels float64 `mapstructure:"max_bond_pixels"`
	FontSize      float64 `mapstructure:"font_size"`
	MaxImageSide  int     `mapstructure:"max_image_side"` //largest size a client can request
}

//ProfileConfig controls the computation of substance profiles.
type ProfileConfig struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type ServerConfig struct {
	Addr       string        `mapstructure:"addr"`
	Mode       string        `mapstructure:"mode"` //gin mode: debug, release or test
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

var defaults = map[string]interface{}{
	"catalog.path":             "",
	"depict.width":             400,
	"depict.height":            300,
	"depict.margin":            20.0,
	"depict.max_bond_pixels":   40.0,
	"depict.font_size":         14.0,
	"depict.max_image_side":    2000,
	"profile.timeout":          "5s",
	"profile.cache_ttl":        "1h",
	"profile.cleanup_interval": "10m",
	"server.addr":              ":8080",
	"server.mode":              "release",
	"server.session_ttl":       "30m",
	"log.level":                "info",
	"log.format":               "json",
	"log.output":               []string{"stderr"},
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	//Unmarshal only sees environment variables for keys viper knows about.
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	return v
}

//Load reads the YAML file at path, if path is not empty, applies the CHEMDEX_*
//environment variables and the defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: can't read %s: %w", path, err)
		}
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: can't decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

//Default returns the configuration with no file and no environment.
func Default() *Config {
	cfg := &Config{
		Depict:  DepictConfig{Width: 400, Height: 300, Margin: 20, MaxBondPixels: 40, FontSize: 14, MaxImageSide: 2000},
		Profile: ProfileConfig{Timeout: 5 * time.Second, CacheTTL: time.Hour, CleanupInterval: 10 * time.Minute},
		Server:  ServerConfig{Addr: ":8080", Mode: "release", SessionTTL: 30 * time.Minute},
		Log:     logging.Config{Level: "info", Format: "json", Output: []string{"stderr"}},
	}
	return cfg
}

//Validate returns all the problems found in the configuration, joined.
func (C *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("config: "+format, args...))
	}
	d := C.Depict
	if d.Width <= 0 || d.Height <= 0 {
		bad("depict: image size must be positive, got %dx%d", d.Width, d.Height)
	}
	if d.MaxImageSide < d.Width || d.MaxImageSide < d.Height {
		bad("depict: max_image_side (%d) is smaller than the default image", d.MaxImageSide)
	}
	if d.Margin < 0 || d.MaxBondPixels <= 0 || d.FontSize <= 0 {
		bad("depict: margin can't be negative, bond length and font size must be positive")
	}
	if C.Profile.Timeout <= 0 {
		bad("profile: timeout must be positive, got %v", C.Profile.Timeout)
	}
	if C.Profile.CacheTTL < 0 || C.Profile.CleanupInterval < 0 {
		bad("profile: cache durations can't be negative")
	}
	switch C.Server.Mode {
	case "debug", "release", "test":
	default:
		bad("server: unknown mode %q", C.Server.Mode)
	}
	if C.Server.SessionTTL <= 0 {
		bad("server: session_ttl must be positive")
	}
	if _, ok := logging.ParseLevel(C.Log.Level); !ok {
		bad("log: unknown level %q", C.Log.Level)
	}
	switch C.Log.Format {
	case "json", "console":
	default:
		bad("log: unknown format %q", C.Log.Format)
	}
	return errors.Join(errs...)
}
