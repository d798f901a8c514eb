/*
 * config_test.go, part of chemdex.
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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(Te *testing.T) {
	cfg, err := Load("")
	require.NoError(Te, err)
	assert.Equal(Te, Default(), cfg)
	assert.NoError(Te, Default().Validate())
}

func TestLoadFile(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "chemdex.yaml")
	yml := `
catalog:
  path: /data/opioids.yaml.zst
depict:
  width: 600
  max_bond_pixels: 30
profile:
  timeout: 2s
server:
  addr: 127.0.0.1:9000
  mode: debug
log:
  level: debug
  format: console
`
	require.NoError(Te, os.WriteFile(path, []byte(yml), 0o644))
	cfg, err := Load(path)
	require.NoError(Te, err)
	assert.Equal(Te, "/data/opioids.yaml.zst", cfg.Catalog.Path)
	assert.Equal(Te, 600, cfg.Depict.Width)
	assert.Equal(Te, 300, cfg.Depict.Height)
	assert.Equal(Te, 30.0, cfg.Depict.MaxBondPixels)
	assert.Equal(Te, 2*time.Second, cfg.Profile.Timeout)
	assert.Equal(Te, time.Hour, cfg.Profile.CacheTTL)
	assert.Equal(Te, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(Te, "debug", cfg.Server.Mode)
	assert.Equal(Te, "console", cfg.Log.Format)
}

func TestLoadEnv(Te *testing.T) {
	Te.Setenv("CHEMDEX_SERVER_ADDR", ":7000")
	Te.Setenv("CHEMDEX_DEPICT_HEIGHT", "500")
	Te.Setenv("CHEMDEX_PROFILE_TIMEOUT", "250ms")
	cfg, err := Load("")
	require.NoError(Te, err)
	assert.Equal(Te, ":7000", cfg.Server.Addr)
	assert.Equal(Te, 500, cfg.Depict.Height)
	assert.Equal(Te, 250*time.Millisecond, cfg.Profile.Timeout)
}

func TestValidate(Te *testing.T) {
	cases := []struct {
		name   string
		change func(*Config)
	}{
		{"width", func(c *Config) { c.Depict.Width = 0 }},
		{"max side", func(c *Config) { c.Depict.MaxImageSide = 100 }},
		{"font", func(c *Config) { c.Depict.FontSize = -1 }},
		{"timeout", func(c *Config) { c.Profile.Timeout = 0 }},
		{"ttl", func(c *Config) { c.Profile.CacheTTL = -time.Second }},
		{"mode", func(c *Config) { c.Server.Mode = "fast" }},
		{"session", func(c *Config) { c.Server.SessionTTL = 0 }},
		{"level", func(c *Config) { c.Log.Level = "loud" }},
		{"format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, c := range cases {
		cfg := Default()
		c.change(cfg)
		assert.Error(Te, cfg.Validate(), c.name)
	}
	cfg := Default()
	cfg.Depict.Width = -1
	cfg.Server.Mode = "?"
	err := cfg.Validate()
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "image size")
	assert.Contains(Te, err.Error(), "unknown mode")

	path := filepath.Join(Te.TempDir(), "bad.yaml")
	require.NoError(Te, os.WriteFile(path, []byte("profile:\n  timeout: 0s\n"), 0o644))
	_, err = Load(path)
	assert.Error(Te, err)
	_, err = Load(filepath.Join(Te.TempDir(), "missing.yaml"))
	assert.Error(Te, err)
}
