/*
 * logger_test.go, part of chemdex.
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

package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFields(Te *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core).Named("depict").With(String("substance", "Morphine"))
	l.Debug("layout done", Int("atoms", 21), Float64("scale", 40), Bool("cached", false), Duration("took", time.Millisecond))
	l.Warn("structure failed", Err(errors.New("bad ring")), Any("size", []int{400, 300}))
	l.Info("nil error", Err(nil))
	require.Equal(Te, 3, logs.Len())
	e := logs.All()[0]
	assert.Equal(Te, "layout done", e.Message)
	assert.Equal(Te, "depict", e.LoggerName)
	ctx := e.ContextMap()
	assert.Equal(Te, "Morphine", ctx["substance"])
	assert.Equal(Te, int64(21), ctx["atoms"])
	assert.Equal(Te, 40.0, ctx["scale"])
	assert.Equal(Te, false, ctx["cached"])
	assert.Equal(Te, time.Millisecond, ctx["took"])
	w := logs.All()[1]
	assert.Equal(Te, zapcore.WarnLevel, w.Level)
	assert.Equal(Te, "bad ring", w.ContextMap()["error"])
	assert.Equal(Te, "<nil>", logs.All()[2].ContextMap()["error"])
}

func TestLevels(Te *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := NewLoggerFromCore(core)
	l.Debug("no")
	l.Info("no")
	l.Warn("yes")
	l.Error("yes")
	assert.Equal(Te, 2, logs.Len())

	cases := []struct {
		in    string
		level zapcore.Level
		ok    bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"INFO", zapcore.InfoLevel, true},
		{"", zapcore.InfoLevel, true},
		{" Warning ", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"verbose", zapcore.InfoLevel, false},
	}
	for _, c := range cases {
		level, ok := ParseLevel(c.in)
		assert.Equal(Te, c.level, level, c.in)
		assert.Equal(Te, c.ok, ok, c.in)
	}
}

func TestNewLogger(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "chemdex.log")
	l, err := NewLogger(Config{Level: "debug", Format: "json", Output: []string{path}})
	require.NoError(Te, err)
	l.Named("catalog").Info("loaded", Int("substances", 10))
	require.NoError(Te, l.Sync())
	b, err := os.ReadFile(path)
	require.NoError(Te, err)
	out := string(b)
	assert.True(Te, strings.Contains(out, `"logger":"chemdex.catalog"`), out)
	assert.True(Te, strings.Contains(out, `"substances":10`), out)
	assert.True(Te, strings.Contains(out, `"ts":`), out)

	_, err = NewLogger(Config{Level: "loud"})
	assert.Error(Te, err)
	_, err = NewLogger(Config{Format: "xml"})
	assert.Error(Te, err)
	l, err = NewLogger(Config{Format: "console", Output: []string{filepath.Join(Te.TempDir(), "c.log")}})
	require.NoError(Te, err)
	assert.NotNil(Te, l)
}

func TestDefault(Te *testing.T) {
	old := Default()
	Te.Cleanup(func() { SetDefault(old) })
	n := NewNopLogger()
	n.Info("discarded")
	assert.NoError(Te, n.Sync())
	assert.Equal(Te, n, n.Named("x").With(Int("a", 1)))
	core, logs := observer.New(zapcore.InfoLevel)
	SetDefault(NewLoggerFromCore(core))
	SetDefault(nil)
	Default().Info("hello")
	assert.Equal(Te, 1, logs.Len())
}
