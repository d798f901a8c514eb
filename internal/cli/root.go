/*
 * root.go, part of chemdex.
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

//Package cli contains the chemdex commands.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rmera/chemdex/catalog"
	"github.com/rmera/chemdex/depict"
	"github.com/rmera/chemdex/internal/config"
	"github.com/rmera/chemdex/internal/logging"
	"github.com/rmera/chemdex/profile"
	"github.com/spf13/cobra"
)

//Version is set at build time with -ldflags.
var Version = "dev"

//app holds the global flags and what is built from them before any command runs.
type app struct {
	configPath  string
	catalogPath string
	logLevel    string

	cfg *config.Config
	log logging.Logger
	reg *prometheus.Registry
	svc *profile.Service
}

//NewRootCommand returns the chemdex command with all its subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{log: logging.NewNopLogger()}
	cmd := &cobra.Command{
		Use:     "chemdex",
		Short:   "Browse a catalog of substances, with their descriptors and structure depictions",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "configuration file (YAML)")
	pf.StringVar(&a.catalogPath, "catalog", "", "catalog file, YAML or JSON, optionally .gz or .zst (default: the built-in catalog)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	cmd.AddCommand(a.listCmd(), a.showCmd(), a.browseCmd(), a.serveCmd(), a.exportCmd())
	return cmd
}

//Execute runs the chemdex command until it finishes or the process gets an interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

//init loads the configuration, the logger and the catalog, and builds the profile service.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.catalogPath != "" {
		cfg.Catalog.Path = a.catalogPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg
	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	a.log = log
	logging.SetDefault(log)

	var cat *catalog.Catalog
	if cfg.Catalog.Path == "" {
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.Load(cfg.Catalog.Path)
	}
	if err != nil {
		return err
	}
	for _, name := range cat.ListNames() {
		if err := cat.Problem(name); err != nil {
			log.Warn("substance without a usable structure", logging.String("substance", name), logging.Err(err))
		}
	}
	log.Debug("catalog loaded", logging.Int("substances", cat.Len()), logging.String("path", cfg.Catalog.Path))

	a.reg = prometheus.NewRegistry()
	a.reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := profile.NewMetrics(a.reg)
	if err != nil {
		return err
	}
	a.svc = profile.New(cat, profile.Settings{
		Timeout:         cfg.Profile.Timeout,
		CacheTTL:        cfg.Profile.CacheTTL,
		CleanupInterval: cfg.Profile.CleanupInterval,
		Depict:          depictOptions(cfg.Depict),
		Logger:          log,
		Metrics:         metrics,
	})
	return nil
}

func depictOptions(d config.DepictConfig) *depict.Options {
	o := depict.DefaultOptions()
	o.Margin(d.Margin)
	o.MaxBondPixels(d.MaxBondPixels)
	o.FontSize(d.FontSize)
	return o
}
