/*
 * commands.go, part of chemdex.
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

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rmera/chemdex/internal/logging"
	"github.com/rmera/chemdex/internal/server"
	"github.com/rmera/chemdex/profile"
	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the substances in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := a.svc.Catalog()
			names := cat.ListNames()
			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(names)
			}
			for i, name := range names {
				if cat.Problem(name) != nil {
					fmt.Fprintf(out, "%3d  %s (no usable structure)\n", i+1, name)
					continue
				}
				fmt.Fprintf(out, "%3d  %s\n", i+1, name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the names as a JSON array")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	var asJSON bool
	var pngPath string
	var width, height int
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show the profile of a substance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := a.svc.Profile(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(p); err != nil {
					return err
				}
			} else {
				printProfile(out, p)
			}
			if pngPath == "" {
				return nil
			}
			if width <= 0 {
				width = a.cfg.Depict.Width
			}
			if height <= 0 {
				height = a.cfg.Depict.Height
			}
			img, err := a.svc.Depiction(ctx, args[0], width, height)
			if err != nil {
				return err
			}
			if err := os.WriteFile(pngPath, img.PNG, 0o644); err != nil {
				return err
			}
			a.log.Info("depiction written", logging.String("substance", p.Record.Name), logging.String("path", pngPath))
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&asJSON, "json", false, "print the profile as JSON")
	f.StringVar(&pngPath, "png", "", "also write the depiction of the structure to this PNG file")
	f.IntVar(&width, "width", 0, "width of the depiction in pixels (default from the configuration)")
	f.IntVar(&height, "height", 0, "height of the depiction in pixels (default from the configuration)")
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var addr string
	var warm bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			if warm {
				go func() {
					err := a.svc.Warm(ctx, runtime.NumCPU(), a.cfg.Depict.Width, a.cfg.Depict.Height)
					if err != nil {
						a.log.Warn("cache warm-up interrupted", logging.Err(err))
					}
				}()
			}
			return server.New(a.svc, a.reg, a.cfg, a.log).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on (default from the configuration)")
	cmd.Flags().BoolVar(&warm, "warm", false, "compute all the profiles and depictions at start")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the catalog to a file; the format follows the extension (.yaml, .json, plus .gz or .zst)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := a.svc.Catalog()
			if err := cat.Save(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d substances written to %s\n", cat.Len(), args[0])
			return nil
		},
	}
}

//printProfile writes p in a human-readable form.
func printProfile(w io.Writer, p *profile.Profile) {
	r := p.Record
	fmt.Fprintln(w, r.Name)
	fmt.Fprintln(w, strings.Repeat("=", len(r.Name)))
	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(w, "%-12s %s\n", name+":", value)
		}
	}
	field("IUPAC name", r.IUPAC)
	field("Category", r.Category)
	field("SMILES", r.SMILES)
	if p.Formula != "" {
		field("Formula", p.Formula)
	} else {
		field("Formula", r.Formula)
	}
	if r.Weight > 0 {
		field("Weight", fmt.Sprintf("%.2f g/mol", r.Weight))
	}
	field("PubChem", p.PubChemURL)
	if p.Problem != "" {
		fmt.Fprintf(w, "\nStructure problem: %s\n", p.Problem)
	} else {
		fmt.Fprintln(w, "\nDescriptors")
		for _, e := range p.Properties {
			fmt.Fprintf(w, "  %-20s %s\n", e.Name+":", e.String())
		}
	}
	list := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s\n", title)
		for _, i := range items {
			fmt.Fprintf(w, "  - %s\n", i)
		}
	}
	list("Uses", r.Uses)
	list("Side effects", r.SideEffects)
	list("Overdose symptoms", r.Symptoms)
	list("Precautions", r.Precautions)
	if r.Toxicity != "" {
		fmt.Fprintf(w, "\nToxicity\n  %s\n", r.Toxicity)
	}
}
