/*
 * browse.go, part of chemdex.
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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rmera/chemdex/navigation"
	"github.com/rmera/chemdex/profile"
	"github.com/spf13/cobra"
)

func (a *app) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Browse shows the list of substances. Type a number or a name to see a substance,
b to go back to the list, and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return browse(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.svc)
		},
	}
}

//browse runs the list/detail loop on in and out until the user quits or in ends.
func browse(ctx context.Context, in io.Reader, out io.Writer, svc *profile.Service) error {
	nav := navigation.New(svc.Catalog())
	names := svc.Catalog().ListNames()
	sc := bufio.NewScanner(in)
	for {
		switch st := nav.State().(type) {
		case navigation.ListView:
			fmt.Fprintln(out, "Substances")
			for i, name := range names {
				fmt.Fprintf(out, "%3d  %s\n", i+1, name)
			}
			fmt.Fprint(out, "\nNumber or name (q to quit): ")
		case navigation.DetailView:
			p, err := svc.Profile(ctx, st.Name)
			if err != nil {
				return err
			}
			printProfile(out, p)
			fmt.Fprint(out, "\nb to go back, q to quit, or another name: ")
		}
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "b", "back":
			if err := nav.Back(); errors.Is(err, navigation.ErrAtList) {
				fmt.Fprintln(out, "Already at the list.")
			}
			continue
		}
		name := line
		if i, err := strconv.Atoi(line); err == nil {
			if i < 1 || i > len(names) {
				fmt.Fprintf(out, "No substance number %d.\n", i)
				continue
			}
			name = names[i-1]
		}
		if _, err := nav.Select(name); err != nil {
			fmt.Fprintln(out, err)
		}
	}
}
