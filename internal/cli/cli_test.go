/*
 * cli_test.go, part of chemdex.
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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/chemdex/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(Te *testing.T, ctx context.Context, in string, args ...string) (string, error) {
	Te.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	if ctx == nil {
		ctx = context.Background()
	}
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestList(Te *testing.T) {
	out, err := run(Te, nil, "", "list")
	require.NoError(Te, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(Te, lines, 10)
	assert.Equal(Te, "  1  Codeine", lines[0])
	assert.Contains(Te, out, "Morphine")

	out, err = run(Te, nil, "", "list", "--json")
	require.NoError(Te, err)
	var names []string
	require.NoError(Te, json.Unmarshal([]byte(out), &names))
	assert.Len(Te, names, 10)
	assert.Equal(Te, "Tramadol", names[9])
}

func TestShow(Te *testing.T) {
	out, err := run(Te, nil, "", "show", "Morphine")
	require.NoError(Te, err)
	assert.Contains(Te, out, "Morphine\n========")
	assert.Contains(Te, out, "C17H19NO3")
	assert.Contains(Te, out, "285.34 g/mol")
	assert.Contains(Te, out, "https://pubchem.ncbi.nlm.nih.gov/compound/")
	assert.Contains(Te, out, "H-Bond Donors:")

	out, err = run(Te, nil, "", "show", "--json", "Fentanyl")
	require.NoError(Te, err)
	var p struct {
		Formula     string `json:"computed_formula"`
		Descriptors struct {
			Rotatable int `json:"rotatable_bonds"`
		} `json:"descriptors"`
	}
	require.NoError(Te, json.Unmarshal([]byte(out), &p))
	assert.Equal(Te, "C22H28N2O", p.Formula)
	assert.Equal(Te, 7, p.Descriptors.Rotatable)

	path := filepath.Join(Te.TempDir(), "naloxone.png")
	_, err = run(Te, nil, "", "show", "Naloxone", "--png", path, "--width", "240", "--height", "180")
	require.NoError(Te, err)
	f, err := os.Open(path)
	require.NoError(Te, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(Te, err)
	assert.Equal(Te, 240, img.Bounds().Dx())
	assert.Equal(Te, 180, img.Bounds().Dy())

	_, err = run(Te, nil, "", "show", "Aspirin")
	assert.True(Te, errors.Is(err, catalog.ErrNotFound))
	_, err = run(Te, nil, "", "show")
	assert.Error(Te, err)
}

func TestBrowse(Te *testing.T) {
	in := "1\nb\nb\nMethadone\nXyz\n99\n\nq\nMorphine\n"
	out, err := run(Te, nil, in, "browse")
	require.NoError(Te, err)
	assert.Contains(Te, out, "Codeine\n=======")
	assert.Contains(Te, out, "Already at the list.")
	assert.Contains(Te, out, "Methadone\n=========")
	assert.Contains(Te, out, `no substance named "Xyz"`)
	assert.Contains(Te, out, "No substance number 99.")
	assert.NotContains(Te, out, "Morphine\n========", "input after q is not read")

	//the input may also just end
	out, err = run(Te, nil, "Tramadol\n", "browse")
	require.NoError(Te, err)
	assert.Contains(Te, out, "C16H25NO2")
}

func TestCatalogFiles(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "opioids.json.zst")
	out, err := run(Te, nil, "", "export", path)
	require.NoError(Te, err)
	assert.Contains(Te, out, "10 substances written")
	out, err = run(Te, nil, "", "--catalog", path, "list", "--json")
	require.NoError(Te, err)
	var names []string
	require.NoError(Te, json.Unmarshal([]byte(out), &names))
	assert.Len(Te, names, 10)

	broken := filepath.Join(dir, "broken.yaml")
	yml := "substances:\n  - name: Mystery\n    smiles: \"C1CC(\"\n  - name: Water\n    smiles: O\n"
	require.NoError(Te, os.WriteFile(broken, []byte(yml), 0o644))
	out, err = run(Te, nil, "", "--catalog", broken, "list")
	require.NoError(Te, err)
	assert.Contains(Te, out, "Mystery (no usable structure)")
	out, err = run(Te, nil, "", "--catalog", broken, "show", "Mystery")
	require.NoError(Te, err)
	assert.Contains(Te, out, "Structure problem:")
	assert.NotContains(Te, out, "Descriptors")

	_, err = run(Te, nil, "", "--catalog", filepath.Join(dir, "missing.yaml"), "list")
	assert.Error(Te, err)
	_, err = run(Te, nil, "", "--config", filepath.Join(dir, "missing.yaml"), "list")
	assert.Error(Te, err)
	_, err = run(Te, nil, "", "--log-level", "loud", "list")
	assert.Error(Te, err)
}

func TestServe(Te *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := run(Te, ctx, "", "serve", "--addr", "127.0.0.1:0")
	assert.NoError(Te, err)
}
