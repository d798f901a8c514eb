/*
 * load.go, part of chemdex.
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

package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

//Format is the encoding of a catalog file.
type Format int

const (
	YAML Format = iota
	JSON
)

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "yaml"
}

//the document in catalog files.
type file struct {
	Substances []Record `yaml:"substances" json:"substances"`
}

//Default returns the catalog of opioids that comes with chemdex.
func Default() (*Catalog, error) {
	C, err := Read(bytes.NewReader(defaultCatalog), YAML)
	if err != nil {
		return nil, fmt.Errorf("catalog: embedded catalog: %w", err)
	}
	return C, nil
}

//Read decodes a catalog in the given format from r.
func Read(r io.Reader, format Format) (*Catalog, error) {
	var f file
	var err error
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&f)
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("catalog: can't decode %s: %w", format, err)
	}
	return New(f.Substances...)
}

//Write encodes the records of C in the given format to w.
func (C *Catalog) Write(w io.Writer, format Format) error {
	f := file{Substances: C.records}
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	}
}

//formatOf returns the format and compression of a file, from its name:
//.json means JSON, anything else, YAML. A further .gz or .zst
//extension means gzip or zstd compression.
func formatOf(name string) (format Format, compression string) {
	name = strings.ToLower(name)
	switch ext := filepath.Ext(name); ext {
	case ".gz", ".zst":
		compression = ext
		name = strings.TrimSuffix(name, ext)
	}
	if filepath.Ext(name) == ".json" {
		format = JSON
	}
	return format, compression
}

//This will cause additional indirections
//but it doesn't matter for files of this size.
type zstdrc struct {
	*zstd.Decoder
}

//Close Closes the decoder. It can not be used after this call.
func (z zstdrc) Close() error {
	z.Decoder.Close()
	return nil
}

//Load reads a catalog from the file path. The format and compression
//are taken from its name, e.g. "opioids.yaml", "opioids.json.gz", "opioids.yml.zst".
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()
	format, compression := formatOf(path)
	var r io.ReadCloser
	in := bufio.NewReader(f)
	switch compression {
	case ".gz":
		r, err = gzip.NewReader(in)
	case ".zst":
		var d *zstd.Decoder
		d, err = zstd.NewReader(in)
		if err == nil {
			r = zstdrc{d}
		}
	default:
		r = io.NopCloser(in)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: can't read %s: %w", path, err)
	}
	defer r.Close()
	C, err := Read(r, format)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return C, nil
}

//Save writes the catalog to the file path, with the format and compression
//given by its name, as in Load.
func (C *Catalog) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	defer func() {
		if err2 := f.Close(); err == nil {
			err = err2
		}
	}()
	format, compression := formatOf(path)
	var w io.WriteCloser
	switch compression {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".zst":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return fmt.Errorf("catalog: can't write %s: %w", path, err)
		}
	default:
		if err := C.Write(f, format); err != nil {
			return fmt.Errorf("catalog: can't write %s: %w", path, err)
		}
		return nil
	}
	if err := C.Write(w, format); err != nil {
		w.Close()
		return fmt.Errorf("catalog: can't write %s: %w", path, err)
	}
	return w.Close()
}
