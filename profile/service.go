/*
 * service.go, part of chemdex.
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

//Package profile puts together everything chemdex shows about a substance:
//its record, descriptors and depiction. Results are cached by SMILES, and
//concurrent requests for the same result share one computation.
package profile

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/patrickmn/go-cache"
	chem "github.com/rmera/chemdex"
	"github.com/rmera/chemdex/catalog"
	"github.com/rmera/chemdex/chemjson"
	"github.com/rmera/chemdex/depict"
	"github.com/rmera/chemdex/descriptors"
	"github.com/rmera/chemdex/internal/logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gonum.org/v1/gonum/spatial/r2"
)

//Profile is what is known and computed about a substance. If the structure
//can't be parsed or processed, Err is set and Descriptors and Properties are empty.
type Profile struct {
	Record      catalog.Record      `json:"record"`
	PubChemURL  string              `json:"pubchem_url,omitempty"`
	Formula     string              `json:"computed_formula,omitempty"`
	Descriptors descriptors.Set     `json:"descriptors"`
	Properties  []descriptors.Entry `json:"properties,omitempty"` //rounded, for display
	Err         error               `json:"-"`
	Problem     string              `json:"problem,omitempty"` //Err.Error()
}

//Image is a rendered depiction.
type Image struct {
	PNG    []byte
	Width  int
	Height int
	Coords []r2.Vec //of each atom, in pixels, from the top-left corner
}

//Settings for a Service. Zero values mean the defaults.
type Settings struct {
	Timeout         time.Duration //for each computation, default 5s
	CacheTTL        time.Duration //0 means results never expire
	CleanupInterval time.Duration
	Depict          *depict.Options
	Logger          logging.Logger
	Metrics         *Metrics
}

//Service computes and caches profiles for the substances in a catalog.
//It is safe for concurrent use.
type Service struct {
	cat     *catalog.Catalog
	cache   *cache.Cache
	flight  singleflight.Group
	timeout time.Duration
	dopts   *depict.Options
	log     logging.Logger
	metrics *Metrics
}

//DefaultTimeout is the time a computation is allowed to take if Settings don't say otherwise.
const DefaultTimeout = 5 * time.Second

//New returns a service for the substances in cat.
func New(cat *catalog.Catalog, s Settings) *Service {
	S := &Service{
		cat:     cat,
		cache:   cache.New(s.CacheTTL, s.CleanupInterval),
		timeout: s.Timeout,
		dopts:   s.Depict,
		log:     s.Logger,
		metrics: s.Metrics,
	}
	if S.timeout <= 0 {
		S.timeout = DefaultTimeout
	}
	if S.dopts == nil {
		S.dopts = depict.DefaultOptions()
	}
	if S.log == nil {
		S.log = logging.NewNopLogger()
	}
	if S.metrics == nil {
		//not registered anywhere, but always usable.
		S.metrics, _ = NewMetrics(nil)
	}
	S.log = S.log.Named("profile")
	return S
}

//Catalog returns the catalog the service works on.
func (S *Service) Catalog() *catalog.Catalog {
	return S.cat
}

//do returns the cached value for key, or computes it with f, only once for concurrent
//callers. If ctx is done or the timeout expires first, it returns without waiting for f.
func (S *Service) do(ctx context.Context, kind, key string, f func() (interface{}, error)) (interface{}, error) {
	if v, ok := S.cache.Get(key); ok {
		S.metrics.Hits.WithLabelValues(kind).Inc()
		return v, nil
	}
	S.metrics.Misses.WithLabelValues(kind).Inc()
	ctx, cancel := context.WithTimeout(ctx, S.timeout)
	defer cancel()
	ch := S.flight.DoChan(key, func() (v interface{}, err error) {
		//singleflight would re-panic in its own goroutine, taking the process down.
		defer func() {
			if r := recover(); r != nil {
				S.metrics.Failures.WithLabelValues(kind, "panic").Inc()
				S.log.Error("computation panicked", logging.String("key", key), logging.Any("panic", r), logging.String("stack", string(debug.Stack())))
				v, err = nil, &PanicError{Key: key, Value: r, deco: []string{"Service.do"}}
			}
		}()
		start := time.Now()
		v, err = f()
		S.metrics.Duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
		if err != nil {
			S.metrics.Failures.WithLabelValues(kind, "error").Inc()
			return nil, err
		}
		S.cache.Set(key, v, cache.DefaultExpiration)
		return v, nil
	})
	select {
	case r := <-ch:
		return r.Val, r.Err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			S.metrics.Failures.WithLabelValues(kind, "timeout").Inc()
			S.log.Warn("computation timed out", logging.String("key", key), logging.Duration("timeout", S.timeout))
			return nil, &TimeoutError{Key: key, Timeout: S.timeout, deco: []string{"Service.do"}}
		}
		S.metrics.Failures.WithLabelValues(kind, "canceled").Inc()
		return nil, ctx.Err()
	}
}

//molecule returns the parsed structure of the substance name.
func (S *Service) molecule(name string) (catalog.Record, *chem.Molecule, error) {
	rec, err := S.cat.FindByName(name)
	if err != nil {
		return rec, nil, err
	}
	mol, err := S.cat.Molecule(name)
	return rec, mol, err
}

//Descriptors returns the descriptors of the substance name.
func (S *Service) Descriptors(ctx context.Context, name string) (descriptors.Set, error) {
	rec, mol, err := S.molecule(name)
	if err != nil {
		return descriptors.Set{}, err
	}
	v, err := S.do(ctx, "descriptors", "descriptors|"+rec.SMILES, func() (interface{}, error) {
		return descriptors.Compute(mol)
	})
	if err != nil {
		return descriptors.Set{}, err
	}
	return v.(descriptors.Set), nil
}

//Depiction returns the image of the substance name, of width x height pixels.
func (S *Service) Depiction(ctx context.Context, name string, width, height int) (*Image, error) {
	rec, mol, err := S.molecule(name)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("depiction|%dx%d|%s", width, height, rec.SMILES)
	v, err := S.do(ctx, "depiction", key, func() (interface{}, error) {
		d, err := depict.Render(mol, width, height, S.dopts)
		if err != nil {
			return nil, err
		}
		png, err := d.PNG()
		if err != nil {
			return nil, err
		}
		S.log.Debug("depiction rendered", logging.String("substance", rec.Name), logging.Int("bytes", len(png)))
		return &Image{PNG: png, Width: d.Width, Height: d.Height, Coords: d.Coords}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Image), nil
}

//Structure returns the graph of the substance name, with its 2D layout.
func (S *Service) Structure(ctx context.Context, name string) (*chemjson.Structure, error) {
	rec, mol, err := S.molecule(name)
	if err != nil {
		return nil, err
	}
	v, err := S.do(ctx, "layout", "layout|"+rec.SMILES, func() (interface{}, error) {
		coords, err := depict.Layout(mol, S.dopts)
		if err != nil {
			return nil, err
		}
		st, jerr := chemjson.FromMolecule("", mol, coords)
		if jerr != nil {
			return nil, jerr
		}
		return st, nil
	})
	if err != nil {
		return nil, err
	}
	//the cached structure can be shared by records with the same SMILES.
	st := *v.(*chemjson.Structure)
	st.Name = rec.Name
	return &st, nil
}

//Profile returns the profile of the substance name. Problems with the structure
//don't make Profile fail, they are reported in the profile. An error is returned
//if there is no such substance, or if the computation times out or is canceled.
func (S *Service) Profile(ctx context.Context, name string) (*Profile, error) {
	rec, mol, err := S.molecule(name)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, err
	}
	P := &Profile{Record: rec, PubChemURL: rec.PubChemURL()}
	if err == nil {
		P.Formula = mol.Formula()
		P.Descriptors, err = S.Descriptors(ctx, name)
	}
	var timeout *TimeoutError
	switch {
	case err == nil:
		P.Properties = P.Descriptors.Display()
	case errors.As(err, &timeout), errors.Is(err, context.Canceled):
		return nil, err
	default:
		S.log.Warn("substance without a usable structure", logging.String("substance", name), logging.Err(err))
		P.Err = err
		P.Problem = err.Error()
	}
	return P, nil
}

//Warm computes the profiles and the default-size depictions of all the substances,
//using at most workers goroutines. Structure problems are not errors.
func (S *Service) Warm(ctx context.Context, workers, width, height int) error {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, name := range S.cat.ListNames() {
		name := name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := S.Profile(ctx, name)
			if err != nil {
				return err
			}
			if p.Err != nil {
				return nil
			}
			_, err = S.Depiction(ctx, name, width, height)
			var rerr *depict.RenderError
			if errors.As(err, &rerr) {
				S.log.Warn("can't depict substance", logging.String("substance", name), logging.Err(err))
				return nil
			}
			return err
		})
	}
	err := g.Wait()
	if err == nil {
		S.log.Info("profiles ready", logging.Int("substances", S.cat.Len()), logging.Int("cached", S.cache.ItemCount()))
	}
	return err
}
