/*
 * server_test.go, part of chemdex.
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

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	chem "github.com/rmera/chemdex"
	"github.com/rmera/chemdex/catalog"
	"github.com/rmera/chemdex/depict"
	"github.com/rmera/chemdex/internal/config"
	"github.com/rmera/chemdex/navigation"
	"github.com/rmera/chemdex/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(Te *testing.T) *Server {
	cat, err := catalog.New(
		catalog.Record{Name: "Morphine", SMILES: "CN1CCC23C4C1CC5=C2C(=C(C=C5)O)OC3C(C=C4)O", PubChemCID: "5288826"},
		catalog.Record{Name: "Ethanol", SMILES: "CCO"},
		catalog.Record{Name: "Broken", SMILES: "C1CC("},
	)
	require.NoError(Te, err)
	reg := prometheus.NewRegistry()
	m, err := profile.NewMetrics(reg)
	require.NoError(Te, err)
	cfg := config.Default()
	cfg.Server.Mode = "test"
	cfg.Depict.MaxImageSide = 800
	svc := profile.New(cat, profile.Settings{Metrics: m})
	return New(svc, reg, cfg, nil)
}

func do(S *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	S.Handler().ServeHTTP(w, req)
	return w
}

func decode(Te *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(Te, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestSubstances(Te *testing.T) {
	S := newServer(Te)
	w := do(S, "GET", "/api/substances", "")
	require.Equal(Te, http.StatusOK, w.Code)
	var list struct {
		Substances []string `json:"substances"`
		Count      int      `json:"count"`
	}
	decode(Te, w, &list)
	assert.Equal(Te, []string{"Broken", "Ethanol", "Morphine"}, list.Substances)
	assert.Equal(Te, 3, list.Count)

	w = do(S, "GET", "/api/substances/Morphine", "")
	require.Equal(Te, http.StatusOK, w.Code)
	var p struct {
		Record     catalog.Record `json:"record"`
		PubChemURL string         `json:"pubchem_url"`
		Formula    string         `json:"computed_formula"`
		Properties []struct {
			Name  string  `json:"name"`
			Value float64 `json:"value"`
		} `json:"properties"`
		Problem string `json:"problem"`
	}
	decode(Te, w, &p)
	assert.Equal(Te, "Morphine", p.Record.Name)
	assert.Equal(Te, "C17H19NO3", p.Formula)
	assert.Equal(Te, "https://pubchem.ncbi.nlm.nih.gov/compound/5288826", p.PubChemURL)
	require.Len(Te, p.Properties, 6)
	assert.Equal(Te, 285.34, p.Properties[0].Value)
	assert.Empty(Te, p.Problem)

	//a broken structure is still a profile, with the problem in it.
	w = do(S, "GET", "/api/substances/Broken", "")
	require.Equal(Te, http.StatusOK, w.Code)
	p.Problem = ""
	p.Properties = nil
	decode(Te, w, &p)
	assert.NotEmpty(Te, p.Problem)
	assert.Empty(Te, p.Properties)

	w = do(S, "GET", "/api/substances/Heroin", "")
	assert.Equal(Te, http.StatusNotFound, w.Code)
	assert.Contains(Te, w.Body.String(), "Heroin")
}

func TestDepiction(Te *testing.T) {
	S := newServer(Te)
	w := do(S, "GET", "/api/substances/Morphine/depiction.png?w=320&h=240", "")
	require.Equal(Te, http.StatusOK, w.Code)
	assert.Equal(Te, "image/png", w.Header().Get("Content-Type"))
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(Te, err)
	assert.Equal(Te, 320, img.Bounds().Dx())
	assert.Equal(Te, 240, img.Bounds().Dy())

	w = do(S, "GET", "/api/substances/Ethanol/depiction.png", "")
	require.Equal(Te, http.StatusOK, w.Code)
	img, err = png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(Te, err)
	assert.Equal(Te, 400, img.Bounds().Dx())
	assert.Equal(Te, 300, img.Bounds().Dy())

	for _, q := range []string{"w=0", "h=-3", "w=abc", "w=801"} {
		w = do(S, "GET", "/api/substances/Ethanol/depiction.png?"+q, "")
		assert.Equal(Te, http.StatusBadRequest, w.Code, q)
	}
	w = do(S, "GET", "/api/substances/Broken/depiction.png", "")
	assert.Equal(Te, http.StatusUnprocessableEntity, w.Code)
	w = do(S, "GET", "/api/substances/Nope/depiction.png", "")
	assert.Equal(Te, http.StatusNotFound, w.Code)
}

func TestStructure(Te *testing.T) {
	S := newServer(Te)
	w := do(S, "GET", "/api/substances/Ethanol/structure", "")
	require.Equal(Te, http.StatusOK, w.Code)
	var st struct {
		SMILES string `json:"smiles"`
		Atoms  []struct {
			Symbol string    `json:"symbol"`
			Coords []float64 `json:"coords"`
		} `json:"atoms"`
	}
	decode(Te, w, &st)
	require.Len(Te, st.Atoms, 3)
	assert.Equal(Te, "O", st.Atoms[2].Symbol)
	assert.Len(Te, st.Atoms[2].Coords, 2)
	mol, err := chem.ParseSMILES(st.SMILES)
	require.NoError(Te, err)
	assert.Equal(Te, "C2H6O", mol.Formula())

	w = do(S, "GET", "/api/substances/Broken/structure", "")
	assert.Equal(Te, http.StatusUnprocessableEntity, w.Code)
}

func TestSessions(Te *testing.T) {
	S := newServer(Te)
	w := do(S, "POST", "/api/sessions", "")
	require.Equal(Te, http.StatusCreated, w.Code)
	var v sessionView
	decode(Te, w, &v)
	assert.Equal(Te, "list", v.State)
	assert.Len(Te, v.Substances, 3)
	require.NotEmpty(Te, v.ID)
	base := "/api/sessions/" + v.ID

	w = do(S, "POST", base+"/back", "")
	assert.Equal(Te, http.StatusConflict, w.Code)

	w = do(S, "POST", base+"/select", `{"name": "Ethanol"}`)
	require.Equal(Te, http.StatusOK, w.Code)
	v = sessionView{}
	decode(Te, w, &v)
	assert.Equal(Te, "detail", v.State)
	assert.Equal(Te, "Ethanol", v.Substance)
	require.NotNil(Te, v.Profile)
	assert.Equal(Te, "C2H6O", v.Profile.Formula)
	assert.Empty(Te, v.Substances)

	//selecting an unknown substance leaves the session where it was.
	w = do(S, "POST", base+"/select", `{"name": "Heroin"}`)
	assert.Equal(Te, http.StatusNotFound, w.Code)
	w = do(S, "GET", base, "")
	require.Equal(Te, http.StatusOK, w.Code)
	v = sessionView{}
	decode(Te, w, &v)
	assert.Equal(Te, "Ethanol", v.Substance)

	w = do(S, "POST", base+"/select", `{"name": "Morphine"}`)
	require.Equal(Te, http.StatusOK, w.Code)
	v = sessionView{}
	decode(Te, w, &v)
	assert.Equal(Te, "Morphine", v.Substance)

	w = do(S, "POST", base+"/back", "")
	require.Equal(Te, http.StatusOK, w.Code)
	v = sessionView{}
	decode(Te, w, &v)
	assert.Equal(Te, "list", v.State)

	w = do(S, "POST", base+"/select", `{}`)
	assert.Equal(Te, http.StatusBadRequest, w.Code)
	w = do(S, "POST", base+"/select", `not json`)
	assert.Equal(Te, http.StatusBadRequest, w.Code)
	w = do(S, "GET", "/api/sessions/nothing-here", "")
	assert.Equal(Te, http.StatusNotFound, w.Code)
	w = do(S, "POST", "/api/sessions/nothing-here/back", "")
	assert.Equal(Te, http.StatusNotFound, w.Code)

	//sessions don't share state
	w = do(S, "POST", "/api/sessions", "")
	require.Equal(Te, http.StatusCreated, w.Code)
	var other sessionView
	decode(Te, w, &other)
	assert.NotEqual(Te, v.ID, other.ID)
	do(S, "POST", "/api/sessions/"+other.ID+"/select", `{"name": "Ethanol"}`)
	w = do(S, "GET", base, "")
	v = sessionView{}
	decode(Te, w, &v)
	assert.Equal(Te, "list", v.State)
}

func TestMetricsAndHealth(Te *testing.T) {
	S := newServer(Te)
	do(S, "GET", "/api/substances/Ethanol", "")
	do(S, "GET", "/api/substances/Ethanol", "")
	w := do(S, "GET", "/metrics", "")
	require.Equal(Te, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(Te, body, `chemdex_cache_hits_total{kind="descriptors"} 1`)
	assert.Contains(Te, body, `chemdex_cache_misses_total{kind="descriptors"} 1`)

	w = do(S, "GET", "/healthz", "")
	require.Equal(Te, http.StatusOK, w.Code)
	assert.Contains(Te, w.Body.String(), `"substances":3`)
}

func TestStatus(Te *testing.T) {
	_, perr := chem.ParseSMILES("C(")
	require.Error(Te, perr)
	cases := []struct {
		err  error
		code int
	}{
		{&catalog.NotFoundError{Name: "x"}, http.StatusNotFound},
		{navigation.ErrAtList, http.StatusConflict},
		{&profile.TimeoutError{Key: "k"}, http.StatusGatewayTimeout},
		{context.Canceled, http.StatusServiceUnavailable},
		{perr, http.StatusUnprocessableEntity},
		{fmt.Errorf("structure of x: %w", perr), http.StatusUnprocessableEntity},
		{chem.NewEmptyStructureError("test"), http.StatusUnprocessableEntity},
		{&depict.RenderError{Err: errors.New("no")}, http.StatusUnprocessableEntity},
		{&profile.PanicError{Key: "k", Value: "index out of range"}, http.StatusInternalServerError},
		{errors.New("something else"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(Te, c.code, status(c.err), c.err.Error())
	}
}
