/*
 * handlers.go, part of chemdex.
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
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	chem "github.com/rmera/chemdex"
	"github.com/rmera/chemdex/catalog"
	"github.com/rmera/chemdex/chemjson"
	"github.com/rmera/chemdex/depict"
	"github.com/rmera/chemdex/navigation"
)

//status returns the HTTP status that corresponds to err.
func status(err error) int {
	var perr *chem.ParseError
	var rerr *depict.RenderError
	var jerr *chemjson.Error
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, navigation.ErrAtList):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	case errors.As(err, &perr), chem.IsEmptyStructure(err), errors.As(err, &rerr), errors.As(err, &jerr):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

//fail answers with the status for err and a JSON error message.
func (S *Server) fail(c *gin.Context, err error) {
	code := status(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}

func (S *Server) listSubstances(c *gin.Context) {
	names := S.svc.Catalog().ListNames()
	c.JSON(http.StatusOK, gin.H{"substances": names, "count": len(names)})
}

func (S *Server) getProfile(c *gin.Context) {
	p, err := S.svc.Profile(c.Request.Context(), c.Param("name"))
	if err != nil {
		S.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

//size reads the w and h query parameters, which default to the configured image size.
func (S *Server) size(c *gin.Context) (width, height int, err error) {
	parse := func(key string, def int) (int, error) {
		s := c.Query(key)
		if s == "" {
			return def, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 || v > S.depict.MaxImageSide {
			return 0, fmt.Errorf("%s must be an integer between 1 and %d, got %q", key, S.depict.MaxImageSide, s)
		}
		return v, nil
	}
	if width, err = parse("w", S.depict.Width); err != nil {
		return
	}
	height, err = parse("h", S.depict.Height)
	return
}

func (S *Server) getDepiction(c *gin.Context) {
	w, h, err := S.size(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	img, err := S.svc.Depiction(c.Request.Context(), c.Param("name"), w, h)
	if err != nil {
		S.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img.PNG)
}

func (S *Server) getStructure(c *gin.Context) {
	st, err := S.svc.Structure(c.Request.Context(), c.Param("name"))
	if err != nil {
		S.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
