/*
 * sessions.go, part of chemdex.
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
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rmera/chemdex/internal/logging"
	"github.com/rmera/chemdex/navigation"
	"github.com/rmera/chemdex/profile"
)

//session is one client's walk through the catalog. Controllers are not
//safe for concurrent use, so requests on the same session are serialized.
type session struct {
	mu  sync.Mutex
	nav *navigation.Controller
}

//sessionView is what clients get back from the session endpoints.
type sessionView struct {
	ID         string           `json:"id"`
	State      string           `json:"state"`
	Substance  string           `json:"substance,omitempty"`
	Substances []string         `json:"substances,omitempty"` //in the list view
	Profile    *profile.Profile `json:"profile,omitempty"`    //in the detail view
}

type selectRequest struct {
	Name string `json:"name" binding:"required"`
}

//session returns the session with the id in the path, renewing its expiration.
//If there is no such session, it answers 404 and returns nil.
func (S *Server) session(c *gin.Context) (string, *session) {
	id := c.Param("id")
	v, ok := S.sessions.Get(id)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "no session " + id})
		return id, nil
	}
	S.sessions.Set(id, v, cache.DefaultExpiration)
	return id, v.(*session)
}

//view describes the current state of s. The caller must hold s.mu.
func (S *Server) view(c *gin.Context, id string, s *session) (*sessionView, error) {
	v := &sessionView{ID: id}
	switch st := s.nav.State().(type) {
	case navigation.ListView:
		v.State = "list"
		v.Substances = S.svc.Catalog().ListNames()
	case navigation.DetailView:
		v.State = "detail"
		v.Substance = st.Name
		p, err := S.svc.Profile(c.Request.Context(), st.Name)
		if err != nil {
			return nil, err
		}
		v.Profile = p
	}
	return v, nil
}

func (S *Server) respond(c *gin.Context, code int, id string, s *session) {
	v, err := S.view(c, id, s)
	if err != nil {
		S.fail(c, err)
		return
	}
	c.JSON(code, v)
}

func (S *Server) newSession(c *gin.Context) {
	id := uuid.New().String()
	s := &session{nav: navigation.New(S.svc.Catalog())}
	S.sessions.Set(id, s, cache.DefaultExpiration)
	S.log.Debug("session created", logging.String("session", id))
	s.mu.Lock()
	defer s.mu.Unlock()
	S.respond(c, http.StatusCreated, id, s)
}

func (S *Server) getSession(c *gin.Context) {
	id, s := S.session(c)
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	S.respond(c, http.StatusOK, id, s)
}

func (S *Server) selectSubstance(c *gin.Context) {
	id, s := S.session(c)
	if s == nil {
		return
	}
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.nav.Select(req.Name); err != nil {
		S.fail(c, err)
		return
	}
	S.respond(c, http.StatusOK, id, s)
}

func (S *Server) back(c *gin.Context) {
	id, s := S.session(c)
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.nav.Back(); err != nil {
		S.fail(c, err)
		return
	}
	S.respond(c, http.StatusOK, id, s)
}
