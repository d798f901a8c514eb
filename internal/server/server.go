/*
 * server.go, part of chemdex.
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

//Package server is the HTTP face of chemdex: the catalog, the substance
//profiles and depictions, and navigation sessions, served with gin.
//
//	GET  /healthz
//	GET  /metrics
//	GET  /api/substances
//	GET  /api/substances/:name
//	GET  /api/substances/:name/depiction.png?w=400&h=300
//	GET  /api/substances/:name/structure
//	POST /api/sessions
//	GET  /api/sessions/:id
//	POST /api/sessions/:id/select   {"name": "Morphine"}
//	POST /api/sessions/:id/back
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rmera/chemdex/internal/config"
	"github.com/rmera/chemdex/internal/logging"
	"github.com/rmera/chemdex/profile"
)

//shutdownTimeout is how long Run waits for open requests once its context is done.
const shutdownTimeout = 10 * time.Second

//Server serves a profile.Service over HTTP.
type Server struct {
	svc      *profile.Service
	sessions *cache.Cache
	gatherer prometheus.Gatherer
	cfg      config.ServerConfig
	depict   config.DepictConfig
	log      logging.Logger
	engine   *gin.Engine
}

//New returns a server for svc. Metrics are served from gatherer, if it is not nil.
func New(svc *profile.Service, gatherer prometheus.Gatherer, cfg *config.Config, log logging.Logger) *Server {
	if log == nil {
		log = logging.NewNopLogger()
	}
	gin.SetMode(cfg.Server.Mode)
	S := &Server{
		svc:      svc,
		sessions: cache.New(cfg.Server.SessionTTL, cfg.Server.SessionTTL),
		gatherer: gatherer,
		cfg:      cfg.Server,
		depict:   cfg.Depict,
		log:      log.Named("server"),
	}
	S.engine = gin.New()
	S.engine.Use(gin.Recovery(), S.requestLogger())
	S.routes()
	return S
}

func (S *Server) routes() {
	e := S.engine
	e.GET("/healthz", S.health)
	if S.gatherer != nil {
		e.GET("/metrics", gin.WrapH(promhttp.HandlerFor(S.gatherer, promhttp.HandlerOpts{
			ErrorHandling: promhttp.ContinueOnError,
		})))
	}
	api := e.Group("/api")
	subs := api.Group("/substances")
	subs.GET("", S.listSubstances)
	subs.GET("/:name", S.getProfile)
	subs.GET("/:name/depiction.png", S.getDepiction)
	subs.GET("/:name/structure", S.getStructure)

	sess := api.Group("/sessions")
	sess.POST("", S.newSession)
	sess.GET("/:id", S.getSession)
	sess.POST("/:id/select", S.selectSubstance)
	sess.POST("/:id/back", S.back)
}

//Handler returns the http.Handler with all the routes.
func (S *Server) Handler() http.Handler {
	return S.engine
}

//Run serves on the configured address until ctx is done, and then
//shuts the server down, waiting a while for open requests.
func (S *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              S.cfg.Addr,
		Handler:           S.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		S.log.Info("listening", logging.String("addr", S.cfg.Addr))
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	S.log.Info("shutting down")
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (S *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", path),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logging.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			S.log.Error("request", fields...)
			return
		}
		S.log.Debug("request", fields...)
	}
}

func (S *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "substances": S.svc.Catalog().Len()})
}
