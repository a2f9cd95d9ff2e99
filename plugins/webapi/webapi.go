package webapi

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/labstack/echo"
)

// region Server ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Server owns the echo engine that exposes the vault and registry endpoints.
type Server struct {
	engine *echo.Echo
	log    *logger.Logger
}

// NewServer creates a new web API Server.
func NewServer(log *logger.Logger) (server *Server) {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true

	return &Server{
		engine: engine,
		log:    log,
	}
}

// Engine returns the underlying echo engine, so that endpoints can register their routes on it.
func (s *Server) Engine() *echo.Echo {
	return s.engine
}

// Start serves the registered routes on the given bind address until Shutdown is called.
func (s *Server) Start(bindAddr string) (err error) {
	s.log.Infof("Starting web API server: http://%s ...", bindAddr)
	if err = s.engine.Start(bindAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve web API")
	}

	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) (err error) {
	s.log.Info("Stopping web API server ...")
	if err = s.engine.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "failed to stop web API server")
	}
	s.log.Info("Stopping web API server ... done")

	return nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
