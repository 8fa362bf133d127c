package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"directory-server/logger"

	"github.com/gorilla/mux"
)

type DirectoryHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	addr            string
	shutdownTimeout time.Duration
	log             *slog.Logger
}

func NewDirectoryHttpServer(router *Router, muxRouter *mux.Router, addr string, shutdownTimeout time.Duration, log *slog.Logger) *DirectoryHttpServer {
	return &DirectoryHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		log:             logger.Component(log, "DirectoryHttpServer"),
	}
}

// Start registers the routes and serves until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *DirectoryHttpServer) Start(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting server", slog.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ListenAndServe(): %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.log.Info("server exiting")
	return nil
}
