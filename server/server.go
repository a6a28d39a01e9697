package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const ShutdownTimeout = 5 * time.Second

// Server owns the bound listener for the lifetime of the process.
type Server struct {
	listener net.Listener
	http     *http.Server
	logger   *zap.Logger
}

// New binds addr right away so that a bind failure surfaces before Run.
func New(addr string, handler http.Handler, logger *zap.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen on %s", addr)
	}

	return &Server{
		listener: listener,
		http:     &http.Server{Handler: handler},
		logger:   logger,
	}, nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Run serves until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.http.Serve(s.listener)
	}()

	s.logger.Info("Serveur en écoute", zap.Stringer("addr", s.Addr()))

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down", zap.Stringer("addr", s.Addr()))
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
