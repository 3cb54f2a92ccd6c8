package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/hamzemohamed32/codementor/internal/profile"
	"github.com/hamzemohamed32/codementor/plugin/ai"
	apiv1 "github.com/hamzemohamed32/codementor/server/router/api/v1"
	"github.com/hamzemohamed32/codementor/store"
)

type Server struct {
	Profile *profile.Profile
	Store   *store.Store

	echoServer   *echo.Echo
	apiV1Service *apiv1.APIV1Service
}

func NewServer(profile *profile.Profile, st *store.Store, gateway *ai.Gateway) (*Server, error) {
	if profile.Secret == "" {
		return nil, errors.New("server secret is required")
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true

	echoServer.Use(echomw.Recover())
	echoServer.Use(echomw.CORS())
	echoServer.Use(echomw.TimeoutWithConfig(echomw.TimeoutConfig{
		Timeout:      2 * time.Minute,
		ErrorMessage: "request timeout",
	}))

	echoServer.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "Service ready.")
	})

	s := &Server{
		Profile:    profile,
		Store:      st,
		echoServer: echoServer,
	}
	s.apiV1Service = apiv1.NewAPIV1Service(profile.Secret, profile, st, gateway)
	s.apiV1Service.RegisterRoutes(echoServer)

	return s, nil
}

func (s *Server) Start(_ context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("server listening", slog.String("address", address), slog.String("mode", s.Profile.Mode))
	if err := s.echoServer.Start(address); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "failed to start echo server")
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shut down server", slog.String("error", err.Error()))
	}
	if err := s.Store.Close(); err != nil {
		slog.Error("failed to close store", slog.String("error", err.Error()))
	}
	slog.Info("server stopped")
}
