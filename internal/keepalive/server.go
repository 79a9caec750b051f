package keepalive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/set-night/vetbot/internal/config"
)

const (
	cronPingMessage = "cron job successfull"
	cronPingBody    = "OK: Logged 'cron job successfull'"
)

// Handler serves the keep-warm endpoints.
type Handler struct {
	logger      *slog.Logger
	redirectURL string
}

func NewHandler(log *slog.Logger, redirectURL string) *Handler {
	return &Handler{
		logger:      log.With(slog.String("handler", "keepalive")),
		redirectURL: redirectURL,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Home)
	e.GET("/cron-ping", h.CronPing)
}

// Home redirects to the project page.
func (h *Handler) Home(c echo.Context) error {
	h.logger.Info("redirecting user", "url", h.redirectURL)
	return c.Redirect(http.StatusFound, h.redirectURL)
}

// CronPing is hit by external uptime pingers.
func (h *Handler) CronPing(c echo.Context) error {
	h.logger.Info(cronPingMessage)
	return c.String(http.StatusOK, cronPingBody)
}

type Server struct {
	echo *echo.Echo
	addr string
}

func NewServer(cfg config.ServerConfig, handler *Handler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	handler.Register(e)

	return &Server{echo: e, addr: cfg.Addr}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.echo }

// Run serves until ctx is cancelled, then shuts down gracefully. The
// listener is bound synchronously and always closed before Run returns.
func (s *Server) Run(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.echo.Listener = ln
	slog.Info("keepalive server listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			_ = ln.Close()
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	err = s.echo.Shutdown(shutdownCtx)
	// Shutdown only closes listeners the serve loop has picked up.
	_ = ln.Close()
	if err != nil {
		return err
	}
	slog.Info("keepalive server stopped")
	return nil
}
