package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/hellodexcom/greeter/current"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// DefaultListenAddress is used when Config.ListenAddress is empty.
const DefaultListenAddress = ":5000"

type Config struct {
	ListenAddress string

	// Logger receives readiness and access log lines. When nil the logger from package current is used.
	Logger *zerolog.Logger
}

// Server is the greeter HTTP service. It is exported so a harness can drive Handler directly instead of going through
// a socket.
type Server struct {
	log        zerolog.Logger
	router     chi.Router
	httpServer *http.Server
}

func New(config *Config) *Server {
	addr := config.ListenAddress
	if addr == "" {
		addr = DefaultListenAddress
	}

	log := config.Logger
	if log == nil {
		log = current.Logger(context.Background())
	}

	s := &Server{
		log:    *log,
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)

	s.router.Use(hlog.NewHandler(s.log))
	s.router.Use(hlog.RequestIDHandler("request_id", "x-request-id"))
	s.router.Use(hlog.MethodHandler("method"))
	s.router.Use(hlog.URLHandler("url"))
	s.router.Use(hlog.RemoteAddrHandler("remote_ip"))
	s.router.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("HTTP request")
	}))

	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.GetHead)

	s.router.Get("/", greet)

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// ListenAndServe binds Addr and serves until the listener fails. It never returns nil.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}

	return s.Serve(ln)
}

// Serve accepts connections on ln. It returns when ln is closed or fails.
func (s *Server) Serve(ln net.Listener) error {
	s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")
	return s.httpServer.Serve(ln)
}

// Serve starts a Server for config and blocks until it fails. It always returns a non-nil error, e.g. when
// config.ListenAddress cannot be bound.
func Serve(config *Config) error {
	s := New(config)
	err := s.ListenAndServe()
	if err != nil {
		return fmt.Errorf("could not start HTTP server on %s: %w", s.Addr(), err)
	}
	return nil
}
