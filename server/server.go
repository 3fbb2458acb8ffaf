package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server exposes game sessions over a JSON HTTP API.
type Server struct {
	echo   *echo.Echo
	store  *store
	logger log.Interface

	seed    uint64
	created uint64 // atomic
}

type Option func(*Server)

func WithLogger(l log.Interface) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithSeed seeds computer players. Each new session gets the next seed.
func WithSeed(seed uint64) Option {
	return func(s *Server) {
		s.seed = seed
	}
}

func New(opts ...Option) *Server {
	s := &Server{
		store:  newStore(),
		logger: log.Log,
	}
	for _, f := range opts {
		f(s)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.Use(middleware.Recover())
	e.Use(s.logRequests)

	e.GET("/games", s.listGames)
	e.POST("/games", s.createGame)
	e.GET("/games/:id", s.getGame)
	e.GET("/games/:id/moves", s.legalMoves)
	e.POST("/games/:id/moves", s.playMove)
	e.POST("/games/:id/resign", s.resign)

	s.echo = e
	return s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.WithField("addr", addr).Info("listening")
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		s.logger.WithFields(log.Fields{
			"method":   c.Request().Method,
			"path":     c.Request().URL.Path,
			"status":   c.Response().Status,
			"duration": time.Since(start),
		}).Debug("request")
		return nil
	}
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
