package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-task-scheduler/internal/middleware"
	scheduleHTTP "personal-task-scheduler/internal/schedule/delivery/http"
	tgDelivery "personal-task-scheduler/internal/schedule/delivery/telegram"
	pkgLog "personal-task-scheduler/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	middleware middleware.Middleware

	scheduleHandler scheduleHTTP.Handler
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	ScheduleHandler scheduleHTTP.Handler
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      cfg.Middleware,
		scheduleHandler: cfg.ScheduleHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scheduleHandler == nil {
		return errors.New("schedule handler is required")
	}
	return nil
}
