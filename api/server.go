package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/miles-app/miles-backend/api/apistrings"
	models "github.com/miles-app/miles-backend/api/models"
	"github.com/miles-app/miles-backend/services/monitoring/logging"
	"github.com/miles-app/miles-backend/services/monitoring/metrics"
	"github.com/miles-app/miles-backend/utils"
	"github.com/sirupsen/logrus"
)

type Server struct {
	router    *gin.Engine
	config    *utils.Config
	logger    *logging.Logger
	collector *metrics.Collector
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	g := gin.New()
	l := logging.NewLogger()
	m := metrics.NewCollector()

	g.Use(CORSMiddleware())
	g.Use(RequestIDMiddleware())
	g.Use(l.LoggingMiddleWare())
	// Panics must still come back as the JSON error shape, details stay in logs
	g.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered interface{}) {
		l.WithField("panic", recovered).Error("Unhandled error during request")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.NewErrorResponse(apistrings.ServerError))
	}))

	return &Server{
		router:    g,
		config:    c,
		logger:    l,
		collector: m,
	}
}

func (s *Server) Start() {

	s.logger.WithFields(logrus.Fields{
		"port":     s.config.ServerPort,
		"env":      s.config.Env,
		"revision": utils.REVISION,
	}).Info("Starting Miles server")

	s.router.GET("/metrics", gin.WrapH(s.collector.Handler()))

	/// Register Object Routers Below
	Verification{}.router(s)

	s.registerStatic()

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}

// registerStatic serves the single page app: index.html at the root and any
// unknown non-API path falls back to the static directory.
func (s *Server) registerStatic() {
	staticDir := s.config.StaticDir

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.File(filepath.Join(staticDir, "index.html"))
	})

	s.router.NoRoute(func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet || strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": "API endpoint not found"})
			return
		}
		ctx.File(filepath.Join(staticDir, filepath.Clean(ctx.Request.URL.Path)))
	})
}
