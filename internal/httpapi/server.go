package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kamrah334/FreeSEOToolkit/internal/config"
	"github.com/kamrah334/FreeSEOToolkit/internal/density"
	"github.com/kamrah334/FreeSEOToolkit/internal/detect"
)

// Server wires the analysis engines to their HTTP contracts. The engines are
// pure and stateless, so one Server instance serves any number of concurrent
// requests without coordination.
type Server struct {
	cfg      config.Config
	engine   density.Engine
	detector *detect.Detector
	log      *slog.Logger
}

func New(cfg config.Config, engine density.Engine, detector *detect.Detector, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{cfg: cfg, engine: engine, detector: detector, log: log}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:  s.cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"service": "seo-toolkit",
		})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/density", s.handleDensity)
		api.POST("/detect", s.handleDetect)
	}

	return router
}
