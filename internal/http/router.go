package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteInfo describe una ruta registrada, para el índice de GET /.
type RouteInfo struct {
	Path    string   `json:"path"`
	Methods []string `json:"methods"`
}

// routeIndex se escribe a mano y debe mantenerse en sincronía con NewRouter.
var routeIndex = []RouteInfo{
	{Path: "/", Methods: []string{"GET"}},
	{Path: "/thoughts", Methods: []string{"GET", "POST"}},
	{Path: "/thoughts/:id/like", Methods: []string{"PUT"}},
}

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(logger *zap.Logger, thoughtH *ThoughtHandler) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, CORS abierto y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(), jsonContentTypeMiddleware())

	r.GET("/", describeRoutes)
	r.GET("/thoughts", thoughtH.ListThoughts)
	r.POST("/thoughts", thoughtH.CreateThought)
	r.PUT("/thoughts/:id/like", thoughtH.LikeThought)

	return r
}

// describeRoutes maneja GET /: devuelve el índice estático de rutas.
func describeRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, routeIndex)
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// corsMiddleware habilita CORS para cualquier origen.
func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	return cors.New(cfg)
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
