package web

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func getLoggerMiddleware(log *zap.Logger, prod bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(correlationId, uuid.New().String())
		start := time.Now()
		c.Next()
		latency := time.Since(start).Milliseconds()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		if !prod {
			log.Sugar().Infof("forecast | %d | %s | %s | %dms", c.Writer.Status(), c.Request.Method, path, latency)
			return
		}

		log.Info("request to forecast api",
			zap.String(correlationId, c.GetString(correlationId)),
			zap.Int("code", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int64("latencyInMs", latency),
		)
	}
}
