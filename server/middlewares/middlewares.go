package middlewares

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/socialraccoon/api/utils/dotenv"
	Logger "github.com/socialraccoon/api/utils/log"
)

// Setup initializes gin-wide state needed by the middlewares. Must be called
// before any middleware is used.
func Setup() {
	if os.Getenv("RACCOON_ENV") == dotenv.ProdEnv {
		gin.SetMode(gin.ReleaseMode)
	}
}

// RequestLogger emits one structured log line per handled request with
// method, path, status and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		Logger.Log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request handled")
	}
}
