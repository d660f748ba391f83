package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows every origin unless origins is non-empty. Preflights answer 200.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:              []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders:             []string{RequestIDHeader},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
