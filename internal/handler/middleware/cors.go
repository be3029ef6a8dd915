package middleware

import (
	"log/slog"
	"slices"

	"dealer-contracts/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// replayHeader tells back-office clients that a session create was answered from the idempotency store.
const replayHeader = "Idempotent-Replayed"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := cfg.ExposeHeaders
	if !slices.Contains(expose, replayHeader) {
		expose = append(slices.Clone(expose), replayHeader)
	}

	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// credentials never travel with a wildcard origin
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", expose)
	return cors.New(corsCfg)
}
