package webserver

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/gateway/config"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/gateway/proxy"
)

func New(cfg config.Config, pc *proxy.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	attachRoutes(r, cfg, pc)
	return r
}

func attachRoutes(r *gin.Engine, cfg config.Config, pc *proxy.Client) {
	r.Use(corsMiddleware(cfg.AllowOrigins))

	h := NewHandlers(cfg, pc)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "TruthGuard AI API Gateway",
			"version": "1.0.0",
			"status":  "operational",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/verify", h.Verify)
		v1.POST("/research", h.Research)
		v1.POST("/safety-check", h.SafetyCheck)
		v1.POST("/antigravity/verify", h.AgentVerify)
	}
}

func corsMiddleware(origins string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if origins == "" || origins == "*" {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = strings.Split(origins, ",")
		conf.AllowCredentials = true
	}
	return cors.New(conf)
}
