package webserver

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/agent/config"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/agents"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ai/core"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/cache"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/history"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/imagegen"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ratelimit"
)

// Deps are the collaborators the handlers need. Everything is an interface or
// nil-safe wrapper so tests can swap in fakes.
type Deps struct {
	Client  core.Client
	Images  imagegen.Generator
	Router  *agents.Router
	Results *cache.Results
	History *history.Store
	Limiter *ratelimit.Limiter
}

func New(cfg config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	attachRoutes(r, cfg, deps)
	return r
}

func attachRoutes(r *gin.Engine, cfg config.Config, deps Deps) {
	r.Use(corsMiddleware(cfg.AllowOrigins))

	verifyH := NewVerify(deps)
	chatH := NewChat(deps)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "TruthGuard Agent API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.POST("/verify", verifyH.Verify)
	r.POST("/chat", chatH.Chat)
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
