package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/agent/config"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/agent/webserver"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/agents"
	aicore "github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ai/core"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ai/providers"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/cache"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/history"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/imagegen"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ratelimit"
)

func main() {
	cfg := config.Load()

	client, err := providers.New(aicore.FactoryConfig{
		Provider:        cfg.AI.Provider,
		Model:           cfg.AI.Model,
		SystemPrompt:    cfg.AI.SystemPrompt,
		EnableWebSearch: cfg.AI.EnableWeb,
		GeminiKey:       cfg.AI.GeminiKey,
		OpenAIKey:       cfg.AI.OpenAIKey,
	})
	if err != nil {
		log.Fatalf("ai client: %v", err)
	}

	router := agents.NewRouter(
		agents.TruthGuard(),
		agents.DefaultRegistrations(agents.Capabilities{WebSearch: cfg.AI.EnableWeb}),
	)

	limiter := ratelimit.New(cfg.ChatRateLimit)
	limiter.StartCleanup(10 * time.Minute)

	deps := webserver.Deps{
		Client:  client,
		Images:  imagegen.NewClient(cfg.AI.GeminiKey, ""),
		Router:  router,
		Results: cache.NewResults(cache.MustRedis(cfg.RedisURL), cfg.CacheTTL),
		History: history.NewStore(history.MustMySQL(cfg.MySQLDSN)),
		Limiter: limiter,
	}

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: webserver.New(cfg, deps),
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("TruthGuard agent API listening on %s (provider=%s model=%s)", cfg.Port, cfg.AI.Provider, cfg.AI.Model)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
