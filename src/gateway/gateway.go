package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/gateway/config"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/gateway/proxy"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/gateway/webserver"
)

func main() {
	cfg := config.Load()

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: webserver.New(cfg, proxy.New()),
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("TruthGuard API gateway listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
