// Command agent-smoketest runs one live agent turn against the configured
// model provider and prints the structured result. It exists to validate
// credentials, model names, and the output contract end to end without
// standing up the HTTP services.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/agents"
	aicore "github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ai/core"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ai/providers"
	sharedconfig "github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/config"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/extract"
)

const (
	defaultClaim   = "Drinking two liters of water per day cures seasonal influenza."
	defaultMessage = "Is it true that vitamin C prevents the common cold?"
)

var (
	modeFlag     = flag.String("mode", "verify", "verify|chat")
	claimFlag    = flag.String("claim", defaultClaim, "Claim text for verify mode")
	messageFlag  = flag.String("message", defaultMessage, "User message for chat mode")
	agentFlag    = flag.String("agent", "TruthGuard", "Agent name for chat mode")
	languageFlag = flag.String("language", "English", "Response language")
	imageFlag    = flag.Bool("image", false, "Request a poster image prompt")
	modelFlag    = flag.String("model", "", "Override model name")
	timeoutFlag  = flag.Duration("timeout", 90*time.Second, "Turn timeout")
	maxLenFlag   = flag.Int("max-bytes", 2000, "Maximum bytes of raw output to print (0=unlimited)")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	mode, err := parseMode(*modeFlag)
	if err != nil {
		log.Fatalf("invalid mode: %v", err)
	}

	aiEnv := sharedconfig.LoadAIFromEnv()
	client, err := providers.New(aicore.FactoryConfig{
		Provider:        aiEnv.Provider,
		Model:           pickFirst(*modelFlag, aiEnv.Model),
		EnableWebSearch: aiEnv.EnableWeb,
		GeminiKey:       aiEnv.GeminiKey,
		OpenAIKey:       aiEnv.OpenAIKey,
	})
	if err != nil {
		log.Fatalf("client init: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	switch mode {
	case modeVerify:
		runVerify(ctx, client, aiEnv)
	case modeChat:
		runChat(ctx, client, aiEnv)
	}
}

type runMode int

const (
	modeVerify runMode = iota
	modeChat
)

func runVerify(ctx context.Context, client aicore.Client, aiEnv sharedconfig.AI) {
	profile := agents.Verification()
	start := time.Now()
	raw, err := client.Respond(ctx, agents.BuildVerifyPrompt(*claimFlag, *imageFlag, *languageFlag), aicore.Options{
		SystemPrompt:    profile.SystemPrompt,
		EnableWebSearch: profile.WebSearch && aiEnv.EnableWeb,
	})
	if err != nil {
		log.Fatalf("verify turn: %v", err)
	}
	fmt.Printf("turn completed in %.1fs\n", time.Since(start).Seconds())
	fmt.Printf("raw output:\n%s\n\n", truncate(raw, *maxLenFlag))

	res, err := extract.Verification(raw)
	if err != nil {
		log.Fatalf("extraction: %v", err)
	}
	pretty, _ := json.MarshalIndent(res, "", "  ")
	fmt.Printf("verdict=%s confidence=%.2f claim_id=%s\n%s\n", res.Verdict, res.Confidence, res.ClaimID, pretty)
}

func runChat(ctx context.Context, client aicore.Client, aiEnv sharedconfig.AI) {
	router := agents.NewRouter(
		agents.TruthGuard(),
		agents.DefaultRegistrations(agents.Capabilities{WebSearch: aiEnv.EnableWeb}),
	)
	profile := router.Resolve(*agentFlag)

	start := time.Now()
	events := 0
	raw, err := client.Stream(ctx, profile.BuildPrompt(*messageFlag, *languageFlag), func(ev aicore.Event) {
		events++
		fmt.Printf("[log] %s\n", profile.ClassifyEvent(ev.Text))
	}, aicore.Options{
		SystemPrompt:    profile.SystemPrompt,
		EnableWebSearch: profile.WebSearch && aiEnv.EnableWeb,
	})
	if err != nil {
		log.Fatalf("chat turn: %v", err)
	}
	fmt.Printf("turn completed in %.1fs (%d events, agent=%s)\n", time.Since(start).Seconds(), events, profile.Name)

	res := extract.Chat(raw)
	pretty, _ := json.MarshalIndent(res, "", "  ")
	fmt.Printf("%s\n", pretty)
}

func parseMode(input string) (runMode, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "verify":
		return modeVerify, nil
	case "chat":
		return modeChat, nil
	default:
		return modeVerify, errors.New("expected verify or chat")
	}
}

func pickFirst(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[:limit]) + "...(truncated)"
}
