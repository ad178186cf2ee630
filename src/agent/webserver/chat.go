package webserver

import (
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ai/core"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/extract"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/schema"
)

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Language  string `json:"language"`
	AgentName string `json:"agent_name"`
}

// streamEvent is one newline-delimited JSON line of the chat stream. A stream
// is zero or more log events followed by exactly one result or error event.
type streamEvent struct {
	Type    string             `json:"type"`
	Message string             `json:"message,omitempty"`
	Data    *schema.ChatResult `json:"data,omitempty"`
}

type Chat struct {
	deps      Deps
	sanitizer *bluemonday.Policy
}

func NewChat(deps Deps) Chat {
	return Chat{deps: deps, sanitizer: bluemonday.StrictPolicy()}
}

func (h Chat) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.SessionID == "" {
		req.SessionID = "default_session"
	}
	if req.Language == "" {
		req.Language = "English"
	}

	c.Header("Content-Type", "application/x-ndjson")
	c.Header("Cache-Control", "no-cache")
	w := c.Writer
	enc := json.NewEncoder(w)
	emit := func(ev streamEvent) {
		// Encoder already appends the newline delimiter.
		if err := enc.Encode(ev); err != nil {
			return
		}
		w.Flush()
	}

	if h.deps.Limiter != nil && !h.deps.Limiter.Allow(req.SessionID) {
		wait := h.deps.Limiter.Wait(req.SessionID)
		emit(streamEvent{Type: "error", Message: fmt.Sprintf("rate limited, retry in %s", wait.Round(time.Millisecond))})
		return
	}

	profile := h.deps.Router.Resolve(req.AgentName)
	message := html.UnescapeString(h.sanitizer.Sanitize(req.Message))
	prompt := profile.BuildPrompt(message, req.Language)

	final, err := h.deps.Client.Stream(c.Request.Context(), prompt, func(ev core.Event) {
		emit(streamEvent{Type: "log", Message: profile.ClassifyEvent(ev.Text)})
	}, core.Options{
		SystemPrompt:    profile.SystemPrompt,
		EnableWebSearch: profile.WebSearch,
	})
	if err != nil {
		log.Printf("chat: %s turn failed for session %s: %v", profile.Name, req.SessionID, err)
		emit(streamEvent{Type: "error", Message: err.Error()})
		return
	}

	emit(streamEvent{Type: "result", Data: extract.Chat(final)})
}
