package webserver

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/gateway/config"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/gateway/proxy"
)

const (
	auditorTimeout  = 30 * time.Second
	safetyTimeout   = 30 * time.Second
	researchTimeout = 60 * time.Second
	agentTimeout    = 60 * time.Second
)

type Handlers struct {
	cfg config.Config
	pc  *proxy.Client
}

func NewHandlers(cfg config.Config, pc *proxy.Client) Handlers {
	return Handlers{cfg: cfg, pc: pc}
}

func (h Handlers) fail(c *gin.Context, err error) {
	log.Printf("gateway: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}

// Verify forwards a simple claim check to the LLM auditor service.
func (h Handlers) Verify(c *gin.Context) {
	var req struct {
		ClaimText string `json:"claim_text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	raw, err := h.pc.PostJSON(c.Request.Context(), "LLM Auditor", h.cfg.AuditorURL, "/verify",
		gin.H{"claim": req.ClaimText}, auditorTimeout)
	if err != nil {
		h.fail(c, err)
		return
	}

	var down struct {
		IsTrue      bool     `json:"is_true"`
		Summary     string   `json:"summary"`
		Explanation string   `json:"explanation"`
		Sources     []string `json:"sources"`
		Confidence  float64  `json:"confidence"`
	}
	if err := json.Unmarshal(raw, &down); err != nil {
		h.fail(c, &proxy.DownstreamError{Service: "LLM Auditor", Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"is_true":              down.IsTrue,
		"summary":              down.Summary,
		"detailed_explanation": down.Explanation,
		"sources":              emptyIfNil(down.Sources),
		"confidence":           down.Confidence,
	})
}

// Research forwards a research query to the deep-search service.
func (h Handlers) Research(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
		Depth string `json:"depth"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.Depth == "" {
		req.Depth = "standard"
	}

	raw, err := h.pc.PostJSON(c.Request.Context(), "Deep Search", h.cfg.ResearchURL, "/research",
		gin.H{"query": req.Query, "depth": req.Depth}, researchTimeout)
	if err != nil {
		h.fail(c, err)
		return
	}

	var down struct {
		Summary  string                   `json:"summary"`
		Findings []map[string]interface{} `json:"findings"`
		Sources  []string                 `json:"sources"`
	}
	if err := json.Unmarshal(raw, &down); err != nil {
		h.fail(c, &proxy.DownstreamError{Service: "Deep Search", Err: err})
		return
	}
	if down.Findings == nil {
		down.Findings = []map[string]interface{}{}
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":  down.Summary,
		"findings": down.Findings,
		"sources":  emptyIfNil(down.Sources),
	})
}

// SafetyCheck forwards content to the safety-plugins service.
func (h Handlers) SafetyCheck(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	raw, err := h.pc.PostJSON(c.Request.Context(), "Safety Plugins", h.cfg.SafetyURL, "/check",
		gin.H{"content": req.Content}, safetyTimeout)
	if err != nil {
		h.fail(c, err)
		return
	}

	var down struct {
		IsSafe      bool     `json:"is_safe"`
		RiskScore   float64  `json:"risk_score"`
		Flags       []string `json:"flags"`
		Explanation string   `json:"explanation"`
	}
	if err := json.Unmarshal(raw, &down); err != nil {
		h.fail(c, &proxy.DownstreamError{Service: "Safety Plugins", Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"is_safe":     down.IsSafe,
		"risk_score":  down.RiskScore,
		"flags":       emptyIfNil(down.Flags),
		"explanation": down.Explanation,
	})
}

// AgentVerify forwards the full structured verification to the TruthGuard
// agent service and passes its result through untouched.
func (h Handlers) AgentVerify(c *gin.Context) {
	var req struct {
		Claim          string `json:"claim" binding:"required"`
		ImageRequested bool   `json:"image_requested"`
		Language       string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.Language == "" {
		req.Language = "English"
	}

	raw, err := h.pc.PostJSON(c.Request.Context(), "TruthGuard Agent", h.cfg.AgentURL, "/verify",
		req, agentTimeout)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
