package webserver

import (
	"html"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/agents"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/ai/core"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/cache"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/extract"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/logging"
)

type VerifyRequest struct {
	Claim          string `json:"claim"`
	ImageRequested bool   `json:"image_requested"`
	Language       string `json:"language"`
}

type Verify struct {
	deps      Deps
	profile   agents.Profile
	sanitizer *bluemonday.Policy
}

func NewVerify(deps Deps) Verify {
	return Verify{
		deps:      deps,
		profile:   agents.Verification(),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// sanitize strips any markup from user-submitted text before it is embedded
// into a prompt or echoed back.
func (h Verify) sanitize(s string) string {
	return html.UnescapeString(h.sanitizer.Sanitize(s))
}

func (h Verify) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.Language == "" {
		req.Language = "English"
	}
	// An empty claim is accepted; the agent judges it UNVERIFIED/INCOMPLETE.
	claim := h.sanitize(req.Claim)
	ctx := c.Request.Context()

	key := cache.Key(claim, req.Language)
	if res, ok := h.deps.Results.Get(ctx, key); ok {
		c.JSON(http.StatusOK, res)
		return
	}

	prompt := agents.BuildVerifyPrompt(claim, req.ImageRequested, req.Language)
	final, err := h.deps.Client.Respond(ctx, prompt, core.Options{
		SystemPrompt:    h.profile.SystemPrompt,
		EnableWebSearch: h.profile.WebSearch,
	})
	if err != nil {
		log.Printf("verify: agent invocation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "agent invocation failed: " + err.Error()})
		return
	}

	res, err := extract.Verification(final)
	if err != nil {
		log.Printf("verify: extraction failed: %v (output: %s)", err, logging.Truncate(final, 300))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not parse agent output: " + err.Error()})
		return
	}
	if res.Input.OriginalText == "" {
		res.Input.OriginalText = claim
	}
	if res.Input.Language == "" {
		res.Input.Language = req.Language
	}

	// One synchronous side-effect call; its failure never fails the verdict.
	if prompt := res.ImageGeneration.ImagePrompt; prompt != "" && h.deps.Images != nil {
		img, imgErr := h.deps.Images.Generate(ctx, prompt)
		if imgErr != nil {
			log.Printf("verify: image generation failed for %s: %v", res.ClaimID, imgErr)
		} else {
			res.ImageGeneration.GeneratedImageBase64 = img
		}
	}

	h.deps.Results.Put(ctx, key, res)
	h.deps.History.Append(ctx, res)

	c.JSON(http.StatusOK, res)
}
