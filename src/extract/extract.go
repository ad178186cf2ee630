// Package extract recovers validated result objects from free-form model
// output. The agent is instructed to emit pure JSON but cannot be trusted to
// comply: replies arrive wrapped in markdown fences, padded with commentary,
// or occasionally with no JSON at all. This package is the only defense layer
// between generation and the typed contract.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/schema"
)

// Clean strips one leading fenced-block opener (with or without a language
// tag) and one trailing closer, then trims whitespace. Applying it to already
// clean text is a no-op.
func Clean(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = text[3:]
		if nl := strings.IndexByte(text, '\n'); nl >= 0 {
			// Drop a language tag such as "json" on the fence line.
			if tag := strings.TrimSpace(text[:nl]); tag == "" || isFenceTag(tag) {
				text = text[nl+1:]
			}
		}
	}
	if strings.HasSuffix(strings.TrimSpace(text), "```") {
		trimmed := strings.TrimSpace(text)
		text = trimmed[:len(trimmed)-3]
	}
	return strings.TrimSpace(text)
}

func isFenceTag(tag string) bool {
	if len(tag) > 16 {
		return false
	}
	for _, r := range tag {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// locate finds the first '{' and last '}' and returns the inclusive span.
func locate(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// decode tries a direct parse of cleaned text, then the located {...} span.
func decode(cleaned string, dst interface{}) error {
	if cleaned == "" {
		return ErrEmptyOutput
	}
	if err := json.Unmarshal([]byte(cleaned), dst); err == nil {
		return nil
	}
	span, ok := locate(cleaned)
	if !ok {
		return fmt.Errorf("%w: no JSON object found in output", ErrMalformedJSON)
	}
	if err := json.Unmarshal([]byte(span), dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return nil
}

// Verification runs the strict extraction path. Any failure to locate, parse,
// or validate is a hard error; a degraded guess is never acceptable for the
// highly structured verification contract.
func Verification(raw string) (*schema.VerificationResult, error) {
	var out schema.VerificationResult
	if err := decode(Clean(raw), &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	out.ApplyDefaults()
	return &out, nil
}

// Chat runs the lenient extraction path. Chat must always answer something:
// when no valid object can be recovered the raw text becomes the response
// with an UNCERTAIN assessment and no image prompt.
func Chat(raw string) *schema.ChatResult {
	var out schema.ChatResult
	if err := decode(Clean(raw), &out); err != nil {
		return degraded(raw)
	}
	if err := out.Validate(); err != nil {
		return degraded(raw)
	}
	return &out
}

func degraded(raw string) *schema.ChatResult {
	return &schema.ChatResult{
		Response:   raw,
		Assessment: schema.AssessmentUncertain,
	}
}
