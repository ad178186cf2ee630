package schema

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the closed-set outcome of a claim verification.
type Verdict string

const (
	VerdictTrue       Verdict = "TRUE"
	VerdictFalse      Verdict = "FALSE"
	VerdictMisleading Verdict = "MISLEADING"
	VerdictUnverified Verdict = "UNVERIFIED"
	VerdictIncomplete Verdict = "INCOMPLETE"
)

// Assessment classifies a chat turn.
type Assessment string

const (
	AssessmentNecessary      Assessment = "NECESSARY"
	AssessmentMissingContext Assessment = "MISSING_CONTEXT"
	AssessmentCorrect        Assessment = "CORRECT"
	AssessmentUncertain      Assessment = "UNCERTAIN"
	AssessmentOffTopic       Assessment = "OFF_TOPIC"
)

const (
	defaultImageSize  = 800
	defaultImageStyle = "flat infographic, bold verdict badge"
)

// Input echoes the submitted claim back to the caller.
type Input struct {
	OriginalText string `json:"original_text"`
	Language     string `json:"language"`
	SourceURL    string `json:"source_url,omitempty"`
}

// Scores carries independent supporting/refuting weights; they need not sum to 1.
type Scores struct {
	SupportingScore float64 `json:"supporting_score"`
	RefutingScore   float64 `json:"refuting_score"`
}

// EvidenceItem is one cited source passage.
type EvidenceItem struct {
	Title   string `json:"title"`
	Org     string `json:"org"`
	URL     string `json:"url"`
	Date    string `json:"date,omitempty"`
	Extract string `json:"extract"`
}

type Explanation struct {
	PublicSummary string `json:"public_summary"`
	TechnicalNote string `json:"technical_note"`
}

// ImageGeneration carries the poster request and, when generated, the payload.
type ImageGeneration struct {
	Requested            bool   `json:"requested"`
	ImagePrompt          string `json:"image_prompt,omitempty"`
	GeneratedImageBase64 string `json:"generated_image_base64,omitempty"`
	Width                int    `json:"width"`
	Height               int    `json:"height"`
	Style                string `json:"style"`
}

// VerificationResult is the full structured verdict for one claim.
type VerificationResult struct {
	ClaimID            string          `json:"claim_id"`
	TimestampUTC       string          `json:"timestamp_utc"`
	Input              Input           `json:"input"`
	NormalizedClaim    string          `json:"normalized_claim"`
	Verdict            Verdict         `json:"verdict"`
	Confidence         float64         `json:"confidence"`
	Scores             Scores          `json:"scores"`
	Evidence           []EvidenceItem  `json:"evidence"`
	Explanation        Explanation     `json:"explanation"`
	RecommendedActions []string        `json:"recommended_actions"`
	ImageGeneration    ImageGeneration `json:"image_generation"`
	SourcesChecked     []string        `json:"sources_checked"`
	Notes              string          `json:"notes,omitempty"`
}

// ChatResult is the structured reply for one chat turn.
type ChatResult struct {
	Response    string     `json:"response"`
	Assessment  Assessment `json:"assessment"`
	ImagePrompt string     `json:"image_prompt,omitempty"`
}

// ApplyDefaults fills identity and image defaults the agent may omit.
func (r *VerificationResult) ApplyDefaults() {
	if r.ClaimID == "" {
		r.ClaimID = uuid.NewString()
	}
	if r.TimestampUTC == "" {
		r.TimestampUTC = time.Now().UTC().Format(time.RFC3339)
	}
	if r.ImageGeneration.Width == 0 {
		r.ImageGeneration.Width = defaultImageSize
	}
	if r.ImageGeneration.Height == 0 {
		r.ImageGeneration.Height = defaultImageSize
	}
	if r.ImageGeneration.Style == "" {
		r.ImageGeneration.Style = defaultImageStyle
	}
}
