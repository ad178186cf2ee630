package schema

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResult() VerificationResult {
	return VerificationResult{
		ClaimID:      "abc",
		TimestampUTC: "2025-06-01T12:00:00Z",
		Input:        Input{OriginalText: "claim", Language: "English"},
		Verdict:      VerdictTrue,
		Confidence:   0.9,
		Scores:       Scores{SupportingScore: 0.9, RefutingScore: 0.05},
		Evidence: []EvidenceItem{
			{Title: "t", Org: "WHO", URL: "https://who.int/x", Extract: "e"},
		},
		RecommendedActions: []string{"a", "b"},
	}
}

func TestValidateAcceptsAllVerdicts(t *testing.T) {
	for _, v := range []Verdict{VerdictTrue, VerdictFalse, VerdictMisleading, VerdictUnverified, VerdictIncomplete} {
		res := validResult()
		res.Verdict = v
		assert.NoError(t, res.Validate(), string(v))
	}
}

func TestValidateRejectsVerdict(t *testing.T) {
	res := validResult()
	res.Verdict = "PROBABLY"
	err := res.Validate()
	var sv *SchemaViolation
	require.ErrorAs(t, err, &sv)
	assert.Equal(t, "verdict", sv.Field)

	res.Verdict = ""
	require.Error(t, res.Validate())
}

func TestValidateBounds(t *testing.T) {
	res := validResult()
	res.Confidence = -0.01
	assert.Error(t, res.Validate())

	res = validResult()
	res.Scores.RefutingScore = 1.2
	assert.Error(t, res.Validate())

	res = validResult()
	res.Confidence = 1.0
	res.Scores.SupportingScore = 0.0
	assert.NoError(t, res.Validate())
}

func TestValidateEvidenceURL(t *testing.T) {
	res := validResult()
	res.Evidence = append(res.Evidence, EvidenceItem{Title: "no url"})
	err := res.Validate()
	var sv *SchemaViolation
	require.ErrorAs(t, err, &sv)
	assert.Equal(t, "evidence[1].url", sv.Field)

	res = validResult()
	res.Evidence = nil
	assert.NoError(t, res.Validate(), "empty evidence is valid, e.g. UNVERIFIED")
}

func TestChatValidate(t *testing.T) {
	for _, a := range []Assessment{AssessmentNecessary, AssessmentMissingContext, AssessmentCorrect, AssessmentUncertain, AssessmentOffTopic} {
		c := ChatResult{Response: "r", Assessment: a}
		assert.NoError(t, c.Validate(), string(a))
	}

	c := ChatResult{Response: "r", Assessment: "WRONG"}
	var sv *SchemaViolation
	require.ErrorAs(t, c.Validate(), &sv)
	assert.Equal(t, "assessment", sv.Field)
}

func TestApplyDefaults(t *testing.T) {
	var res VerificationResult
	res.ApplyDefaults()

	_, err := uuid.Parse(res.ClaimID)
	assert.NoError(t, err, "claim_id defaults to a uuid")

	ts, err := time.Parse(time.RFC3339, res.TimestampUTC)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)

	assert.Equal(t, 800, res.ImageGeneration.Width)
	assert.Equal(t, 800, res.ImageGeneration.Height)
	assert.NotEmpty(t, res.ImageGeneration.Style)
}

func TestApplyDefaultsPreservesValues(t *testing.T) {
	res := validResult()
	res.ImageGeneration = ImageGeneration{Width: 1024, Height: 512, Style: "photo"}
	res.ApplyDefaults()

	assert.Equal(t, "abc", res.ClaimID)
	assert.Equal(t, "2025-06-01T12:00:00Z", res.TimestampUTC)
	assert.Equal(t, 1024, res.ImageGeneration.Width)
	assert.Equal(t, 512, res.ImageGeneration.Height)
	assert.Equal(t, "photo", res.ImageGeneration.Style)
}
