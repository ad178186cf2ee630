package extract

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/schema"
)

const validVerification = `{
  "claim_id": "abc",
  "timestamp_utc": "2025-06-01T12:00:00Z",
  "input": {"original_text": "The moon is made of cheese", "language": "English", "source_url": "https://example.org/post"},
  "normalized_claim": "The moon is composed of cheese.",
  "verdict": "FALSE",
  "confidence": 0.97,
  "scores": {"supporting_score": 0.01, "refuting_score": 0.97},
  "evidence": [
    {"title": "Lunar composition", "org": "NASA", "url": "https://nasa.gov/moon", "date": "2020-01-01", "extract": "The lunar surface is basaltic rock."}
  ],
  "explanation": {"public_summary": "The moon is rock, not cheese.", "technical_note": "Apollo samples are basalt and anorthosite."},
  "recommended_actions": ["Check NASA sources", "Do not share the claim"],
  "image_generation": {"requested": false, "image_prompt": "", "width": 800, "height": 800, "style": "flat infographic, bold verdict badge"},
  "sources_checked": ["NASA", "ESA"],
  "notes": "well established"
}`

func TestCleanStripsFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"language tag", "```json\n{\"a\":1}\n```"},
		{"no tag", "```\n{\"a\":1}\n```"},
		{"no trailing newline", "```json\n{\"a\":1}```"},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  "},
		{"already clean", "{\"a\":1}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, `{"a":1}`, Clean(tc.in))
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	in := "```json\n" + validVerification + "\n```"
	once := Clean(in)
	assert.Equal(t, once, Clean(once))
}

func TestVerificationFencedEqualsUnwrapped(t *testing.T) {
	plain, err := Verification(validVerification)
	require.NoError(t, err)

	fenced, err := Verification("```json\n" + validVerification + "\n```")
	require.NoError(t, err)

	assert.Equal(t, plain, fenced)
	assert.Equal(t, "abc", fenced.ClaimID)
	assert.Equal(t, schema.VerdictFalse, fenced.Verdict)
}

func TestVerificationRoundTrip(t *testing.T) {
	res, err := Verification(validVerification)
	require.NoError(t, err)

	out, err := json.Marshal(res)
	require.NoError(t, err)

	var got, want map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &got))
	require.NoError(t, json.Unmarshal([]byte(validVerification), &want))
	// image_prompt is empty in the source and omitted on re-serialization.
	delete(want["image_generation"].(map[string]interface{}), "image_prompt")
	assert.Equal(t, want, got)
}

func TestVerificationRecoversEmbeddedObject(t *testing.T) {
	clean, err := Verification(validVerification)
	require.NoError(t, err)

	embedded, err := Verification("Sure! Here is the verification you asked for:\n" + validVerification + "\nLet me know if you need more.")
	require.NoError(t, err)
	assert.Equal(t, clean, embedded)
}

func TestVerificationEmptyOutput(t *testing.T) {
	for _, in := range []string{"", "   \n\t  ", "```\n```"} {
		_, err := Verification(in)
		assert.ErrorIs(t, err, ErrEmptyOutput, "input %q", in)
	}
}

func TestVerificationMalformed(t *testing.T) {
	_, err := Verification("I could not verify this claim, sorry.")
	assert.ErrorIs(t, err, ErrMalformedJSON)

	_, err = Verification("here { but it never closes")
	assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestVerificationSchemaViolations(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(m map[string]interface{})
		field string
	}{
		{"unknown verdict", func(m map[string]interface{}) { m["verdict"] = "MAYBE" }, "verdict"},
		{"missing verdict", func(m map[string]interface{}) { delete(m, "verdict") }, "verdict"},
		{"confidence above range", func(m map[string]interface{}) { m["confidence"] = 1.5 }, "confidence"},
		{"confidence below range", func(m map[string]interface{}) { m["confidence"] = -0.2 }, "confidence"},
		{"supporting score out of range", func(m map[string]interface{}) {
			m["scores"].(map[string]interface{})["supporting_score"] = 1.01
		}, "scores.supporting_score"},
		{"refuting score out of range", func(m map[string]interface{}) {
			m["scores"].(map[string]interface{})["refuting_score"] = -0.01
		}, "scores.refuting_score"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(validVerification), &m))
			tc.mut(m)
			raw, err := json.Marshal(m)
			require.NoError(t, err)

			_, err = Verification(string(raw))
			var sv *schema.SchemaViolation
			require.ErrorAs(t, err, &sv)
			assert.Equal(t, tc.field, sv.Field)
		})
	}
}

func TestVerificationBoundaryValuesAccepted(t *testing.T) {
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(validVerification), &m))
	m["confidence"] = 0.0
	m["scores"].(map[string]interface{})["supporting_score"] = 1.0
	m["scores"].(map[string]interface{})["refuting_score"] = 0.0
	raw, _ := json.Marshal(m)

	res, err := Verification(string(raw))
	require.NoError(t, err)
	assert.Zero(t, res.Confidence)
	assert.Equal(t, 1.0, res.Scores.SupportingScore)
}

func TestChatRecoversEmbeddedObject(t *testing.T) {
	in := `Sure, here you go: {"response":"Hello","assessment":"CORRECT","image_prompt":null} Hope that helps!`
	res := Chat(in)
	assert.Equal(t, "Hello", res.Response)
	assert.Equal(t, schema.AssessmentCorrect, res.Assessment)
	assert.Empty(t, res.ImagePrompt)
}

func TestChatFenced(t *testing.T) {
	res := Chat("```json\n{\"response\":\"Hi\",\"assessment\":\"OFF_TOPIC\",\"image_prompt\":\"poster\"}\n```")
	assert.Equal(t, "Hi", res.Response)
	assert.Equal(t, schema.AssessmentOffTopic, res.Assessment)
	assert.Equal(t, "poster", res.ImagePrompt)
}

func TestChatDegradesWithoutJSON(t *testing.T) {
	raw := "I'm not sure how to help with that, but drinking water is healthy."
	res := Chat(raw)
	assert.Equal(t, raw, res.Response)
	assert.Equal(t, schema.AssessmentUncertain, res.Assessment)
	assert.Empty(t, res.ImagePrompt)
}

func TestChatDegradesOnSchemaViolation(t *testing.T) {
	raw := `{"response":"Hello","assessment":"SOMETHING_ELSE"}`
	res := Chat(raw)
	assert.Equal(t, raw, res.Response)
	assert.Equal(t, schema.AssessmentUncertain, res.Assessment)
}

func TestChatDegradesOnEmpty(t *testing.T) {
	res := Chat("")
	assert.Empty(t, res.Response)
	assert.Equal(t, schema.AssessmentUncertain, res.Assessment)
}

func TestVerificationNeverClamps(t *testing.T) {
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(validVerification), &m))
	m["confidence"] = 1.0000001
	raw, _ := json.Marshal(m)

	_, err := Verification(string(raw))
	require.Error(t, err)
	var sv *schema.SchemaViolation
	assert.True(t, errors.As(err, &sv))
}
