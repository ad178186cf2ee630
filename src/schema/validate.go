package schema

import "fmt"

// SchemaViolation reports a field that broke the output contract.
type SchemaViolation struct {
	Field  string
	Reason string
}

func (v *SchemaViolation) Error() string {
	return fmt.Sprintf("schema violation: %s: %s", v.Field, v.Reason)
}

func violate(field, format string, args ...interface{}) *SchemaViolation {
	return &SchemaViolation{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func inUnit(v float64) bool { return v >= 0.0 && v <= 1.0 }

// Validate checks the structural contract: closed enums and inclusive numeric
// bounds. Out-of-range values are rejected, never clamped. Semantic
// consistency between verdict and scores is the generating agent's contract
// and is deliberately not checked here.
func (r *VerificationResult) Validate() error {
	switch r.Verdict {
	case VerdictTrue, VerdictFalse, VerdictMisleading, VerdictUnverified, VerdictIncomplete:
	case "":
		return violate("verdict", "missing")
	default:
		return violate("verdict", "unknown value %q", r.Verdict)
	}
	if !inUnit(r.Confidence) {
		return violate("confidence", "%v outside [0,1]", r.Confidence)
	}
	if !inUnit(r.Scores.SupportingScore) {
		return violate("scores.supporting_score", "%v outside [0,1]", r.Scores.SupportingScore)
	}
	if !inUnit(r.Scores.RefutingScore) {
		return violate("scores.refuting_score", "%v outside [0,1]", r.Scores.RefutingScore)
	}
	for i, ev := range r.Evidence {
		if ev.URL == "" {
			return violate(fmt.Sprintf("evidence[%d].url", i), "missing")
		}
	}
	return nil
}

// Validate checks the chat contract.
func (c *ChatResult) Validate() error {
	switch c.Assessment {
	case AssessmentNecessary, AssessmentMissingContext, AssessmentCorrect,
		AssessmentUncertain, AssessmentOffTopic:
	case "":
		return violate("assessment", "missing")
	default:
		return violate("assessment", "unknown value %q", c.Assessment)
	}
	return nil
}
