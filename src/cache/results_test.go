package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/schema"
)

func TestKeyNormalizes(t *testing.T) {
	base := Key("The sky is green", "English")
	assert.Equal(t, base, Key("  the SKY is green  ", "english"))
	assert.True(t, strings.HasPrefix(base, "truthguard:verify:"))
}

func TestKeyDiscriminates(t *testing.T) {
	assert.NotEqual(t, Key("claim a", "English"), Key("claim b", "English"))
	assert.NotEqual(t, Key("claim a", "English"), Key("claim a", "Hindi"))
	// The separator keeps (ab, c) and (a, bc) apart.
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
}

func TestNilCacheIsMiss(t *testing.T) {
	var r *Results
	res, ok := r.Get(context.Background(), Key("x", "English"))
	assert.False(t, ok)
	assert.Nil(t, res)
	r.Put(context.Background(), Key("x", "English"), &schema.VerificationResult{})

	disabled := NewResults(nil, 0)
	_, ok = disabled.Get(context.Background(), Key("x", "English"))
	assert.False(t, ok)
	disabled.Put(context.Background(), Key("x", "English"), &schema.VerificationResult{})
}
