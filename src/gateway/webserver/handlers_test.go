package webserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/gateway/config"
	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/gateway/proxy"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGateway(downstream string) *gin.Engine {
	cfg := config.Config{
		AllowOrigins: "*",
		AuditorURL:   downstream,
		ResearchURL:  downstream,
		SafetyURL:    downstream,
		AgentURL:     downstream,
	}
	return New(cfg, proxy.New())
}

func doJSON(t *testing.T, engine *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestHealthAndBanner(t *testing.T) {
	engine := newGateway("http://localhost:1")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "TruthGuard AI API Gateway")
}

func TestVerifyMapsDownstreamFields(t *testing.T) {
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verify", r.URL.Path)
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "water boils at 100C", req["claim"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"is_true":     true,
			"summary":     "correct at sea level",
			"explanation": "boiling point depends on pressure",
			"sources":     []string{"https://noaa.gov"},
			"confidence":  0.9,
		})
	}))
	defer downstream.Close()

	w := doJSON(t, newGateway(downstream.URL), "/api/v1/verify", gin.H{"claim_text": "water boils at 100C"})
	require.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, true, res["is_true"])
	assert.Equal(t, "boiling point depends on pressure", res["detailed_explanation"])
	assert.Equal(t, 0.9, res["confidence"])
}

func TestVerifyRequiresClaimText(t *testing.T) {
	w := doJSON(t, newGateway("http://localhost:1"), "/api/v1/verify", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownstream503NamesService(t *testing.T) {
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer downstream.Close()
	engine := newGateway(downstream.URL)

	cases := []struct {
		path    string
		body    gin.H
		service string
	}{
		{"/api/v1/verify", gin.H{"claim_text": "x"}, "LLM Auditor"},
		{"/api/v1/research", gin.H{"query": "x"}, "Deep Search"},
		{"/api/v1/safety-check", gin.H{"content": "x"}, "Safety Plugins"},
		{"/api/v1/antigravity/verify", gin.H{"claim": "x"}, "TruthGuard Agent"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := doJSON(t, engine, tc.path, tc.body)
			require.Equal(t, http.StatusInternalServerError, w.Code)

			var res struct {
				Detail string `json:"detail"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Contains(t, res.Detail, tc.service)
			assert.Contains(t, res.Detail, "503")
		})
	}
}

func TestNetworkFailureNamesService(t *testing.T) {
	// Nothing listens on this port.
	w := doJSON(t, newGateway("http://127.0.0.1:1"), "/api/v1/safety-check", gin.H{"content": "x"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Safety Plugins")
}

func TestAgentVerifyPassesResultThrough(t *testing.T) {
	payload := map[string]interface{}{
		"claim_id": "abc",
		"verdict":  "TRUE",
		"scores":   map[string]interface{}{"supporting_score": 0.8, "refuting_score": 0.1},
	}
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verify", r.URL.Path)
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "the moon landing happened", req["claim"])
		assert.Equal(t, true, req["image_requested"])
		assert.Equal(t, "English", req["language"])

		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer downstream.Close()

	w := doJSON(t, newGateway(downstream.URL), "/api/v1/antigravity/verify",
		gin.H{"claim": "the moon landing happened", "image_requested": true})
	require.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "abc", res["claim_id"])
	assert.Equal(t, "TRUE", res["verdict"])
}

func TestResearchDefaultsDepth(t *testing.T) {
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "standard", req["depth"])
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"summary": "s"})
	}))
	defer downstream.Close()

	w := doJSON(t, newGateway(downstream.URL), "/api/v1/research", gin.H{"query": "fusion"})
	require.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "s", res["summary"])
	assert.Equal(t, []interface{}{}, res["findings"])
	assert.Equal(t, []interface{}{}, res["sources"])
}
