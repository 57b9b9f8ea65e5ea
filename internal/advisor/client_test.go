package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aura-commerce/ministore-backend/pkg/config"
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advisorTestConfig(baseURL string) config.AdvisorConfig {
	return config.AdvisorConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "gemini-3-flash-preview",
		Temperature: 0.7,
		TopK:        40,
		TopP:        0.95,
		Timeout:     5 * time.Second,
	}
}

func TestGenerateContentSuccess(t *testing.T) {
	var captured generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-3-flash-preview:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Try the yoga mat."}]}}]}`))
	}))
	defer server.Close()

	client, err := NewClient(advisorTestConfig(server.URL))
	require.NoError(t, err)

	reply, err := client.GenerateContent(context.Background(), "something for workouts")
	require.NoError(t, err)
	assert.Equal(t, "Try the yoga mat.", reply)

	require.Len(t, captured.Contents, 1)
	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, 0.7, captured.GenerationConfig.Temperature)
	assert.Equal(t, 40, captured.GenerationConfig.TopK)
	assert.Equal(t, 0.95, captured.GenerationConfig.TopP)
}

func TestGenerateContentUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":429,"message":"quota"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient(advisorTestConfig(server.URL))
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), "hello")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}

func TestGenerateContentNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client, err := NewClient(advisorTestConfig(server.URL))
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), "hello")
	require.Error(t, err)
}

func TestGenerateContentMissingAPIKey(t *testing.T) {
	cfg := advisorTestConfig("https://example.invalid")
	cfg.APIKey = ""

	client, err := NewClient(cfg)
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), "hello")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}
