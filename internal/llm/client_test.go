package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	return cfg
}

func candidateResponse(text string) geminiResponse {
	var resp geminiResponse
	resp.Candidates = []struct {
		Content geminiContent `json:"content"`
	}{{Content: geminiContent{Parts: []geminiPart{{Text: text}}}}}
	return resp
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "analyze this project", req.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(candidateResponse("## Health Score: 72%"))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{Prompt: "analyze this project"})
	require.NoError(t, err)
	assert.Equal(t, "## Health Score: 72%", resp.Text)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)
}

func TestGeminiClient_Generate_NoAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestGeminiClient_Generate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0
	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestGeminiClient_Generate_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(candidateResponse("ok"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1
	client := NewGeminiClient(cfg, NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGeminiClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		json.NewEncoder(w).Encode(candidateResponse("too late"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGeminiClient_Generate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0
	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	require.Error(t, err)
}

func TestGeminiClient_Generate_ObserverSeesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0
	client := NewGeminiClient(cfg, obs)
	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	require.Error(t, err)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

type recordingObserver struct {
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) {
	o.events = append(o.events, e)
}
