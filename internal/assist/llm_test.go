package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeLLMNotConfigured(t *testing.T) {
	client := NewClientWith("", "")

	_, err := client.InvokeLLM(context.Background(), Request{Prompt: "hello"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestInvokeLLM(t *testing.T) {
	var received Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		err := json.NewDecoder(r.Body).Decode(&received)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"milestones":[{"title":"Demo"}]}`))
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "test-key")

	raw, err := client.InvokeLLM(context.Background(), Request{
		Prompt:             "plan the work",
		ResponseJSONSchema: map[string]interface{}{"type": "object"},
	})
	require.NoError(t, err)

	assert.Equal(t, "plan the work", received.Prompt)
	assert.Equal(t, "object", received.ResponseJSONSchema["type"])

	var parsed struct {
		Milestones []struct {
			Title string `json:"title"`
		} `json:"milestones"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	require.Len(t, parsed.Milestones, 1)
	assert.Equal(t, "Demo", parsed.Milestones[0].Title)
}

func TestInvokeLLMBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "")

	_, err := client.InvokeLLM(context.Background(), Request{Prompt: "plan"})
	assert.Error(t, err)
}

func TestInvokeLLMInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "")

	_, err := client.InvokeLLM(context.Background(), Request{Prompt: "plan"})
	assert.Error(t, err)
}
