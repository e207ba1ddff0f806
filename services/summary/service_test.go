package summary

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foundershield/foundershield/config"
	er "github.com/foundershield/foundershield/internal/errors"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return appLogger
}

func TestSummarize_NotConfigured(t *testing.T) {
	// Arrange
	svc := NewSummaryService(getLogger(), &config.OpenAIConfig{Model: "gpt-4o-mini"})

	// Act
	_, err := svc.Summarize(context.Background(), "some thread")

	// Assert
	assert.ErrorIs(t, err, er.ErrNotConfigured)
}

func TestSummarize_EmptyText(t *testing.T) {
	// Arrange
	svc := NewSummaryService(getLogger(), &config.OpenAIConfig{APIKey: "key", Model: "gpt-4o-mini"})

	// Act
	_, err := svc.Summarize(context.Background(), "   ")

	// Assert
	assert.Error(t, err)
}

func TestSummarize_ReturnsTrimmedCompletion(t *testing.T) {
	// Arrange: an OpenAI-compatible endpoint answering the chat completion.
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "  Jane asks for a call on Tuesday about the seed round.  "}
			}]
		}`)
	}))
	defer server.Close()
	svc := NewSummaryService(getLogger(), &config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-4o-mini",
	})

	// Act
	summary, err := svc.Summarize(context.Background(), "Long thread about scheduling a call regarding the seed round...")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Jane asks for a call on Tuesday about the seed round.", summary)
	assert.Contains(t, gotBody, "gpt-4o-mini")
	assert.True(t, strings.Contains(gotBody, "seed round"))
}

func TestSummarize_NoChoices(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`)
	}))
	defer server.Close()
	svc := NewSummaryService(getLogger(), &config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-4o-mini",
	})

	// Act
	_, err := svc.Summarize(context.Background(), "thread")

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
