package summary

import (
	"context"
	"strings"

	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/interfaces"
	er "github.com/foundershield/foundershield/internal/errors"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
)

const systemPrompt = `You summarize email threads and dashboard notes for a busy startup founder.
Reply with a plain-text summary of at most three sentences. Keep names, amounts and dates. Do not add commentary.`

type summaryService struct {
	log    logger.Logger
	cfg    *config.OpenAIConfig
	client openai.Client
}

// NewSummaryService builds the OpenAI-compatible client. A missing API key
// is allowed at startup; Summarize reports ErrNotConfigured until one is set.
func NewSummaryService(log logger.Logger, cfg *config.OpenAIConfig) interfaces.SummaryService {
	opts := []option.RequestOption{}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &summaryService{
		log:    log,
		cfg:    cfg,
		client: openai.NewClient(opts...),
	}
}

func (s *summaryService) Summarize(ctx context.Context, text string) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "SummaryService.Summarize")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	if s.cfg.APIKey == "" {
		return "", er.ErrNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("text is required")
	}

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		tracing.TraceErr(span, err)
		return "", errors.Wrap(err, "completion request failed")
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
