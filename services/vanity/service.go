package vanity

import (
	"context"
	"strings"

	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/models"
	"github.com/foundershield/foundershield/internal/tracing"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
)

// snippetRadius is how many characters of context to keep on each side of a
// matched term.
const snippetRadius = 80

type vanityService struct {
	log       logger.Logger
	cfg       *config.VanityConfig
	alertRepo interfaces.VanityAlertRepository
}

func NewVanityService(log logger.Logger, cfg *config.VanityConfig, alertRepo interfaces.VanityAlertRepository) interfaces.VanityService {
	return &vanityService{
		log:       log,
		cfg:       cfg,
		alertRepo: alertRepo,
	}
}

// ScanText looks for every configured watch term in text, case-insensitively,
// and stores one alert per matched term with a snippet of surrounding
// context. Text without matches produces no alerts and no error.
func (s *vanityService) ScanText(ctx context.Context, text, source string) ([]*models.VanityAlert, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "VanityService.ScanText")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	alerts := []*models.VanityAlert{}
	if strings.TrimSpace(text) == "" || len(s.cfg.WatchTerms) == 0 {
		return alerts, nil
	}

	lowerText := strings.ToLower(text)
	for _, term := range s.cfg.WatchTerms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		idx := strings.Index(lowerText, strings.ToLower(term))
		if idx < 0 {
			continue
		}
		alert := &models.VanityAlert{
			Term:    term,
			Source:  source,
			Snippet: snippetAround(text, idx, len(term)),
		}
		if err := s.alertRepo.Create(ctx, alert); err != nil {
			tracing.TraceErr(span, err)
			return nil, errors.Wrap(err, "failed to store vanity alert")
		}
		alerts = append(alerts, alert)
	}

	if len(alerts) > 0 {
		s.log.Infof("vanity scan matched %d term(s) in source %s", len(alerts), source)
	}
	return alerts, nil
}

func (s *vanityService) RecentAlerts(ctx context.Context, limit int) ([]*models.VanityAlert, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "VanityService.RecentAlerts")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	alerts, err := s.alertRepo.List(ctx, limit)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to list vanity alerts")
	}
	return alerts, nil
}

func snippetAround(text string, idx, termLen int) string {
	start := idx - snippetRadius
	if start < 0 {
		start = 0
	}
	end := idx + termLen + snippetRadius
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[start:end])
}
