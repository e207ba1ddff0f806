package whois

import (
	"context"
	"strings"
	"time"

	likexianwhois "github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"github.com/opentracing/opentracing-go"

	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/tracing"
)

type whoisService struct {
	log    logger.Logger
	client *likexianwhois.Client
}

func NewWhoisService(log logger.Logger, cfg *config.WhoisConfig) interfaces.WhoisChecker {
	client := likexianwhois.NewClient()
	client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)

	return &whoisService{
		log:    log,
		client: client,
	}
}

// Lookup resolves registration data for a domain. Every failure path returns
// the all-null result with Available=true; WHOIS is never fatal to a report.
func (s *whoisService) Lookup(ctx context.Context, domain string) *dto.WhoisInfo {
	span, ctx := opentracing.StartSpanFromContext(ctx, "WhoisService.Lookup")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagDomain(span, domain)

	unknown := &dto.WhoisInfo{Available: true}

	raw, err := s.client.Whois(domain)
	if err != nil {
		s.log.Debugf("whois query failed for %s: %v", domain, err)
		return unknown
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		s.log.Debugf("whois parse failed for %s: %v", domain, err)
		return unknown
	}

	info := &dto.WhoisInfo{Available: false}
	if parsed.Domain != nil {
		if parsed.Domain.CreatedDateInTime != nil {
			created := parsed.Domain.CreatedDateInTime.UTC()
			info.CreatedDate = &created
		} else {
			info.CreatedDate = parseCreationDate(parsed.Domain.CreatedDate)
		}
	}
	if parsed.Registrar != nil {
		info.Registrar = parsed.Registrar.Name
	}

	tracing.LogObjectAsJson(span, "whois", info)
	return info
}

var creationDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
}

// parseCreationDate covers registry date formats the parser leaves as raw
// strings. Returns nil when nothing matches; an unknown creation date is
// treated as no signal, not as suspicious.
func parseCreationDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	for _, layout := range creationDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			utc := t.UTC()
			return &utc
		}
	}

	return nil
}
