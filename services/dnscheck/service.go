package dnscheck

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/opentracing/opentracing-go"

	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/tracing"
)

type dnsCheckService struct {
	log    logger.Logger
	config *config.DNSConfig
}

func NewDNSCheckService(log logger.Logger, cfg *config.DNSConfig) interfaces.DNSChecker {
	return &dnsCheckService{
		log:    log,
		config: cfg,
	}
}

func (s *dnsCheckService) CheckDomain(ctx context.Context, domain string) (*dto.DNSRecords, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "DNSCheckService.CheckDomain")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagDomain(span, domain)

	records := &dto.DNSRecords{
		MXRecords: []dto.MXRecord{},
	}

	domain = strings.TrimSuffix(strings.TrimSpace(strings.ToLower(domain)), ".")
	if domain == "" {
		return records, nil
	}

	records.MXRecords = s.lookupMX(domain)
	records.SPFRecord = firstSPFRecord(s.lookupTXT(domain))
	records.DMARCRecord = firstDMARCRecord(s.lookupTXT("_dmarc." + domain))
	records.MTASTS = len(s.lookupTXT("_mta-sts."+domain)) > 0
	records.TLSRPT = len(s.lookupTXT("_smtp._tls."+domain)) > 0

	tracing.LogObjectAsJson(span, "records", records)
	return records, nil
}

// query resolves one record type, trying the fallback resolver when the
// primary fails. A failed lookup returns no answers, never an error; the
// caller treats absence and failure identically.
func (s *dnsCheckService) query(name string, recordType uint16) []dns.RR {
	client := &dns.Client{
		Timeout: time.Duration(s.config.TimeoutSeconds) * time.Second,
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), recordType)
	msg.RecursionDesired = true

	resp, _, err := client.Exchange(msg, s.config.Resolver)
	if err != nil || resp == nil || len(resp.Answer) == 0 {
		resp, _, err = client.Exchange(msg, s.config.FallbackResolver)
		if err != nil || resp == nil {
			s.log.Debugf("dns lookup failed for %s type %d: %v", name, recordType, err)
			return nil
		}
	}

	return resp.Answer
}

func (s *dnsCheckService) lookupMX(domain string) []dto.MXRecord {
	mxRecords := []dto.MXRecord{}
	for _, ans := range s.query(domain, dns.TypeMX) {
		if record, ok := ans.(*dns.MX); ok {
			mxRecords = append(mxRecords, dto.MXRecord{
				Priority: record.Preference,
				Host:     strings.TrimSuffix(record.Mx, "."),
			})
		}
	}

	sort.Slice(mxRecords, func(i, j int) bool {
		return mxRecords[i].Priority < mxRecords[j].Priority
	})

	return mxRecords
}

func (s *dnsCheckService) lookupTXT(name string) []string {
	var txtRecords []string
	for _, ans := range s.query(name, dns.TypeTXT) {
		if record, ok := ans.(*dns.TXT); ok {
			txtRecords = append(txtRecords, strings.Join(record.Txt, " "))
		}
	}
	return txtRecords
}

// firstSPFRecord returns the first TXT value that declares an SPF policy.
func firstSPFRecord(txtRecords []string) string {
	for _, txt := range txtRecords {
		if strings.HasPrefix(strings.ToLower(txt), "v=spf1") {
			return txt
		}
	}
	return ""
}

// firstDMARCRecord returns the first TXT value that declares a DMARC policy.
func firstDMARCRecord(txtRecords []string) string {
	for _, txt := range txtRecords {
		if strings.HasPrefix(strings.ToLower(txt), "v=dmarc1") {
			return txt
		}
	}
	return ""
}
