package content

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/utils"
)

// urlRegex deliberately only picks up links with an explicit scheme or a
// www. prefix. Bare hostnames in prose are too noisy to treat as links.
var urlRegex = regexp.MustCompile(`(?:https?://|www\.)[^\s<>"'\)\]]+`)

type contentScanner struct {
	log logger.Logger
}

func NewContentScanner(log logger.Logger) interfaces.ContentScanner {
	return &contentScanner{
		log: log,
	}
}

// Scan runs the scam pattern table and the URL pattern table over the body
// and returns the accumulated deduction. It never fails: an empty or
// unparseable body simply produces a zero-deduction result.
func (s *contentScanner) Scan(body string) *dto.ContentScanResult {
	result := &dto.ContentScanResult{
		Findings: []dto.RiskFinding{},
		Details: dto.ContentDetails{
			SuspiciousURLs: []dto.SuspiciousURL{},
			ScamPatterns:   []dto.ScamPatternMatch{},
		},
	}
	if strings.TrimSpace(body) == "" {
		return result
	}

	lowerBody := strings.ToLower(body)

	for _, scam := range scamPatterns {
		matched := scam.pattern.FindString(lowerBody)
		if matched == "" {
			continue
		}
		result.Findings = append(result.Findings, dto.RiskFinding{
			ID:       scam.findingID,
			Severity: scam.severity,
			Detail:   scam.detail,
		})
		result.Details.ScamPatterns = append(result.Details.ScamPatterns, dto.ScamPatternMatch{
			FindingID: scam.findingID,
			Matched:   matched,
			Points:    scam.points,
		})
		result.ScoreDeduction += scam.points
	}

	for _, url := range s.extractURLs(body) {
		for _, rule := range urlPatterns {
			if !rule.pattern.MatchString(url) {
				continue
			}
			points := urlDeduction(rule.severity)
			result.Findings = append(result.Findings, dto.RiskFinding{
				ID:       rule.findingID,
				Severity: rule.severity,
				Detail:   rule.detail + ": " + url,
			})
			result.Details.SuspiciousURLs = append(result.Details.SuspiciousURLs, dto.SuspiciousURL{
				URL:       url,
				FindingID: rule.findingID,
				Severity:  rule.severity,
			})
			result.ScoreDeduction += points
		}
	}

	return result
}

// extractURLs combines a plain-text regex sweep with anchor hrefs from HTML
// bodies. Duplicates are collapsed so a link present in both the text and
// the markup is only scored once.
func (s *contentScanner) extractURLs(body string) []string {
	urls := urlRegex.FindAllString(body, -1)
	if looksLikeHTML(body) {
		urls = append(urls, s.extractHTMLLinks(body)...)
	}
	return utils.UniqueStrings(urls)
}

func (s *contentScanner) extractHTMLLinks(body string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		s.log.Debugf("failed to parse html body: %v", err)
		return nil
	}
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		lower := strings.ToLower(href)
		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "www.") {
			links = append(links, href)
		}
	})
	return links
}

func looksLikeHTML(body string) bool {
	lower := strings.ToLower(body)
	return strings.Contains(lower, "<a ") || strings.Contains(lower, "<html") || strings.Contains(lower, "<body")
}
