// Package headers extracts SPF, DKIM and DMARC verdicts from raw
// Authentication-Results header text with independent token searches.
//
// This is deliberately not an RFC 8601 parser. Only the first occurrence of
// each token is read, so a message carrying several Authentication-Results
// blocks (one per receiving hop) reports the first hop that mentions the
// token. Vendor comment syntax between a token and its value is not
// understood and yields "none". These blind spots are accepted; the verdicts
// feed a heuristic score, not an enforcement decision.
package headers

import (
	"regexp"
	"strings"

	"github.com/jhillyerd/enmime"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/foundershield/foundershield/internal/logger"
)

const VerdictNone = "none"

var (
	spfPattern   = regexp.MustCompile(`(?i)\bspf=(\w+)`)
	dkimPattern  = regexp.MustCompile(`(?i)\bdkim=(\w+)`)
	dmarcPattern = regexp.MustCompile(`(?i)\bdmarc=(\w+)`)
)

type authHeaderParser struct {
	log logger.Logger
}

func NewAuthHeaderParser(log logger.Logger) interfaces.AuthHeaderParser {
	return &authHeaderParser{log: log}
}

func (s *authHeaderParser) Parse(rawHeaders string) *dto.AuthResults {
	searchText := s.authResultsSection(rawHeaders)

	return &dto.AuthResults{
		SPF:   firstVerdict(spfPattern, searchText),
		DKIM:  firstVerdict(dkimPattern, searchText),
		DMARC: firstVerdict(dmarcPattern, searchText),
	}
}

// authResultsSection narrows a full RFC 5322 message to its
// Authentication-Results headers when at least one is present. Raw header
// fragments and unparseable blobs are searched as-is.
func (s *authHeaderParser) authResultsSection(rawHeaders string) string {
	envelope, err := enmime.ReadEnvelope(strings.NewReader(rawHeaders))
	if err != nil {
		return rawHeaders
	}

	values := envelope.GetHeaderValues("Authentication-Results")
	if len(values) == 0 {
		return rawHeaders
	}

	return strings.Join(values, "\n")
}

func firstVerdict(pattern *regexp.Regexp, text string) string {
	match := pattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return VerdictNone
	}
	return strings.ToLower(match[1])
}
