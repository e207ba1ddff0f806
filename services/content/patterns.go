package content

import (
	"regexp"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/internal/enum"
)

// scamPattern rules run against the lower-cased body. Each pattern counts
// once no matter how often it matches. New rules are added by appending an
// entry; point weights live here, not in the scoring profile.
type scamPattern struct {
	pattern   *regexp.Regexp
	points    int
	findingID string
	severity  enum.Severity
	detail    string
}

var scamPatterns = []scamPattern{
	{
		pattern:   regexp.MustCompile(`(?:pay|payment|fee).{0,40}(?:due diligence|vetting|verification|listing) (?:service|fee|process|report)`),
		points:    35,
		findingID: dto.FindingPayForService,
		severity:  enum.SeverityHigh,
		detail:    "Asks for payment for a due diligence or vetting service",
	},
	{
		pattern:   regexp.MustCompile(`what(?:'s| is) your budget`),
		points:    10,
		findingID: dto.FindingBudgetProbe,
		severity:  enum.SeverityMedium,
		detail:    "Probes for budget before any substantive discussion",
	},
	{
		pattern:   regexp.MustCompile(`(?:act now|urgent(?:ly)? (?:required|needed)|within 24 hours|expires? (?:today|soon)|final (?:notice|warning))`),
		points:    15,
		findingID: dto.FindingUrgencyPressure,
		severity:  enum.SeverityMedium,
		detail:    "Applies artificial time pressure",
	},
	{
		pattern:   regexp.MustCompile(`(?:verify|confirm|update|re-?enter).{0,30}(?:password|credentials|account details|banking details|card number)`),
		points:    25,
		findingID: dto.FindingCredentialRequest,
		severity:  enum.SeverityHigh,
		detail:    "Requests credentials or account verification",
	},
	{
		pattern:   regexp.MustCompile(`(?:wire transfer|western union|moneygram|money order|advance (?:fee|payment))`),
		points:    25,
		findingID: dto.FindingWireTransfer,
		severity:  enum.SeverityHigh,
		detail:    "Requests an untraceable payment method",
	},
	{
		pattern:   regexp.MustCompile(`(?:bitcoin|btc wallet|crypto(?:currency)? (?:payment|wallet)|usdt|send (?:eth|xrp))`),
		points:    20,
		findingID: dto.FindingCryptoPayment,
		severity:  enum.SeverityMedium,
		detail:    "Requests cryptocurrency payment",
	},
	{
		pattern:   regexp.MustCompile(`(?:you (?:have |'ve )?won|congratulations.{0,30}(?:winner|selected)|claim your (?:prize|reward|winnings))`),
		points:    25,
		findingID: dto.FindingPrizeNotification,
		severity:  enum.SeverityHigh,
		detail:    "Announces an unsolicited prize or reward",
	},
	{
		pattern:   regexp.MustCompile(`(?:keep (?:this|it) (?:confidential|secret|between us)|do not (?:tell|share|disclose))`),
		points:    15,
		findingID: dto.FindingSecrecyRequest,
		severity:  enum.SeverityMedium,
		detail:    "Asks for secrecy",
	},
}

// urlPattern rules run against every extracted URL. A URL is tested against
// all patterns, so one link can accumulate several findings.
type urlPattern struct {
	pattern   *regexp.Regexp
	findingID string
	severity  enum.Severity
	detail    string
}

var urlPatterns = []urlPattern{
	{
		pattern:   regexp.MustCompile(`(?i)(?:^|[./])(?:bit\.ly|tinyurl\.com|goo\.gl|t\.co|ow\.ly|is\.gd|buff\.ly|rebrand\.ly|cutt\.ly|rb\.gy)(?:[/:]|$)`),
		findingID: dto.FindingURLShortener,
		severity:  enum.SeverityHigh,
		detail:    "Link uses a URL shortener that hides its destination",
	},
	{
		pattern:   regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`),
		findingID: dto.FindingIPLiteralURL,
		severity:  enum.SeverityHigh,
		detail:    "Link points at a raw IP address instead of a hostname",
	},
	{
		pattern:   regexp.MustCompile(`(?i)xn--`),
		findingID: dto.FindingPunycodeURL,
		severity:  enum.SeverityMedium,
		detail:    "Link contains punycode that can disguise lookalike hostnames",
	},
	{
		pattern:   regexp.MustCompile(`(?i)\.(?:zip|mov|stream|gq|cf|tk|ml|top)(?:[/:?]|$)`),
		findingID: dto.FindingSuspiciousTLD,
		severity:  enum.SeverityMedium,
		detail:    "Link uses a TLD with a high abuse rate",
	},
	{
		pattern:   regexp.MustCompile(`(?i)\.(?:exe|scr|bat|cmd|jar|apk|msi)(?:\?|$)`),
		findingID: dto.FindingExecutableDownload,
		severity:  enum.SeverityHigh,
		detail:    "Link downloads an executable",
	},
}

const (
	urlHighDeduction   = 15
	urlMediumDeduction = 8
)

func urlDeduction(severity enum.Severity) int {
	if severity == enum.SeverityHigh {
		return urlHighDeduction
	}
	return urlMediumDeduction
}
