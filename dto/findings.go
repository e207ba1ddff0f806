package dto

// Finding IDs form a fixed catalog. The point value a finding carries comes
// from the scoring profile or pattern table that emitted it, not from the ID.
const (
	FindingError = "ERROR"

	// DNS record findings
	FindingNoMX    = "NO_MX"
	FindingNoSPF   = "NO_SPF"
	FindingNoDMARC = "NO_DMARC"

	// WHOIS findings
	FindingYoungDomain = "YOUNG_DOMAIN"

	// Authentication-Results findings
	FindingSPFFail   = "SPF_FAIL"
	FindingDKIMFail  = "DKIM_FAIL"
	FindingDMARCFail = "DMARC_FAIL"

	// Content findings, scam phrasing
	FindingPayForService     = "PAY_FOR_SERVICE"
	FindingBudgetProbe       = "BUDGET_PROBE"
	FindingUrgencyPressure   = "URGENCY_PRESSURE"
	FindingCredentialRequest = "CREDENTIAL_REQUEST"
	FindingWireTransfer      = "WIRE_TRANSFER"
	FindingCryptoPayment     = "CRYPTO_PAYMENT"
	FindingPrizeNotification = "PRIZE_NOTIFICATION"
	FindingSecrecyRequest    = "SECRECY_REQUEST"

	// Content findings, URL shapes
	FindingURLShortener       = "URL_SHORTENER"
	FindingIPLiteralURL       = "IP_LITERAL_URL"
	FindingPunycodeURL        = "PUNYCODE_URL"
	FindingSuspiciousTLD      = "SUSPICIOUS_TLD"
	FindingExecutableDownload = "EXECUTABLE_DOWNLOAD"

	// Sender-history findings, emitted only when the history provider is enabled
	FindingSenderFlagged = "SENDER_FLAGGED"
	FindingSenderTrusted = "SENDER_TRUSTED"

	// External intel findings, riskcheck CLI only
	FindingVTFlagged    = "VIRUSTOTAL_FLAGGED"
	FindingGSBMatch     = "SAFE_BROWSING_MATCH"
	FindingHIBPBreached = "EMAIL_IN_BREACHES"
)
