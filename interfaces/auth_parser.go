package interfaces

import (
	"github.com/foundershield/foundershield/dto"
)

// AuthHeaderParser extracts SPF/DKIM/DMARC verdicts from a raw
// Authentication-Results header or a full header block. Verdicts default to
// "none" for any token the parser does not find.
type AuthHeaderParser interface {
	Parse(rawHeaders string) *dto.AuthResults
}
