package interfaces

import (
	"context"

	"github.com/foundershield/foundershield/dto"
)

// DNSChecker resolves the mail-related records for a domain. A missing
// record of any type is reported as absent in the result, not as an error;
// the error return fires only when no lookup could be attempted at all.
type DNSChecker interface {
	CheckDomain(ctx context.Context, domain string) (*dto.DNSRecords, error)
}
