package interfaces

import (
	"context"

	"github.com/foundershield/foundershield/dto"
)

// WhoisChecker resolves registration data for a domain. Failures are
// absorbed into an all-null result with Available=true.
type WhoisChecker interface {
	Lookup(ctx context.Context, domain string) *dto.WhoisInfo
}
