package interfaces

import (
	"github.com/foundershield/foundershield/dto"
)

// ContentScanner runs the scam-pattern and URL-pattern tables over a message
// body and returns the matched findings with their total deduction.
type ContentScanner interface {
	Scan(body string) *dto.ContentScanResult
}
