package utils

import (
	"strings"
)

// NormalizeEmail strips display-name angle brackets and whitespace and
// lower-cases the address so sender lookups compare consistently.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if strings.Contains(email, "<") && strings.Contains(email, ">") {
		startIdx := strings.LastIndex(email, "<") + 1
		endIdx := strings.LastIndex(email, ">")
		if startIdx > 0 && endIdx > startIdx {
			email = email[startIdx:endIdx]
		}
	}
	return strings.ToLower(strings.TrimSpace(email))
}

// ExtractDomainFromEmail returns the lower-cased right-hand side of an email
// address, or an empty string when the input does not contain exactly one "@".
func ExtractDomainFromEmail(email string) string {
	if email == "" {
		return ""
	}

	// Remove any potential surrounding whitespace
	email = strings.TrimSpace(email)

	// Handle potential angle brackets in email (e.g., "Name <email@domain.com>")
	if strings.Contains(email, "<") && strings.Contains(email, ">") {
		startIdx := strings.LastIndex(email, "<") + 1
		endIdx := strings.LastIndex(email, ">")
		if startIdx > 0 && endIdx > startIdx {
			email = email[startIdx:endIdx]
		}
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}

	domain := strings.TrimSpace(parts[1])
	if domain == "" {
		return ""
	}

	domain = strings.ToLower(domain)

	return domain
}
