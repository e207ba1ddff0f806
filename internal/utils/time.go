package utils

import "time"

// Now returns the current time in UTC, the only zone stored or compared.
func Now() time.Time {
	return time.Now().UTC()
}

// AgeInDays returns the number of whole days between t and now.
func AgeInDays(t time.Time) int {
	return int(time.Since(t).Hours() / 24)
}
