package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const nanoIdAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func GenerateNanoID() string {
	id, _ := gonanoid.Generate(nanoIdAlphabet, 21)
	return id
}

// GenerateNanoIdWithPrefix produces IDs like "fdbk-x7k2..." used as primary keys.
func GenerateNanoIdWithPrefix(prefix string, length int) string {
	id, _ := gonanoid.Generate(nanoIdAlphabet, length)
	return fmt.Sprintf("%s-%s", prefix, id)
}
