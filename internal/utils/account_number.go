package utils

import (
	"strings"

	"github.com/google/uuid"
)

// AccountNumberLength is the number of characters in a generated account number.
const AccountNumberLength = 6

// GenerateAccountNumber returns a candidate account number: the first six hex
// characters of a random UUID. Callers must check it is not already taken.
func GenerateAccountNumber() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:AccountNumberLength]
}
