package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// accountNumberKey is the key used to store the authenticated account number.
const accountNumberKey = contextKey("accountNumber")

// WithAccountNumber returns a copy of ctx carrying the authenticated account number.
func WithAccountNumber(ctx context.Context, accountNumber string) context.Context {
	return context.WithValue(ctx, accountNumberKey, accountNumber)
}

// GetAccountNumberFromContext retrieves the authenticated account number.
// It returns the account number and a boolean indicating if it was found.
func GetAccountNumberFromContext(c *gin.Context) (string, bool) {
	accountNumber, ok := c.Request.Context().Value(accountNumberKey).(string)
	if !ok || accountNumber == "" {
		return "", false
	}
	return accountNumber, true
}
