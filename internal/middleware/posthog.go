package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/banking_portal/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains path prefixes that should not be tracked by PostHog
var pathsToSkip = []string{"/health", "/swagger"}

func skipTracking(path string) bool {
	for _, prefix := range pathsToSkip {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// PosthogMiddleware creates a Gin middleware handler that tracks API events with PostHog
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip if PostHog is not initialized or path is in skip list
		if posthogClient == nil || !posthogClient.IsInitialized() || skipTracking(c.Request.URL.Path) {
			c.Next()
			return
		}

		// Process request first
		c.Next()

		// Skip if there was an error processing the request
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// Account number is set by the auth middleware
		accountNumber, exists := GetAccountNumberFromContext(c)
		if !exists {
			return
		}

		// Event name from route path (e.g., "/api/v1/account/deposit" -> "api_v1_account_deposit")
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")

		// Skip if event name is empty (e.g., for 404s)
		if eventName == "" {
			return
		}

		// Prepare event properties
		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}

		// Add route parameters if any
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(accountNumber, eventName, props)
	}
}
