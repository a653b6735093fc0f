package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/procurement_tracker/internal/utils"
	"github.com/gin-gonic/gin"
)

// untracked routes never reach PostHog.
var untracked = map[string]bool{
	"/health": true,
}

// AnalyticsEventName turns a route template into a PostHog event name,
// e.g. "/api/v1/orders/:orderID/receptions" becomes "orders_receptions".
func AnalyticsEventName(route string) string {
	route = strings.TrimPrefix(route, "/api/v1")
	parts := make([]string, 0, 4)
	for _, segment := range strings.Split(route, "/") {
		if segment == "" || strings.HasPrefix(segment, ":") || strings.HasPrefix(segment, "*") {
			continue
		}
		parts = append(parts, segment)
	}
	return strings.Join(parts, "_")
}

// PosthogMiddleware reports successful authenticated requests to PostHog,
// keyed by the actor and tagged with the actor's role.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || untracked[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		// the auth middleware replaces c.Request, so the actor is visible here
		actor, ok := GetActorFromContext(c)
		if !ok {
			return
		}
		eventName := AnalyticsEventName(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
			"role":        string(actor.Role),
		}
		for _, p := range c.Params {
			props[p.Key] = p.Value
		}

		if err := posthogClient.Enqueue(actor.ID, eventName, props); err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("Failed to enqueue analytics event", slog.String("event", eventName), slog.String("error", err.Error()))
		}
	}
}
