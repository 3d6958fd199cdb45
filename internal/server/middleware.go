package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
)

// TokenParser resolves a bearer token to the username it was issued for
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// Limiter decides whether one more request for key fits the current window
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

var (
	errMissingToken = errors.New("missing bearer token")
	errBadToken     = errors.New("invalid bearer token")
	errRateLimited  = errors.New("bid rate limit exceeded")
	errLimiterDown  = errors.New("rate limiter unavailable")
)

// RequestIDMiddleware propagates an incoming X-Request-Id or generates one
func RequestIDMiddleware(c *gin.Context) {
	id := strings.TrimSpace(c.GetHeader(requestIDHeader))
	if id == "" {
		id = utils.GenerateID()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(requestIDKey),
	}
	if caller, ok := helpers.Caller(c); ok {
		fields["caller"] = caller
	}
	utils.Info("HTTP Request", fields)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// present is false when no Authorization header was sent at all.
func bearerToken(c *gin.Context) (token string, present bool) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return "", false
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", true
	}
	return strings.TrimSpace(token), true
}

// identify verifies the bearer token and stores the caller. It answers 401
// and returns false when the token is missing or bad.
func identify(c *gin.Context, tokens TokenParser, required bool) bool {
	token, present := bearerToken(c)
	if !present {
		if required {
			utils.AbortJSONError(c, http.StatusUnauthorized, errMissingToken, "authentication required")
			return false
		}
		return true
	}

	username, err := tokens.ParseToken(token)
	if token == "" || err != nil {
		utils.Warn("Identity: rejected bearer token", map[string]any{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(requestIDKey),
			"error":      errors.Join(errBadToken, err).Error(),
		})
		utils.AbortJSONError(c, http.StatusUnauthorized, errBadToken, "authentication required")
		return false
	}
	c.Set(helpers.CallerKey, username)
	return true
}

// RequireCaller rejects requests without a valid bearer token
func RequireCaller(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identify(c, tokens, true) {
			c.Next()
		}
	}
}

// OptionalCaller identifies the caller when a token is sent. Anonymous
// requests pass through; a bad token is still rejected.
func OptionalCaller(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identify(c, tokens, false) {
			c.Next()
		}
	}
}

// BidRateLimit caps bids per caller. It must run after RequireCaller.
// Limiter failures reject the request.
func BidRateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := helpers.Caller(c)
		if !ok {
			utils.AbortJSONError(c, http.StatusUnauthorized, errMissingToken, "authentication required")
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), caller)
		if err != nil {
			utils.Error("BidRateLimit: limiter failure", map[string]any{
				"caller":     caller,
				"request_id": c.GetString(requestIDKey),
				"error":      err.Error(),
			})
			utils.AbortJSONError(c, http.StatusServiceUnavailable, errLimiterDown, "service unavailable")
			return
		}
		if !allowed {
			utils.Warn("BidRateLimit: too many bids", map[string]any{
				"caller":     caller,
				"request_id": c.GetString(requestIDKey),
			})
			utils.AbortJSONError(c, http.StatusTooManyRequests, errRateLimited, "too many bids")
			return
		}
		c.Next()
	}
}
