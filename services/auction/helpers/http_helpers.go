package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// CallerKey is the gin context key holding the authenticated username
const CallerKey = "caller"

// Caller returns the authenticated username set by the identity middleware
func Caller(c *gin.Context) (string, bool) {
	user := c.GetString(CallerKey)
	return user, user != ""
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err to a status, writes the error envelope and
// logs it. Field errors are included in the response.
func HandleServiceError(c *gin.Context, handlerName, action string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)

	var verr *auctionerrors.ValidationError
	if errors.As(err, &verr) {
		utils.JSONFieldErrors(c, status, err, message, verr.Fields)
	} else if status == http.StatusInternalServerError {
		// store details stay in the log
		utils.JSONError(c, status, errors.New(message), message)
	} else {
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	}

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": failed to "+action, fields)
		return
	}
	utils.Warn(handlerName+": failed to "+action, fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, auctionerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid too low"
	case errors.Is(err, auctionerrors.ErrListingInactive):
		return http.StatusConflict, "listing is closed"
	case errors.Is(err, auctionerrors.ErrNotAuthorized):
		return http.StatusForbidden, "not authorized"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
