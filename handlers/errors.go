package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stable machine-checkable error codes. Clients branch on these instead of
// string-matching the human message.
const (
	CodeValidation      = "validation_error"
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeInternal        = "internal_error"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": message, "code": code})
}

func badRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, CodeValidation, message)
}

func unauthenticated(c *gin.Context) {
	respondError(c, http.StatusForbidden, CodeUnauthenticated, "Unauthenticated")
}

// notOwner rejects a request whose store exists but is not owned by the
// caller (or does not exist at all). 405 is the status the dashboard
// clients were built against.
func notOwner(c *gin.Context) {
	respondError(c, http.StatusMethodNotAllowed, CodeForbidden, "Unauthorized")
}

func notFound(c *gin.Context, message string) {
	respondError(c, http.StatusNotFound, CodeNotFound, message)
}

func internalError(c *gin.Context) {
	respondError(c, http.StatusInternalServerError, CodeInternal, "Internal error")
}
