package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseIDParam parses the numeric :id path parameter.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, errParse := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if errParse != nil {
		return 0, false
	}
	return id, true
}

// validationError builds the 400 payload listing offending fields.
func validationError(fields ...string) gin.H {
	errs := make([]string, 0, len(fields))
	for _, field := range fields {
		errs = append(errs, field+" is required")
	}
	return gin.H{"message": "Validation error", "errors": errs}
}

// blank reports whether a string is empty after trimming.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
