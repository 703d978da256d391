package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes the uniform API envelope: a success flag with the payload
// fields flattened at the top level.
func Success(ctx *gin.Context, payload gin.H) {
	out := gin.H{"success": true}
	for k, v := range payload {
		out[k] = v
	}
	ctx.JSON(http.StatusOK, out)
}

// Error returns a standard error response. The message surfaces directly to
// the UI layer; clients key off the success flag, not an error-code enum.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"success": false, "error": message})
}
