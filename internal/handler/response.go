// Package handler maps HTTP routes onto service calls. Every endpoint
// responds with the same envelope so the dashboard needs a single unwrapping
// path: {"code": ..., "message": ..., "data": ...}.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// queryDeadline bounds every aggregation query; a slow store fails the
// request instead of holding the connection open.
const queryDeadline = 10 * time.Second

type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Code: http.StatusOK, Message: "success", Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Code: status, Message: message, Data: nil})
}

func queryContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), queryDeadline)
}
