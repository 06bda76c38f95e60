package util

import (
	"net/http"

	"question_flow_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the error body for every failing request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AckResponse acknowledges a write that returns no aggregate body.
type AckResponse struct {
	OK bool `json:"ok"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Ack(c *gin.Context) {
	c.JSON(http.StatusOK, AckResponse{OK: true})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
}

// StoreError logs the underlying failure and surfaces its message as a 500.
func StoreError(c *gin.Context, err error) {
	logger.Log.Error("store error",
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
