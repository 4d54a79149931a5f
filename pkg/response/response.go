package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON error payload returned by every endpoint: the
// HTTP status carries the class, Code lets clients branch, Error holds
// the human-readable message.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Message is the JSON payload for write operations with no data to return
type Message struct {
	Message string `json:"message"`
}

// Created is the JSON payload for create operations
type Created struct {
	ID      int64  `json:"id"`
	Message string `json:"message,omitempty"`
}

func OK(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Message{Message: msg})
}

func CreatedID(c *gin.Context, id int64, msg string) {
	c.JSON(http.StatusCreated, Created{ID: id, Message: msg})
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorBody{Error: message, Code: code})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "INVALID_REQUEST", message)
}

func NotFound(c *gin.Context, code, message string) {
	Error(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Error(c, http.StatusConflict, code, message)
}

func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
