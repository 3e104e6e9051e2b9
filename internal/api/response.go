package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/cartify/internal/service"
)

// Envelope is the body shape every successful endpoint returns.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorBody is the body shape every failed endpoint returns.
type ErrorBody struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Status: http.StatusOK, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Status: http.StatusCreated, Message: message, Data: data})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Path:      c.Request.URL.Path,
	})
}

// FromError maps service errors onto HTTP statuses.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrInventoryNotFound),
		errors.Is(err, service.ErrCartNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrCategoryExists),
		errors.Is(err, service.ErrDuplicateSKU),
		errors.Is(err, service.ErrInventoryExists),
		errors.Is(err, service.ErrCartExists):
		Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrProductReviewed),
		errors.Is(err, service.ErrCategoryInUse):
		Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrMissingCartItems),
		errors.Is(err, service.ErrInvalidOrderRef):
		Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		Error(c, http.StatusUnauthorized, err.Error())
	default:
		Error(c, http.StatusInternalServerError, "internal server error")
	}
}
