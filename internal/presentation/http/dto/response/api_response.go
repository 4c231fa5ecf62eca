package response

import (
	"errors"
	"net/http"

	"github.com/gestionpyme/ventas-console/internal/infrastructure/memstore"
	"github.com/gestionpyme/ventas-console/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// ListResponse is the paginated list body the console consumes
type ListResponse struct {
	Data        interface{} `json:"data"`
	CurrentPage int         `json:"current_page"`
	LastPage    int         `json:"last_page"`
}

// DataResponse wraps a single resource
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the failure body, Laravel-style: a message plus an optional
// map of field names to human-readable messages.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// List sends a paginated list response
func List(c *gin.Context, data interface{}, currentPage, lastPage int) {
	c.JSON(http.StatusOK, ListResponse{
		Data:        data,
		CurrentPage: currentPage,
		LastPage:    lastPage,
	})
}

// OK sends a 200 response wrapping a single resource
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{Message: message, Data: data})
}

// Created sends a 201 response wrapping a single resource
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, DataResponse{Message: message, Data: data})
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Message: message})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// ValidationError sends a 422 response with per-field messages
func ValidationError(c *gin.Context, fieldErrors map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Message: "Validation failed",
		Errors:  fieldErrors,
	})
}

// Error maps an application error to its HTTP response. Stock shortages become
// the stock-keyed 422 the console recognizes as a submit-time conflict.
func Error(c *gin.Context, err error) {
	var shortage *memstore.StockShortageError
	if errors.As(err, &shortage) {
		ValidationError(c, map[string][]string{
			"stock": {shortage.Error()},
		})
		return
	}

	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Code, ErrorResponse{
		Message: appErr.Message,
		Errors:  appErr.Errors,
	})
}
