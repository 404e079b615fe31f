// Package response defines the HTTP response envelopes consumed by the
// front-end client. Successful responses carry {success:true, data, ...};
// failures carry {success:false, error, message?}.
package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tirecatalog/src/core/domain"
)

// Success represents a successful response with data.
type Success struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`

	// Message carries the human-readable confirmation for write operations.
	Message string `json:"message,omitempty"`
}

// Paginated represents a successful list response with pagination metadata.
type Paginated struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Pagination is the page envelope: totals cover the full filtered set.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Error represents an error response.
type Error struct {
	Success bool `json:"success"`

	// Summary is a stable, machine-oriented description of the failure.
	Summary string `json:"error"`

	// Message carries the underlying detail for diagnostic purposes.
	Message string `json:"message,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Success: true, Data: data})
}

// Page sends a 200 response with a page of results and its metadata.
func Page(c *gin.Context, data any, p Pagination) {
	c.JSON(http.StatusOK, Paginated{Success: true, Data: data, Pagination: p})
}

// Created sends a 201 response with the created resource and a confirmation.
func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Success{Success: true, Data: data, Message: message})
}

// Message sends a 200 response carrying only a confirmation message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Success{Success: true, Message: message})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, summary string) {
	c.JSON(http.StatusBadRequest, Error{Summary: summary})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, summary string) {
	c.JSON(http.StatusNotFound, Error{Summary: summary})
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, summary string) {
	c.JSON(http.StatusConflict, Error{Summary: summary})
}

// InternalError sends a 500 response, exposing the underlying message for
// diagnostics per the API contract.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Error{
		Summary: "Internal server error",
		Message: err.Error(),
	})
}

// FromDomainError converts a domain error to the appropriate HTTP response.
// This centralizes error handling and ensures consistent error responses.
func FromDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		NotFound(c, notFoundSummary(err))
	case domain.IsValidationError(err):
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			BadRequest(c, domainErr.Message)
		} else {
			BadRequest(c, err.Error())
		}
	case domain.IsConflict(err):
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			Conflict(c, domainErr.Message)
		} else {
			Conflict(c, err.Error())
		}
	default:
		InternalError(c, err)
	}
}

// notFoundSummary renders "<Resource> not found" from the domain error's
// resource name, e.g. "Tire not found".
func notFoundSummary(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		resource := domainErr.Message
		return strings.ToUpper(resource[:1]) + resource[1:] + " not found"
	}
	return "Not found"
}
