package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"productmetrics/internal/repository"
	"productmetrics/internal/validation"
)

// ErrorMode selects how failures are mapped to status codes.
type ErrorMode struct {
	// Strict answers 404 for unknown products and 400 for rejected input.
	// Otherwise not found is a 200 text reply and every failure is a 500.
	Strict bool
}

// StorageError is the body sent for failures raised by the store itself.
type StorageError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (m ErrorMode) respondFailure(c *gin.Context, route string, err error) {
	var verr *validation.ValidationError
	var cerr *validation.CastError

	status := http.StatusInternalServerError
	var body interface{}
	switch {
	case errors.As(err, &verr):
		body = verr
		if m.Strict {
			status = http.StatusBadRequest
		}
	case errors.As(err, &cerr):
		body = cerr
		if m.Strict {
			status = http.StatusBadRequest
		}
	default:
		body = StorageError{Name: "StorageError", Message: errors.Cause(err).Error()}
	}

	_ = c.Error(err)
	logFailure(route, status, err)
	c.JSON(status, body)
}

func (m ErrorMode) respondNotFound(c *gin.Context, route, text string) {
	if m.Strict {
		respondWithError(c, http.StatusNotFound, route, "product not found")
		return
	}
	logFailure(route, http.StatusOK, repository.ErrNotFound)
	c.String(http.StatusOK, text)
}
