package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/shelf/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/shelf/internal/core/domain"
)

// statusFor maps the domain error taxonomy onto HTTP codes. Duplicate is
// checked before validation because it wraps it.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTransport):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func handleError(c *gin.Context, err error) {
	status := statusFor(err)

	switch status {
	case http.StatusInternalServerError:
		middleware.Logger(c).WithError(err).Error("request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
	case http.StatusServiceUnavailable:
		middleware.Logger(c).WithError(err).Warn("store unavailable")
		c.JSON(status, gin.H{"error": "storage temporarily unavailable"})
	default:
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func parseDates(raw []string) ([]domain.DateKey, error) {
	if raw == nil {
		return nil, nil
	}
	dates := make([]domain.DateKey, 0, len(raw))
	for _, s := range raw {
		d, err := domain.ParseDateKey(s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// optionalDate reads a YYYY-MM-DD query parameter; empty means absent.
func optionalDate(c *gin.Context, key string) (*domain.DateKey, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDateKey(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalInt(c *gin.Context, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &domain.InvalidDateError{Input: raw, Reason: key + " must be a number"}
	}
	return &n, nil
}

func pathIndex(c *gin.Context, key string) (int, error) {
	raw := c.Param(key)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an index", domain.ErrValidation, key, raw)
	}
	return n, nil
}
