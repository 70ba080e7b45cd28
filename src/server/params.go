package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 100

	skipQueryParam  = "skip"
	limitQueryParam = "limit"
)

func abortError(c *gin.Context, status int, msg string) {
	c.IndentedJSON(status, gin.H{"message": "error", "error": msg})
}

// idParam parses the :id path segment. Reports false after writing the
// error response.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// pagination parses skip/limit with a server-enforced cap on limit.
// Negative or malformed values fall back to the defaults.
func pagination(c *gin.Context, maxPageSize int) (offset, limit int) {
	offset, err := strconv.Atoi(c.DefaultQuery(skipQueryParam, "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	limit, err = strconv.Atoi(c.DefaultQuery(limitQueryParam, strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return offset, limit
}

// boolQuery parses an optional bool query parameter, nil when absent.
func boolQuery(c *gin.Context, name string) (*bool, bool) {
	raw, present := c.GetQuery(name)
	if !present {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		abortError(c, http.StatusBadRequest, name+" must be a boolean")
		return nil, false
	}
	return &value, true
}

// uintQuery parses an optional uint query parameter, nil when absent.
func uintQuery(c *gin.Context, name string) (*uint, bool) {
	raw, present := c.GetQuery(name)
	if !present {
		return nil, true
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		abortError(c, http.StatusBadRequest, name+" must be a positive integer")
		return nil, false
	}
	result := uint(value)
	return &result, true
}
