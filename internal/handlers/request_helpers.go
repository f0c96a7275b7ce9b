package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errInvalidBody = errors.New("invalid body")

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		zap.S().Errorf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	zap.S().Warnf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// readDocument decodes the request body as a JSON object. An empty body is an
// empty document.
func readDocument(c *gin.Context) (map[string]interface{}, error) {
	if c.Request.Body == nil {
		return map[string]interface{}{}, nil
	}
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, errors.Wrap(errInvalidBody, err.Error())
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]interface{}{}, nil
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errInvalidBody, err.Error())
	}
	if doc == nil {
		return nil, errInvalidBody
	}
	return doc, nil
}
