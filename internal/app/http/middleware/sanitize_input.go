package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"html"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeAndCleanInputMiddleware strips markup from every string in a JSON body,
// nested objects and arrays included. Numbers pass through untouched.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		// Only for JSON requests
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		body, err := decodeBody(buf)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		newBody, err := json.Marshal(sanitize(policy, body))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

// decodeBody reads exactly one JSON value; trailing data is an error.
func decodeBody(buf []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.New("trailing data after JSON body")
	}
	return body, nil
}

const maxCleanPasses = 4

// cleanString strips markup, entity-encoded markup included, and returns plain text.
// Decoding and sanitizing repeat until the value is stable; a value that never
// settles keeps its escaped form.
func cleanString(policy *bluemonday.Policy, s string) string {
	for i := 0; i < maxCleanPasses; i++ {
		next := html.UnescapeString(policy.Sanitize(html.UnescapeString(s)))
		if next == s {
			return s
		}
		s = next
	}
	return policy.Sanitize(s)
}

func sanitize(policy *bluemonday.Policy, v any) any {
	switch t := v.(type) {
	case string:
		return cleanString(policy, t)
	case map[string]any:
		for k, item := range t {
			t[k] = sanitize(policy, item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = sanitize(policy, item)
		}
		return t
	default:
		return v
	}
}
