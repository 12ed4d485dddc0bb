package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/ddc-studio/portfolio-api/api/controller"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeInputMiddleware cleans JSON request bodies before they reach a
// handler. Keys starting with "$" are dropped at every depth so payloads
// cannot smuggle query operators into the store. String values that contain
// markup are stripped of it. Passwords are left alone.
func SanitizeInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}
		if c.Request.Body == nil {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			controller.MessageResponse(c, http.StatusBadRequest, "Invalid body.")
			c.Abort()
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		var body interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			controller.MessageResponse(c, http.StatusBadRequest, "Malformed JSON.")
			c.Abort()
			return
		}

		newBody, err := json.Marshal(sanitizeValue(policy, "", body))
		if err != nil {
			controller.MessageResponse(c, http.StatusBadRequest, "Malformed JSON.")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

func sanitizeValue(policy *bluemonday.Policy, key string, v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, inner := range val {
			if strings.HasPrefix(k, "$") {
				delete(val, k)
				continue
			}
			val[k] = sanitizeValue(policy, k, inner)
		}
		return val
	case []interface{}:
		for i, inner := range val {
			val[i] = sanitizeValue(policy, key, inner)
		}
		return val
	case string:
		if strings.EqualFold(key, "password") || !strings.ContainsAny(val, "<>") {
			return val
		}
		return policy.Sanitize(val)
	default:
		return val
	}
}
