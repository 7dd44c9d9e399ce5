package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/BIUSYZ/mycooook/internal/keycase"
)

// bindJSON decodes a request body into out. The wire form uses snake_case
// keys, so the body is normalized to the internal camelCase form first.
// Unknown fields are rejected rather than silently dropped.
func bindJSON(c *gin.Context, out interface{}) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("empty request body")
	}

	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return err
	}
	normalized, err := json.Marshal(keycase.CamelKeys(raw))
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if binding.Validator == nil {
		return nil
	}
	return binding.Validator.ValidateStruct(out)
}

// respondJSON writes payload with its keys rewritten to the wire form.
func respondJSON(c *gin.Context, status int, payload interface{}) {
	b, err := json.Marshal(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, keycase.SnakeKeys(v))
}
