package api_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := signupTestUser(t, engine, "cook@example.com")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "dinner.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	url := decodeBody(t, w)["url"].(string)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))

	// The stored file is served back under /uploads.
	getReq := httptest.NewRequest("GET", url, nil)
	getW := httptest.NewRecorder()
	engine.ServeHTTP(getW, getReq)
	require.Equal(t, 200, getW.Code)
	assert.Equal(t, "image-bytes", getW.Body.String())
}

func TestUploadWithoutFile(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := signupTestUser(t, engine, "cook@example.com")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}
